package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/neko/companion"
	"github.com/milk9111/neko/sheet"
)

// placeholderCell is the cell edge of the generated sheet.
const placeholderCell = 32

// Sheet is a sprite sheet uploaded to the GPU.
type Sheet struct {
	img  *ebiten.Image
	cell int
}

func LoadSheet(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open %s: %w", path, err)
	}
	defer f.Close()

	img, cell, err := sheet.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Sheet{img: ebiten.NewImageFromImage(img), cell: cell}, nil
}

func PlaceholderSheet() *Sheet {
	return &Sheet{
		img:  ebiten.NewImageFromImage(sheet.Placeholder(placeholderCell)),
		cell: placeholderCell,
	}
}

// Draw renders the decision's frame scaled to its size, centred on its
// position.
func (s *Sheet) Draw(dst *ebiten.Image, d companion.Decision) {
	frame := s.img.SubImage(d.Cell.Rect(s.cell)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	scale := float64(d.Size) / float64(s.cell)
	op.GeoM.Scale(scale, scale)
	tl := d.TopLeft()
	op.GeoM.Translate(tl.X, tl.Y)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(frame, op)
}
