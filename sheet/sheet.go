// Package sheet decodes companion sprite sheets and draws a labelled
// placeholder when no artwork is available.
package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/png"
	"io"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/milk9111/neko/sprite"
)

var ErrBadLayout = errors.New("sheet: image is not an 8x4 grid of square cells")

// Decode reads a sprite sheet and returns it with its cell size in pixels.
func Decode(r io.Reader) (image.Image, int, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, 0, fmt.Errorf("sheet: decode: %w", err)
	}
	cell, err := CellSize(img.Bounds())
	if err != nil {
		return nil, 0, err
	}
	return img, cell, nil
}

// CellSize derives the cell edge from the sheet bounds.
func CellSize(b image.Rectangle) (int, error) {
	w, h := b.Dx(), b.Dy()
	if w == 0 || w%sprite.SheetCols != 0 || h%sprite.SheetRows != 0 || w/sprite.SheetCols != h/sprite.SheetRows {
		return 0, fmt.Errorf("%w: %dx%d", ErrBadLayout, w, h)
	}
	return w / sprite.SheetCols, nil
}

var shortNames = map[sprite.Key]string{
	sprite.KeyIdle:         "ID",
	sprite.KeyAlert:        "!",
	sprite.KeyScratchSelf:  "SC",
	sprite.KeyScratchWallN: "WN",
	sprite.KeyScratchWallS: "WS",
	sprite.KeyScratchWallE: "WE",
	sprite.KeyScratchWallW: "WW",
	sprite.KeyTired:        "TI",
	sprite.KeySleeping:     "ZZ",
}

func tint(key sprite.Key) color.Color {
	switch key {
	case sprite.KeyIdle:
		return colornames.Lightsteelblue
	case sprite.KeyAlert:
		return colornames.Gold
	case sprite.KeyScratchSelf, sprite.KeyScratchWallN, sprite.KeyScratchWallS, sprite.KeyScratchWallE, sprite.KeyScratchWallW:
		return colornames.Sandybrown
	case sprite.KeyTired, sprite.KeySleeping:
		return colornames.Mediumpurple
	}
	return colornames.Mediumseagreen
}

// Label is the text drawn on a placeholder cell.
func Label(key sprite.Key, frame int) string {
	name, ok := shortNames[key]
	if !ok {
		name = string(key)
	}
	return fmt.Sprintf("%s%d", name, frame)
}

// Placeholder draws every catalog frame as a tinted, labelled cell.
func Placeholder(cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sprite.SheetCols*cell, sprite.SheetRows*cell))
	catalog := sprite.Default()

	for _, key := range catalog.Keys() {
		frames, err := catalog.Frames(key)
		if err != nil {
			panic(err)
		}
		for i, c := range frames {
			r := c.Rect(cell)
			draw.Draw(img, r, image.NewUniform(colornames.Black), image.Point{}, draw.Src)
			draw.Draw(img, r.Inset(1), image.NewUniform(tint(key)), image.Point{}, draw.Src)

			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(colornames.Black),
				Face: basicfont.Face7x13,
				Dot:  fixed.P(r.Min.X+3, r.Min.Y+cell/2+4),
			}
			d.DrawString(Label(key, i))
		}
	}
	return img
}
