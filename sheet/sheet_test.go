package sheet

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/milk9111/neko/sprite"
)

func TestCellSize(t *testing.T) {
	cases := []struct {
		name    string
		rect    image.Rectangle
		want    int
		wantErr bool
	}{
		{"neko_gif", image.Rect(0, 0, 256, 128), 32, false},
		{"large", image.Rect(0, 0, 336, 168), 42, false},
		{"not_square", image.Rect(0, 0, 256, 100), 0, true},
		{"empty", image.Rect(0, 0, 0, 0), 0, true},
		{"odd_width", image.Rect(0, 0, 250, 125), 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CellSize(c.rect)
			if c.wantErr {
				if !errors.Is(err, ErrBadLayout) {
					t.Fatalf("expected ErrBadLayout, got %v", err)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("CellSize = %d, %v; want %d", got, err, c.want)
			}
		})
	}
}

func TestPlaceholderCoversCatalog(t *testing.T) {
	img := Placeholder(32)
	if img.Bounds() != image.Rect(0, 0, 256, 128) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	catalog := sprite.Default()
	for _, key := range catalog.Keys() {
		frames, _ := catalog.Frames(key)
		for _, c := range frames {
			r := c.Rect(32)
			// top-right interior pixel sits clear of the label
			got := img.RGBAAt(r.Max.X-3, r.Min.Y+3)
			want := tint(key)
			wr, wg, wb, _ := want.RGBA()
			gr, gg, gb, _ := got.RGBA()
			if wr != gr || wg != gg || wb != gb {
				t.Fatalf("cell %v for %s has colour %v, want %v", c, key, got, want)
			}
		}
	}
	if got := img.RGBAAt(0, 0); got.A == 0 {
		t.Fatalf("cell border not drawn")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Placeholder(16)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, cell, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cell != 16 || img.Bounds().Dx() != 128 {
		t.Fatalf("unexpected cell %d bounds %v", cell, img.Bounds())
	}
	if _, _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLabel(t *testing.T) {
	if got := Label(sprite.KeyScratchWallN, 1); got != "WN1" {
		t.Fatalf("Label = %q", got)
	}
	if got := Label(sprite.KeyNW, 0); got != "NW0" {
		t.Fatalf("Label = %q", got)
	}
}
