package sprite

import (
	"errors"
	"fmt"
	"image"
	"sort"
)

// ErrUnknownStateKey is returned for keys outside the fixed catalog.
var ErrUnknownStateKey = errors.New("sprite: unknown state key")

// Key names an animation state in the catalog.
type Key string

const (
	KeyIdle         Key = "idle"
	KeyAlert        Key = "alert"
	KeyScratchSelf  Key = "scratchSelf"
	KeyScratchWallN Key = "scratchWallN"
	KeyScratchWallS Key = "scratchWallS"
	KeyScratchWallE Key = "scratchWallE"
	KeyScratchWallW Key = "scratchWallW"
	KeyTired        Key = "tired"
	KeySleeping     Key = "sleeping"

	KeyN  Key = "N"
	KeyNE Key = "NE"
	KeyE  Key = "E"
	KeySE Key = "SE"
	KeyS  Key = "S"
	KeySW Key = "SW"
	KeyW  Key = "W"
	KeyNW Key = "NW"
)

// Sheet layout in cells.
const (
	SheetCols = 8
	SheetRows = 4
)

// Cell is a sprite-sheet offset in cell units. Values are non-positive: the
// sheet is shifted left/up by the cell to bring a frame into view.
type Cell struct {
	X, Y int
}

// Offset returns the background offset in pixels for a frame of px pixels.
func (c Cell) Offset(px int) image.Point {
	return image.Pt(c.X*px, c.Y*px)
}

// Rect returns the frame rectangle on a sheet made of px-sized cells.
func (c Cell) Rect(px int) image.Rectangle {
	x := -c.X * px
	y := -c.Y * px
	return image.Rect(x, y, x+px, y+px)
}

// Catalog maps state keys to ordered frame cells. It is immutable.
type Catalog struct {
	sets map[Key][]Cell
}

var defaultCatalog = &Catalog{sets: map[Key][]Cell{
	KeyIdle:         {{-3, -3}},
	KeyAlert:        {{-7, -3}},
	KeyScratchSelf:  {{-5, 0}, {-6, 0}, {-7, 0}},
	KeyScratchWallN: {{0, 0}, {0, -1}},
	KeyScratchWallS: {{-7, -1}, {-6, -2}},
	KeyScratchWallE: {{-2, -2}, {-2, -3}},
	KeyScratchWallW: {{-4, 0}, {-4, -1}},
	KeyTired:        {{-3, -2}},
	KeySleeping:     {{-2, 0}, {-2, -1}},
	KeyN:            {{-1, -2}, {-1, -3}},
	KeyNE:           {{0, -2}, {0, -3}},
	KeyE:            {{-3, 0}, {-3, -1}},
	KeySE:           {{-5, -1}, {-5, -2}},
	KeyS:            {{-6, -3}, {-7, -2}},
	KeySW:           {{-5, -3}, {-6, -1}},
	KeyW:            {{-4, -2}, {-4, -3}},
	KeyNW:           {{-1, 0}, {-1, -1}},
}}

// Default returns the shared catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Frames returns a copy of the ordered cells for key.
func (c *Catalog) Frames(key Key) ([]Cell, error) {
	set, ok := c.sets[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStateKey, string(key))
	}
	out := make([]Cell, len(set))
	copy(out, set)
	return out, nil
}

// CellAt returns the cell for frame, wrapping around the set length.
func (c *Catalog) CellAt(key Key, frame int) (Cell, error) {
	set, ok := c.sets[key]
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrUnknownStateKey, string(key))
	}
	n := len(set)
	i := frame % n
	if i < 0 {
		i += n
	}
	return set[i], nil
}

// MustCellAt is CellAt for keys known at compile time. An unknown key is a
// programming error and panics.
func (c *Catalog) MustCellAt(key Key, frame int) Cell {
	cell, err := c.CellAt(key, frame)
	if err != nil {
		panic(err)
	}
	return cell
}

// Has reports whether key is part of the catalog.
func (c *Catalog) Has(key Key) bool {
	_, ok := c.sets[key]
	return ok
}

// Keys returns every key in lexical order.
func (c *Catalog) Keys() []Key {
	keys := make([]Key, 0, len(c.sets))
	for k := range c.sets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
