package sprite

import (
	"errors"
	"image"
	"testing"
)

func TestCatalogKeys(t *testing.T) {
	want := []Key{
		KeyIdle, KeyAlert, KeyScratchSelf,
		KeyScratchWallN, KeyScratchWallS, KeyScratchWallE, KeyScratchWallW,
		KeyTired, KeySleeping,
		KeyN, KeyNE, KeyE, KeySE, KeyS, KeySW, KeyW, KeyNW,
	}
	c := Default()
	if got := len(c.Keys()); got != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), got)
	}
	for _, k := range want {
		if !c.Has(k) {
			t.Fatalf("catalog missing key %q", k)
		}
		frames, err := c.Frames(k)
		if err != nil || len(frames) == 0 {
			t.Fatalf("frames for %q: %v len=%d", k, err, len(frames))
		}
	}
}

func TestCatalogCellAtWraps(t *testing.T) {
	c := Default()
	cases := []struct {
		name  string
		key   Key
		frame int
		want  Cell
	}{
		{"single_frame_any_index", KeyIdle, 41, Cell{-3, -3}},
		{"scratch_self_first", KeyScratchSelf, 0, Cell{-5, 0}},
		{"scratch_self_wraps", KeyScratchSelf, 4, Cell{-6, 0}},
		{"sleeping_second", KeySleeping, 3, Cell{-2, -1}},
		{"direction_even", KeyNW, 10, Cell{-1, 0}},
		{"negative_wraps", KeyS, -1, Cell{-7, -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.CellAt(tc.key, tc.frame)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCatalogUnknownKey(t *testing.T) {
	c := Default()
	if _, err := c.CellAt("", 0); !errors.Is(err, ErrUnknownStateKey) {
		t.Fatalf("expected ErrUnknownStateKey for empty key, got %v", err)
	}
	if _, err := c.Frames("run"); !errors.Is(err, ErrUnknownStateKey) {
		t.Fatalf("expected ErrUnknownStateKey, got %v", err)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownStateKey) {
			t.Fatalf("expected panic with ErrUnknownStateKey, got %v", r)
		}
	}()
	c.MustCellAt("NS", 0)
}

func TestCatalogFramesReturnsCopy(t *testing.T) {
	c := Default()
	frames, _ := c.Frames(KeyAlert)
	frames[0] = Cell{99, 99}
	again, _ := c.Frames(KeyAlert)
	if again[0] != (Cell{-7, -3}) {
		t.Fatalf("catalog was mutated through Frames: %v", again[0])
	}
}

func TestCellOffsetAndRect(t *testing.T) {
	cell := Cell{-3, -2}
	if got := cell.Offset(32); got != image.Pt(-96, -64) {
		t.Fatalf("unexpected offset %v", got)
	}
	if got := cell.Rect(32); got != image.Rect(96, 64, 128, 96) {
		t.Fatalf("unexpected rect %v", got)
	}
}
