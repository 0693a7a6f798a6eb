package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/neko/companion"
)

// Input holds the pointer and hot-key state for one frame.
type Input struct {
	// Pointer is the cursor, or the first touch when one is active.
	Pointer companion.Point
	// PointerMoved is true on frames where Pointer changed.
	PointerMoved bool

	ToggleSleep     bool
	Spawn           bool
	Destroy         bool
	TogglePanel     bool
	ToggleAutopilot bool
	// Size is the size picked with 1/2/3 this frame, or zero.
	Size companion.Size

	seen bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the cursor, touches and hot keys.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	x, y := ebiten.CursorPosition()
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
	}
	p := companion.Point{X: float64(x), Y: float64(y)}
	// the first sample only establishes where the pointer rests
	i.PointerMoved = i.seen && p != i.Pointer
	i.Pointer = p
	i.seen = true

	i.ToggleSleep = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.Spawn = inpututil.IsKeyJustPressed(ebiten.KeyN)
	i.Destroy = inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeyDelete)
	i.TogglePanel = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	i.ToggleAutopilot = inpututil.IsKeyJustPressed(ebiten.KeyA)

	i.Size = 0
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		i.Size = companion.SizeSmall
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		i.Size = companion.SizeMedium
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		i.Size = companion.SizeLarge
	}
}
