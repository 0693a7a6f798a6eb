package companion

import (
	"fmt"
	"image"

	"github.com/milk9111/neko/sprite"
)

// Mode is the active branch of AnimationState.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAlert
	ModeMoving
	ModeAsleep
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAlert:
		return "alert"
	case ModeMoving:
		return "moving"
	case ModeAsleep:
		return "asleep"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// IdleKind is an idle micro-animation.
type IdleKind int

const (
	IdleNone IdleKind = iota
	IdleSleeping
	IdleScratchSelf
	IdleScratchWallN
	IdleScratchWallS
	IdleScratchWallE
	IdleScratchWallW
)

// Key returns the catalog key rendered for k. IdleNone renders the resting
// pose.
func (k IdleKind) Key() sprite.Key {
	switch k {
	case IdleSleeping:
		return sprite.KeySleeping
	case IdleScratchSelf:
		return sprite.KeyScratchSelf
	case IdleScratchWallN:
		return sprite.KeyScratchWallN
	case IdleScratchWallS:
		return sprite.KeyScratchWallS
	case IdleScratchWallE:
		return sprite.KeyScratchWallE
	case IdleScratchWallW:
		return sprite.KeyScratchWallW
	}
	return sprite.KeyIdle
}

func (k IdleKind) String() string {
	if k == IdleNone {
		return "none"
	}
	return string(k.Key())
}

// AnimationState is the engine state after a tick. IdleKind and IdleFrame
// only mean something in ModeIdle and ModeAsleep, Cooldown only in
// ModeAlert and Direction only in ModeMoving.
type AnimationState struct {
	Mode      Mode
	IdleKind  IdleKind
	IdleFrame int
	Cooldown  int
	Direction sprite.Key
}

// Decision is what a render surface needs for one tick.
type Decision struct {
	Key      sprite.Key
	Frame    int
	Cell     sprite.Cell
	Position Point
	Size     Size
	State    AnimationState
}

// Offset is the sprite-sheet pixel offset of the frame.
func (d Decision) Offset() image.Point {
	return d.Cell.Offset(int(d.Size))
}

// TopLeft is where the visual element's top-left corner goes.
func (d Decision) TopLeft() Point {
	half := d.Size.Half()
	return Point{X: d.Position.X - half, Y: d.Position.Y - half}
}
