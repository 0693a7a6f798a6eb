// Package targetpath produces synthetic target positions: scripted paths for
// the demo autopilot and recorded traces for deterministic replays.
package targetpath

import (
	"errors"

	"github.com/milk9111/neko/companion"
)

var ErrEmptyTrace = errors.New("targetpath: trace has no waypoints")

// Path yields the target position for a tick. Ticks start at 0.
type Path interface {
	At(tick int) (companion.Point, error)
}
