package companion

import (
	"math"

	"github.com/milk9111/neko/sprite"
)

// directionThreshold is the normalized component a heading must exceed
// before it contributes a compass letter.
const directionThreshold = 0.5

// Step is the outcome of planning one tick of movement.
type Step struct {
	// Idle is set when the target is close enough that the companion should
	// not move.
	Idle      bool
	Distance  float64
	Direction sprite.Key
	Position  Point
}

// Plan moves pos one step of speed toward target and clamps the result into
// bounds. Within max(speed, threshold) of the target it returns an idle step
// with pos unchanged.
func Plan(pos, target Point, speed, threshold float64, bounds Bounds, size Size) Step {
	diff := pos.Sub(target)
	distance := math.Sqrt(diff.X*diff.X + diff.Y*diff.Y)

	if distance < speed || distance < threshold {
		return Step{Idle: true, Distance: distance, Position: pos}
	}

	nx := diff.X / distance
	ny := diff.Y / distance
	next := Point{X: pos.X - nx*speed, Y: pos.Y - ny*speed}

	return Step{
		Distance:  distance,
		Direction: DirectionFor(nx, ny),
		Position:  ClampToBounds(next, bounds, size),
	}
}

// DirectionFor derives the compass key from the normalized vector pointing
// from the target to the companion. Positive ny means the target is above,
// positive nx that it is to the left. Components must exceed 0.5 in
// magnitude; exactly 0.5 contributes nothing.
//
// For a unit vector at least one component is >= 1/sqrt(2), so the result is
// never empty for input produced by Plan.
func DirectionFor(nx, ny float64) sprite.Key {
	var dir string
	switch {
	case ny > directionThreshold:
		dir = "N"
	case ny < -directionThreshold:
		dir = "S"
	}
	switch {
	case nx > directionThreshold:
		dir += "W"
	case nx < -directionThreshold:
		dir += "E"
	}
	return sprite.Key(dir)
}
