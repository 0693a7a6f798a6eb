package targetpath

import (
	"fmt"

	"github.com/milk9111/neko/companion"
	"github.com/milk9111/neko/prefabs"
)

// Trace replays recorded waypoints, holding each for its tick count. The
// last waypoint holds forever.
type Trace struct {
	name   string
	points []companion.Point
	ends   []int
}

func NewTrace(spec prefabs.TraceSpec) (*Trace, error) {
	if len(spec.Waypoints) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyTrace, spec.Name)
	}
	t := &Trace{name: spec.Name}
	end := 0
	for _, wp := range spec.Waypoints {
		hold := wp.Hold
		if hold < 1 {
			hold = 1
		}
		end += hold
		t.points = append(t.points, companion.Point{X: wp.X, Y: wp.Y})
		t.ends = append(t.ends, end)
	}
	return t, nil
}

// LoadTrace reads a trace prefab such as "traces/corners.yaml".
func LoadTrace(name string) (*Trace, error) {
	spec, err := prefabs.LoadTraceSpec(name)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = name
	}
	return NewTrace(spec)
}

func (t *Trace) Name() string { return t.name }

// Len is the number of ticks covered before the last waypoint holds.
func (t *Trace) Len() int { return t.ends[len(t.ends)-1] }

func (t *Trace) At(tick int) (companion.Point, error) {
	for i, end := range t.ends {
		if tick < end {
			return t.points[i], nil
		}
	}
	return t.points[len(t.points)-1], nil
}
