package prefabs

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/neko/companion"
)

// DefaultCompanion is the prefab loaded when no other name is given.
const DefaultCompanion = "companion.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BoundsSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type CompanionSpec struct {
	Name          string     `yaml:"name"`
	ID            int        `yaml:"id"`
	Size          string     `yaml:"size"`
	Speed         float64    `yaml:"speed"`
	Origin        *PointSpec `yaml:"origin"`
	Bounds        BoundsSpec `yaml:"bounds"`
	Asleep        bool       `yaml:"asleep"`
	IdleThreshold float64    `yaml:"idle_threshold"`
	WallMargin    float64    `yaml:"wall_margin"`
	TickMS        int        `yaml:"tick_ms"`
	Seed          uint64     `yaml:"seed"`
	Sheet         string     `yaml:"sheet"`
	PathScript    string     `yaml:"path_script"`
}

func LoadCompanionSpec(name string) (CompanionSpec, error) {
	if name == "" {
		name = DefaultCompanion
	}
	return LoadSpec[CompanionSpec](name)
}

// Config converts the spec into an engine config. Range checks are left to
// companion.New.
func (s CompanionSpec) Config() (companion.Config, error) {
	size, err := companion.ParseSize(s.Size)
	if err != nil {
		return companion.Config{}, fmt.Errorf("prefabs: companion %q: %w", s.Name, err)
	}
	cfg := companion.Config{
		ID:            s.ID,
		Size:          size,
		Speed:         s.Speed,
		Bounds:        companion.Bounds{Width: s.Bounds.Width, Height: s.Bounds.Height},
		Asleep:        s.Asleep,
		IdleThreshold: s.IdleThreshold,
		WallMargin:    s.WallMargin,
	}
	if s.Origin != nil {
		cfg.Origin = &companion.Point{X: s.Origin.X, Y: s.Origin.Y}
	}
	return cfg, nil
}

// TickPeriod returns the configured tick interval, defaulting to
// companion.DefaultTickPeriod.
func (s CompanionSpec) TickPeriod() time.Duration {
	if s.TickMS <= 0 {
		return companion.DefaultTickPeriod
	}
	return time.Duration(s.TickMS) * time.Millisecond
}

// Rand returns a seeded source when Seed is set, nil otherwise.
func (s CompanionSpec) Rand() companion.Rand {
	if s.Seed == 0 {
		return nil
	}
	return companion.NewSeededRand(s.Seed)
}

type WaypointSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Hold int     `yaml:"hold"`
}

// TraceSpec is a recorded sequence of target positions. Each waypoint is
// held for Hold ticks (at least one).
type TraceSpec struct {
	Name      string         `yaml:"name"`
	Waypoints []WaypointSpec `yaml:"waypoints"`
}

func LoadTraceSpec(name string) (TraceSpec, error) {
	return LoadSpec[TraceSpec](name)
}
