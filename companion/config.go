package companion

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/milk9111/neko/common"
)

const (
	DefaultSpeed = 10.0
	MinSpeed     = 10.0
	MaxSpeed     = 20.0

	// DefaultIdleThreshold is the distance under which the companion stops
	// chasing its target.
	DefaultIdleThreshold = 25.0
	// DefaultWallMargin is how close to an edge the companion must be before
	// it may scratch that wall.
	DefaultWallMargin = 32.0
	// RestLift is how far above the origin a sleeping companion settles.
	RestLift = 15.0

	// DefaultTickPeriod is the recommended interval between ticks.
	DefaultTickPeriod = 60 * time.Millisecond
)

var (
	ErrInvalidConfiguration = errors.New("companion: invalid configuration")
	ErrDestroyed            = errors.New("companion: destroyed")
)

// Config describes a companion before construction. Zero values select the
// defaults.
type Config struct {
	ID     int
	Size   Size
	Speed  float64
	Origin *Point
	Bounds Bounds
	// Asleep starts the companion asleep on its origin.
	Asleep bool

	IdleThreshold float64
	WallMargin    float64
}

// SpeedBudget holds the effective speed and the range it was clamped into.
type SpeedBudget struct {
	Current float64
	Min     float64
	Max     float64
}

// Settings is a validated Config. It never changes after construction.
type Settings struct {
	ID            int
	Size          Size
	Speed         SpeedBudget
	Origin        Point
	HasOrigin     bool
	Bounds        Bounds
	Asleep        bool
	IdleThreshold float64
	WallMargin    float64
}

// Resolve validates c and fills in defaults. Speeds outside [MinSpeed,
// MaxSpeed] are clamped; everything else that is out of range is rejected.
func (c Config) Resolve() (Settings, error) {
	s := Settings{
		ID:            c.ID,
		Size:          c.Size,
		Speed:         SpeedBudget{Current: c.Speed, Min: MinSpeed, Max: MaxSpeed},
		Bounds:        c.Bounds,
		Asleep:        c.Asleep,
		IdleThreshold: c.IdleThreshold,
		WallMargin:    c.WallMargin,
	}

	if s.Size == 0 {
		s.Size = SizeSmall
	}
	if !s.Size.Valid() {
		return Settings{}, fmt.Errorf("%w: unknown size %d", ErrInvalidConfiguration, int(c.Size))
	}

	if !common.Finite(c.Speed) || c.Speed < 0 {
		return Settings{}, fmt.Errorf("%w: speed %v", ErrInvalidConfiguration, c.Speed)
	}
	if s.Speed.Current == 0 {
		s.Speed.Current = DefaultSpeed
	}
	s.Speed.Current = common.Clamp(s.Speed.Current, s.Speed.Min, s.Speed.Max)

	if c.Origin != nil {
		if !common.Finite(c.Origin.X, c.Origin.Y) {
			return Settings{}, fmt.Errorf("%w: origin (%v, %v)", ErrInvalidConfiguration, c.Origin.X, c.Origin.Y)
		}
		s.Origin = *c.Origin
		s.HasOrigin = true
	}

	if err := checkBounds(c.Bounds, s.Size); err != nil {
		return Settings{}, err
	}

	if !common.Finite(c.IdleThreshold) || c.IdleThreshold < 0 {
		return Settings{}, fmt.Errorf("%w: idle threshold %v", ErrInvalidConfiguration, c.IdleThreshold)
	}
	if s.IdleThreshold == 0 {
		s.IdleThreshold = DefaultIdleThreshold
	}
	if !common.Finite(c.WallMargin) || c.WallMargin < 0 {
		return Settings{}, fmt.Errorf("%w: wall margin %v", ErrInvalidConfiguration, c.WallMargin)
	}
	if s.WallMargin == 0 {
		s.WallMargin = DefaultWallMargin
	}

	return s, nil
}

func checkBounds(b Bounds, size Size) error {
	if !common.Finite(b.Width, b.Height) || b.Width < float64(size) || b.Height < float64(size) {
		return fmt.Errorf("%w: bounds %vx%v cannot hold size %d", ErrInvalidConfiguration, b.Width, b.Height, int(size))
	}
	return nil
}

// Rand is the random source used for idle animation selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewSeededRand returns a deterministic Rand.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type Option func(*Companion)

// WithRand replaces the random source.
func WithRand(r Rand) Option {
	return func(c *Companion) {
		if r != nil {
			c.idle.rng = r
		}
	}
}
