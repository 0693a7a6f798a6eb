package companion

import (
	"fmt"

	"github.com/milk9111/neko/common"
	"github.com/milk9111/neko/sprite"
)

// alertMemoryCap bounds how long the alert pause can last.
const alertMemoryCap = 7

// Companion is the tick-driven motion and animation state machine for one
// on-screen companion. It is not safe for concurrent use.
type Companion struct {
	settings Settings
	catalog  *sprite.Catalog

	size      Size
	pos       Point
	target    Point
	awake     bool
	destroyed bool

	ticks int
	idle  idleSelector
	state AnimationState
}

// New builds a companion from cfg. Placement on the origin applies the
// size's render offset; without an origin the companion starts in the top
// left corner.
func New(cfg Config, opts ...Option) (*Companion, error) {
	s, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	c := &Companion{
		settings: s,
		catalog:  sprite.Default(),
		size:     s.Size,
		awake:    !s.Asleep,
		idle:     idleSelector{rng: globalRand{}, margin: s.WallMargin},
		state:    AnimationState{Mode: ModeIdle},
	}
	for _, opt := range opts {
		opt(c)
	}

	half := s.Size.Half()
	c.pos = Point{X: half, Y: half}
	if s.HasOrigin {
		c.pos = Point{X: s.Origin.X, Y: s.Origin.Y + s.Size.Offset()}
	}
	c.pos = ClampToBounds(c.pos, s.Bounds, c.size)
	c.target = c.pos
	if !c.awake {
		c.target = c.RestPoint()
	}

	return c, nil
}

// Tick advances the companion by one tick toward target and returns what to
// render. While asleep the target is ignored in favor of RestPoint.
// Non-finite targets keep the previous one.
func (c *Companion) Tick(target Point) (Decision, error) {
	if c.destroyed {
		return Decision{}, ErrDestroyed
	}
	c.ticks++
	// a size change may have left the position inside the old margin
	c.pos = ClampToBounds(c.pos, c.settings.Bounds, c.size)

	switch {
	case !c.awake:
		c.target = c.RestPoint()
	case common.Finite(target.X, target.Y):
		c.target = target
	}

	speed := c.settings.Speed.Current
	step := Plan(c.pos, c.target, speed, c.settings.IdleThreshold, c.settings.Bounds, c.size)

	if step.Idle {
		key, frame := c.idle.tick(c.pos, c.settings.Bounds)
		mode := ModeIdle
		if !c.awake {
			mode = ModeAsleep
		}
		c.state = AnimationState{Mode: mode, IdleKind: c.idle.kind, IdleFrame: c.idle.frame}
		return c.decide(key, frame), nil
	}

	c.idle.clearAnimation()

	// startled pause before chasing again
	if c.idle.idleTime > 1 {
		c.idle.idleTime = min(c.idle.idleTime, alertMemoryCap) - 1
		c.state = AnimationState{Mode: ModeAlert, Cooldown: c.idle.idleTime}
		return c.decide(sprite.KeyAlert, 0), nil
	}

	c.idle.idleTime = 0
	c.pos = step.Position
	c.state = AnimationState{Mode: ModeMoving, Direction: step.Direction}
	return c.decide(step.Direction, c.ticks), nil
}

func (c *Companion) decide(key sprite.Key, frame int) Decision {
	return Decision{
		Key:      key,
		Frame:    frame,
		Cell:     c.catalog.MustCellAt(key, frame),
		Position: c.pos,
		Size:     c.size,
		State:    c.state,
	}
}

// Sleep sends the companion back toward its origin and stops it from
// following live targets. It reports whether anything changed.
func (c *Companion) Sleep() bool {
	if c.destroyed || !c.awake {
		return false
	}
	c.awake = false
	c.target = c.RestPoint()
	return true
}

// Wake resumes following live targets. It reports whether anything changed.
func (c *Companion) Wake() bool {
	if c.destroyed || c.awake {
		return false
	}
	c.awake = true
	return true
}

// SetSize changes the rendered size. The position is left untouched.
func (c *Companion) SetSize(size Size) error {
	if c.destroyed {
		return ErrDestroyed
	}
	if !size.Valid() {
		return fmt.Errorf("%w: unknown size %d", ErrInvalidConfiguration, int(size))
	}
	if err := checkBounds(c.settings.Bounds, size); err != nil {
		return err
	}
	c.size = size
	return nil
}

// Destroy ends the companion. Further ticks fail with ErrDestroyed.
func (c *Companion) Destroy() {
	c.destroyed = true
}

func (c *Companion) Destroyed() bool { return c.destroyed }

// RestPoint is where a sleeping companion settles: just above the origin,
// pulled inside the area the current size can reach.
func (c *Companion) RestPoint() Point {
	p := Point{X: c.settings.Origin.X, Y: c.settings.Origin.Y - RestLift}
	return ClampToBounds(p, c.settings.Bounds, c.size)
}

func (c *Companion) ID() int               { return c.settings.ID }
func (c *Companion) Position() Point       { return c.pos }
func (c *Companion) Target() Point         { return c.target }
func (c *Companion) Size() Size            { return c.size }
func (c *Companion) Speed() float64        { return c.settings.Speed.Current }
func (c *Companion) Awake() bool           { return c.awake }
func (c *Companion) State() AnimationState { return c.state }
func (c *Companion) Ticks() int            { return c.ticks }
