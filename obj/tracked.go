package obj

import (
	"github.com/milk9111/neko/companion"
)

// Tracked binds a companion to its target subscription. The subscription
// is open only while the companion is awake.
type Tracked struct {
	c    *companion.Companion
	feed *TargetFeed
	sub  *Subscription
	reg  *Registry

	released bool
}

// Spawn registers cfg.ID, builds the companion and starts tracking when it
// is awake.
func Spawn(reg *Registry, feed *TargetFeed, cfg companion.Config, opts ...companion.Option) (*Tracked, error) {
	if err := reg.Register(cfg.ID); err != nil {
		return nil, err
	}
	c, err := companion.New(cfg, opts...)
	if err != nil {
		reg.Release(cfg.ID)
		return nil, err
	}
	t := &Tracked{c: c, feed: feed, reg: reg}
	if c.Awake() {
		t.sub = feed.Subscribe(c.Target())
	}
	return t, nil
}

// Tick runs one engine tick with the latest tracked position.
func (t *Tracked) Tick() (companion.Decision, error) {
	target := t.c.Target()
	if t.sub != nil {
		target = t.sub.Latest()
	}
	return t.c.Tick(target)
}

// Sleep closes the subscription and puts the companion to sleep.
func (t *Tracked) Sleep() bool {
	if !t.c.Sleep() {
		return false
	}
	t.closeSub()
	return true
}

// Wake reopens tracking, seeded with the companion's current target so it
// keeps resting until the pointer moves.
func (t *Tracked) Wake() bool {
	if !t.c.Wake() {
		return false
	}
	t.sub = t.feed.Subscribe(t.c.Target())
	return true
}

// Destroy stops tracking, ends the companion and frees its id.
// It also cleans up after a companion destroyed directly.
func (t *Tracked) Destroy() {
	t.closeSub()
	t.c.Destroy()
	if !t.released {
		t.reg.Release(t.c.ID())
		t.released = true
	}
}

func (t *Tracked) Companion() *companion.Companion { return t.c }

// Tracking reports whether live target updates reach the companion.
func (t *Tracked) Tracking() bool { return t.sub != nil }

func (t *Tracked) closeSub() {
	if t.sub != nil {
		t.sub.Close()
		t.sub = nil
	}
}
