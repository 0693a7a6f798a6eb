package obj

import (
	"time"

	"github.com/milk9111/neko/companion"
)

// Clock turns variable frame times into a whole number of fixed-period
// ticks. The owner decides when to advance it.
type Clock struct {
	period time.Duration
	acc    time.Duration
	ticks  int
}

// NewClock returns a clock firing every period, or every
// companion.DefaultTickPeriod when period is not positive.
func NewClock(period time.Duration) *Clock {
	if period <= 0 {
		period = companion.DefaultTickPeriod
	}
	return &Clock{period: period}
}

// maxCatchUp caps how many ticks one Advance may report after a stall.
const maxCatchUp = 5

// Advance adds dt and returns how many ticks are due.
func (c *Clock) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	c.acc += dt
	n := int(c.acc / c.period)
	c.acc -= time.Duration(n) * c.period
	if n > maxCatchUp {
		n = maxCatchUp
	}
	c.ticks += n
	return n
}

func (c *Clock) Reset() {
	c.acc = 0
}

func (c *Clock) Period() time.Duration { return c.period }

// Ticks is the total number of ticks reported so far.
func (c *Clock) Ticks() int { return c.ticks }
