package companion

import "github.com/milk9111/neko/sprite"

const (
	// idleSettleTicks must pass before an idle animation may start.
	idleSettleTicks = 5
	// idleOnsetOdds is the 1-in-N chance per tick of starting an animation.
	idleOnsetOdds = 100

	tiredFrames      = 8
	sleepFrameTicks  = 4
	sleepLastFrame   = 192
	scratchLastFrame = 9
)

// idleSelector picks and advances idle micro-animations. idleTime doubles
// as the alert memory read by the state machine.
type idleSelector struct {
	rng    Rand
	margin float64

	idleTime int
	kind     IdleKind
	frame    int
}

// tick runs one idle tick at pos and returns the key and frame to render.
func (s *idleSelector) tick(pos Point, bounds Bounds) (sprite.Key, int) {
	s.idleTime++

	if s.kind == IdleNone && s.idleTime > idleSettleTicks && s.rng.IntN(idleOnsetOdds) == 0 {
		candidates := s.candidates(pos, bounds)
		s.kind = candidates[s.rng.IntN(len(candidates))]
	}

	var (
		key   sprite.Key
		frame int
		last  int
	)
	switch s.kind {
	case IdleSleeping:
		if s.frame < tiredFrames {
			key, frame = sprite.KeyTired, 0
		} else {
			key, frame = sprite.KeySleeping, s.frame/sleepFrameTicks
		}
		last = sleepLastFrame
	case IdleScratchSelf, IdleScratchWallN, IdleScratchWallS, IdleScratchWallE, IdleScratchWallW:
		key, frame = s.kind.Key(), s.frame
		last = scratchLastFrame
	default:
		return sprite.KeyIdle, 0
	}

	s.frame++
	if s.frame > last {
		s.clearAnimation()
	}
	return key, frame
}

// candidates lists the animations available at pos. Wall scratches need the
// companion within margin of that wall.
func (s *idleSelector) candidates(pos Point, bounds Bounds) []IdleKind {
	out := []IdleKind{IdleSleeping, IdleScratchSelf}
	if pos.X < s.margin {
		out = append(out, IdleScratchWallW)
	}
	if pos.Y < s.margin {
		out = append(out, IdleScratchWallN)
	}
	if pos.X > bounds.Width-s.margin {
		out = append(out, IdleScratchWallE)
	}
	if pos.Y > bounds.Height-s.margin {
		out = append(out, IdleScratchWallS)
	}
	return out
}

func (s *idleSelector) clearAnimation() {
	s.kind = IdleNone
	s.frame = 0
}
