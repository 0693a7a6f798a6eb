package obj

import (
	"testing"

	"github.com/milk9111/neko/companion"
)

func TestTargetFeedLastWriteWins(t *testing.T) {
	f := NewTargetFeed()
	seed := companion.Point{X: 1, Y: 2}
	s := f.Subscribe(seed)
	if s.Latest() != seed {
		t.Fatalf("expected seed before first publish, got %+v", s.Latest())
	}

	f.Publish(companion.Point{X: 10, Y: 10})
	f.Publish(companion.Point{X: 20, Y: 30})
	if got := s.Latest(); got != (companion.Point{X: 20, Y: 30}) {
		t.Fatalf("expected last published value, got %+v", got)
	}
}

func TestSubscriptionClose(t *testing.T) {
	f := NewTargetFeed()
	a := f.Subscribe(companion.Point{})
	b := f.Subscribe(companion.Point{})
	if f.Len() != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", f.Len())
	}

	f.Publish(companion.Point{X: 5, Y: 5})
	a.Close()
	a.Close()
	f.Publish(companion.Point{X: 9, Y: 9})

	if !a.Closed() || b.Closed() {
		t.Fatalf("unexpected closed flags a=%v b=%v", a.Closed(), b.Closed())
	}
	if got := a.Latest(); got != (companion.Point{X: 5, Y: 5}) {
		t.Fatalf("closed subscription kept updating: %+v", got)
	}
	if got := b.Latest(); got != (companion.Point{X: 9, Y: 9}) {
		t.Fatalf("open subscription missed update: %+v", got)
	}
	if f.Len() != 1 {
		t.Fatalf("expected 1 subscription, got %d", f.Len())
	}
}
