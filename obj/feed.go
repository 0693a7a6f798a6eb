package obj

import (
	"sync"

	"github.com/milk9111/neko/companion"
)

// TargetFeed fans the latest pointer position out to open subscriptions.
// Only the most recent value is kept.
type TargetFeed struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func NewTargetFeed() *TargetFeed {
	return &TargetFeed{subs: make(map[*Subscription]struct{})}
}

// Subscribe starts tracking. The subscription reports seed until the first
// Publish.
func (f *TargetFeed) Subscribe(seed companion.Point) *Subscription {
	s := &Subscription{feed: f, latest: seed}
	f.mu.Lock()
	f.subs[s] = struct{}{}
	f.mu.Unlock()
	return s
}

// Publish records p on every open subscription.
func (f *TargetFeed) Publish(p companion.Point) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for s := range f.subs {
		s.latest = p
	}
}

// Len returns the number of open subscriptions.
func (f *TargetFeed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *TargetFeed) remove(s *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subs, s)
}

// Subscription is a handle on a TargetFeed. After Close it keeps
// reporting the last value it saw.
type Subscription struct {
	feed   *TargetFeed
	once   sync.Once
	closed bool
	latest companion.Point
}

// Latest returns the most recent published position.
func (s *Subscription) Latest() companion.Point {
	s.feed.mu.Lock()
	defer s.feed.mu.Unlock()
	return s.latest
}

// Close stops updates. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.feed.remove(s)
		s.feed.mu.Lock()
		s.closed = true
		s.feed.mu.Unlock()
	})
}

func (s *Subscription) Closed() bool {
	s.feed.mu.Lock()
	defer s.feed.mu.Unlock()
	return s.closed
}
