package obj

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrAlreadyActive = errors.New("obj: companion already active")

// Registry tracks which companion ids currently own a render surface.
type Registry struct {
	mu  sync.Mutex
	ids map[int]struct{}
}

func NewRegistry() *Registry {
	return &Registry{ids: make(map[int]struct{})}
}

// Register claims id. It fails if another companion with the same id is
// alive.
func (r *Registry) Register(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[id]; ok {
		return fmt.Errorf("%w: id %d", ErrAlreadyActive, id)
	}
	r.ids[id] = struct{}{}
	return nil
}

// Release frees id and reports whether it was registered.
func (r *Registry) Release(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[id]; !ok {
		return false
	}
	delete(r.ids, id)
	return true
}

func (r *Registry) Active(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[id]
	return ok
}

// IDs returns the active ids in ascending order.
func (r *Registry) IDs() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// NextID returns the smallest id that is not active.
func (r *Registry) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := 0
	for {
		if _, ok := r.ids[id]; !ok {
			return id
		}
		id++
	}
}
