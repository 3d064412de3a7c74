package targets

import (
	"slices"
	"time"
)

// Registry is the ordered set of live targets, oldest first. It is owned by
// the game loop goroutine and is not safe for concurrent use.
type Registry struct {
	targets []*Target
}

func NewRegistry() *Registry {
	return &Registry{
		targets: make([]*Target, 0, 16),
	}
}

func (r *Registry) Add(t *Target) {
	r.targets = append(r.targets, t)
}

// Decay subtracts dt from every target and removes the ones whose life
// reached zero. The removed targets are returned oldest first.
func (r *Registry) Decay(dt time.Duration) []*Target {
	var expired []*Target
	kept := r.targets[:0]
	for _, t := range r.targets {
		t.Life -= dt
		if t.Life <= 0 {
			expired = append(expired, t)
			continue
		}
		kept = append(kept, t)
	}
	clear(r.targets[len(kept):])
	r.targets = kept
	return expired
}

// HitAt removes and returns the most recently added target containing
// (x, y), or nil when the point misses everything.
func (r *Registry) HitAt(x, y float64) *Target {
	for i := len(r.targets) - 1; i >= 0; i-- {
		t := r.targets[i]
		if t.Contains(x, y) {
			r.targets = slices.Delete(r.targets, i, i+1)
			return t
		}
	}
	return nil
}

// List returns a copy of the live targets, oldest first.
func (r *Registry) List() []*Target {
	list := make([]*Target, len(r.targets))
	copy(list, r.targets)
	return list
}

func (r *Registry) Len() int {
	return len(r.targets)
}

func (r *Registry) Clear() {
	clear(r.targets)
	r.targets = r.targets[:0]
}
