package scorekeep

import (
	"sync"
	"time"
)

// State is the single shared in-memory mirror of one identity's score.
// Every Keeper created for an identity holds the same *State, so a score
// change made through one Keeper is visible through all of them.
//
// The Registry guards only its own map. State fields are mutated in place
// by Apply and ResetScore without locking; callers that share one identity
// across goroutines must serialize access themselves.
type State struct {
	Score       int
	LastUpdated *time.Time
}

// Registry maps counter identities to their shared State handles. Handles
// live for the process lifetime; there is no teardown.
type Registry struct {
	mu     sync.Mutex
	states map[string]*State
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{states: make(map[string]*State)}
}

// GetOrCreate returns the shared handle for identity, creating a zero-value
// handle on first use. The second return reports whether the handle was
// created by this call, so the caller knows to seed it from storage. The
// Registry itself performs no I/O.
func (r *Registry) GetOrCreate(identity string) (*State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.states[identity]; ok {
		return st, false
	}
	st := &State{}
	r.states[identity] = st
	return st, true
}
