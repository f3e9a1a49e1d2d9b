package session

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned when a session id has no live entry.
var ErrNotFound = errors.New("session not found")

// ErrTurnInFlight is returned when a second external call arrives for a
// session whose previous turn has not finished.
var ErrTurnInFlight = errors.New("turn already in flight for session")

// Registry maps session ids to live entries. Sessions are independent
// and may run concurrently, but each individual session processes at
// most one external turn at a time; Acquire enforces that.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
}

type entry[T any] struct {
	value T
	busy  bool
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[string]*entry[T])}
}

// Put registers a value under a session id.
func (r *Registry[T]) Put(id string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &entry[T]{value: v}
}

// PutAcquired registers a value with the turn guard already held, so
// the caller's first turn cannot interleave with an external call that
// learns the session id mid-turn. The returned release func ends the
// guard; calling it after Remove is harmless.
func (r *Registry[T]) PutAcquired(id string, v T) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := &entry[T]{value: v, busy: true}
	r.entries[id] = e
	return func() {
		r.mu.Lock()
		e.busy = false
		r.mu.Unlock()
	}
}

// Get returns the value for a session id without acquiring the turn
// guard. Suitable for read-only queries.
func (r *Registry[T]) Get(id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e.value, nil
}

// Acquire returns the value for a session id and marks the session
// busy until the returned release func is called. A second Acquire on
// the same id before release fails with ErrTurnInFlight.
func (r *Registry[T]) Acquire(id string) (T, func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		var zero T
		return zero, nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if e.busy {
		var zero T
		return zero, nil, fmt.Errorf("%w: %s", ErrTurnInFlight, id)
	}
	e.busy = true
	release := func() {
		r.mu.Lock()
		e.busy = false
		r.mu.Unlock()
	}
	return e.value, release, nil
}

// Remove drops a session from the registry, typically after it has been
// persisted.
func (r *Registry[T]) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// IDs returns the ids of all live sessions.
func (r *Registry[T]) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}
