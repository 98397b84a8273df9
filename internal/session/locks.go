// Package session provides game session identifiers and per-session
// locking so a load, mutate, save cycle for one game never interleaves
// with another request for the same game.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultID is used when the caller does not name a session.
const DefaultID = "default"

// NewID returns a fresh random session identifier.
func NewID() string {
	return uuid.NewString()
}

// Locks hands out one mutex per session ID.
// Thread-safe for concurrent access; entries are dropped once unused.
type Locks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int // Holders plus waiters
}

// NewLocks creates an empty lock registry.
func NewLocks() *Locks {
	return &Locks{
		entries: make(map[string]*lockEntry),
	}
}

// Lock blocks until the session is free and returns the function that
// releases it. The returned function must be called exactly once.
func (l *Locks) Lock(id string) (unlock func()) {
	l.mu.Lock()
	e, ok := l.entries[id]
	if !ok {
		e = &lockEntry{}
		l.entries[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.entries, id)
			}
			l.mu.Unlock()
		})
	}
}

// Count returns the number of sessions currently locked or awaited.
func (l *Locks) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
