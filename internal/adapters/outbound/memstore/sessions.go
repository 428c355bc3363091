// Package memstore provides the in-memory implementations of the session
// store and order ledger ports. State lives for the process lifetime;
// durability across restarts is out of scope.
package memstore

import (
	"sync"
	"time"

	"github.com/tableside/tableside/internal/domain"
)

// Sessions is the in-memory domain.SessionStore. A read-write mutex
// guards the id map; each session carries its own lock, so operations on
// one session serialize without blocking other sessions.
type Sessions struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry

	now func() time.Time // swappable for tests
}

type sessionEntry struct {
	mu      sync.Mutex
	session domain.Session
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{
		entries: make(map[string]*sessionEntry),
		now:     time.Now,
	}
}

// Create registers a fresh session with an empty cart.
func (s *Sessions) Create() domain.Session {
	now := s.now()
	sess := domain.Session{
		ID:         domain.NewSessionID(),
		Cart:       domain.Cart{},
		CreatedAt:  now,
		LastActive: now,
	}

	s.mu.Lock()
	s.entries[sess.ID] = &sessionEntry{session: sess}
	s.mu.Unlock()

	return sess.Snapshot()
}

// Get returns a snapshot of the session, or domain.ErrSessionNotFound.
func (s *Sessions) Get(id string) (domain.Session, error) {
	e, err := s.entry(id)
	if err != nil {
		return domain.Session{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Snapshot(), nil
}

// Update applies fn under the session's lock and bumps LastActive. The
// entry lock makes fn plus the timestamp bump one atomic unit: no reader
// of the same session can observe one without the other.
func (s *Sessions) Update(id string, fn func(sess *domain.Session) error) (domain.Session, error) {
	e, err := s.entry(id)
	if err != nil {
		return domain.Session{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := fn(&e.session); err != nil {
		return domain.Session{}, err
	}
	e.session.LastActive = s.now()
	return e.session.Snapshot(), nil
}

// EvictIdle removes sessions whose LastActive is before cutoff. Each
// entry's lock is taken before inspecting it, so a session in the middle
// of an operation is never judged on a stale timestamp.
func (s *Sessions) EvictIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.entries {
		e.mu.Lock()
		idle := e.session.LastActive.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(s.entries, id)
			evicted++
		}
	}
	return evicted
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Sessions) entry(id string) (*sessionEntry, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return e, nil
}
