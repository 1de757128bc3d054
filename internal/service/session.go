package service

import (
	"sync"
	"time"

	"github.com/Lixing-Zhang/grocify/internal/shopping"
)

// Session is the state one shopper works on: the category filter, the
// unsaved cart and the saved lists. Every operation on a session runs to
// completion under mu before the next one starts.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	selection shopping.Selection
	cart      shopping.Cart
	lists     shopping.ListStore
	lastSeen  time.Time
	// removed is set once the session has been ended or evicted
	removed bool
}

func newSession(id string, now time.Time, lists shopping.ListStore) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		selection: shopping.DefaultSelection(),
		cart:      shopping.NewCart(),
		lists:     lists,
		lastSeen:  now,
	}
}

// expire marks the session removed if it has been untouched since cutoff
func (s *Session) expire(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed || !s.lastSeen.Before(cutoff) {
		return false
	}
	s.removed = true
	return true
}

// close marks the session removed. It reports false if it already was.
func (s *Session) close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return false
	}
	s.removed = true
	return true
}
