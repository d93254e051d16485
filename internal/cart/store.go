package cart

import (
	"sync"
	"time"
)

// Store owns the session carts. Whole Cart values are swapped under the mutex,
// so readers always see either the previous or the next state, never a partial
// one. Carts are session-scoped; nothing survives the TTL.
type Store struct {
	mu      sync.RWMutex
	entries map[string]storeEntry
	ttl     time.Duration
	now     func() time.Time
}

type storeEntry struct {
	cart    Cart
	touched time.Time
}

// NewStore builds a session cart store. A non-positive TTL disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: map[string]storeEntry{},
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cart for the session, or an empty cart.
func (s *Store) Get(sessionID string) Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[sessionID]
	if !ok || s.expired(entry) {
		return Cart{}
	}
	return entry.cart
}

// Update applies fn to the current cart and swaps in the result atomically.
func (s *Store) Update(sessionID string, fn func(Cart) Cart) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := Cart{}
	if entry, ok := s.entries[sessionID]; ok && !s.expired(entry) {
		current = entry.cart
	}
	next := fn(current)
	s.entries[sessionID] = storeEntry{cart: next, touched: s.now()}
	return next
}

// Clear drops the session's cart. Clearing an absent session is a no-op.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}

// Sweep removes expired sessions and reports how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.entries {
		if s.expired(entry) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *Store) expired(entry storeEntry) bool {
	if s.ttl <= 0 {
		return false
	}
	return s.now().Sub(entry.touched) > s.ttl
}
