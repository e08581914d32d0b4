package cart

import "sync"

// Store holds the in-memory carts, keyed by session id. Carts are transient:
// a server restart loses them, and nothing here persists to the database. A
// cart only reaches storage once it is folded into a submitted inquiry.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: map[string]*Cart{}}
}

// Do runs fn against the session's cart under the store lock, creating the
// cart on first use.
func (s *Store) Do(sessionID string, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	fn(c)
}

// Snapshot returns the session's current line items without creating a cart.
func (s *Store) Snapshot(sessionID string) []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		return c.Items()
	}
	return nil
}

// Drop forgets the session's cart entirely.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
