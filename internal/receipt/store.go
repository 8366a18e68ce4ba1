package receipt

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds validated receipts in memory for the lifetime of the
// process. Identifier generation and insertion happen under a single lock
// so a Get can never observe a partially-inserted receipt.
type Store struct {
	mu       sync.RWMutex
	receipts map[string]Receipt
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{receipts: make(map[string]Receipt)}
}

// Put assigns a fresh identifier to the receipt, inserts it, and returns
// the identifier.
func (s *Store) Put(r Receipt) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts[id] = r
	return id
}

// Get retrieves a stored receipt by identifier.
func (s *Store) Get(id string) (Receipt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.receipts[id]
	return r, ok
}

// Len reports the number of stored receipts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.receipts)
}
