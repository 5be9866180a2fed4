package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory rule store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	rules  []Rule
	closed bool
}

// NewMemoryStore creates a new in-memory rule store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add implements Store.
func (m *MemoryStore) Add(text string) (Rule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Rule{}, ErrStoreClosed
	}
	if text == "" {
		return Rule{}, ErrEmptyRuleText
	}

	rule := Rule{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	m.rules = append(m.rules, rule)
	return rule, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Rule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	// Return a copy to prevent modification
	rules := make([]Rule, len(m.rules))
	copy(rules, m.rules)
	return rules, nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.rules = nil
	return nil
}

// Len returns the number of stored rules. Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rules)
}
