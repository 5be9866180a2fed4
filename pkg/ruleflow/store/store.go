// Package store provides persistent storage for raw rule text.
//
// The rule engine itself never reads or writes the store; callers
// compile stored rules with ruleflow.CombineRules after listing them.
package store

import (
	"errors"
	"time"
)

// Store persists rule text. Implementations must be safe for
// concurrent use. Schema initialization is idempotent and happens when
// the store is opened.
type Store interface {
	// Add appends a rule and returns it with its assigned ID.
	// Empty rule text returns ErrEmptyRuleText; the store does not
	// validate that the text parses.
	Add(text string) (Rule, error)

	// List returns all stored rules in insertion order.
	// Returns an empty slice (not an error) when the store is empty.
	List() ([]Rule, error)

	// Close releases any resources (connections, files).
	Close() error
}

// Rule is one stored rule.
type Rule struct {
	// ID is the store-assigned identifier.
	ID string
	// Text is the raw rule text as given to Add.
	Text string
	// CreatedAt is when the rule was stored.
	CreatedAt time.Time
}

// Sentinel errors for store operations.
var (
	// ErrEmptyRuleText indicates Add was called with an empty string.
	ErrEmptyRuleText = errors.New("rule text is empty")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("rule store closed")
)
