package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists rules to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens a SQLite rule store.
// The path should be a file path (e.g., "./rules.db") or ":memory:" for
// testing. Opening an existing database is safe: schema creation is
// idempotent.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS rules (
			id TEXT PRIMARY KEY,
			rule_text TEXT NOT NULL,
			created_at TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Add implements Store.
func (s *SQLiteStore) Add(text string) (Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
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

	_, err := s.db.Exec(`
		INSERT INTO rules (id, rule_text, created_at)
		VALUES (?, ?, ?)
	`, rule.ID, rule.Text, rule.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Rule{}, fmt.Errorf("add rule: %w", err)
	}
	return rule, nil
}

// List implements Store.
func (s *SQLiteStore) List() ([]Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	// rowid preserves insertion order
	rows, err := s.db.Query(`
		SELECT id, rule_text, created_at FROM rules
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	defer rows.Close()

	rules := []Rule{}
	for rows.Next() {
		var rule Rule
		var createdAt string
		if err := rows.Scan(&rule.ID, &rule.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		rule.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rules: %w", err)
	}

	return rules, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
