package wallet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// record is the persisted wallet shape: a single balance field.
type record struct {
	Balance int `json:"balance"`
}

// Store owns the wallet file. It reads and writes the raw record; the
// Manager decides what a missing or corrupt file means.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Read loads the persisted balance. The bool is false when no usable
// record exists, whether the file is absent or malformed.
func (s *Store) Read() (int, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, false
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, false
	}
	return rec.Balance, true
}

// Write persists the balance, creating the parent directory if needed.
func (s *Store) Write(balance int) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create wallet dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(record{Balance: balance}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode wallet: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write wallet: %w", err)
	}
	return nil
}
