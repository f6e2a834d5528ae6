// Package memory is a seeded in-process budget backend. It stands in for the
// external API in development and tests; seed data can come from JSON files
// in a data directory.
package memory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"budgetlens/internal/core"
)

type Store struct {
	mu       sync.Mutex
	months   map[string][]core.CategoryRecord
	accounts []core.AccountSummary
}

func New(months map[string][]core.CategoryRecord, accounts []core.AccountSummary) *Store {
	if months == nil {
		months = make(map[string][]core.CategoryRecord)
	}
	return &Store{months: months, accounts: accounts}
}

// NewFromFiles seeds the store from months.json and accounts.json under
// base. Missing or unreadable files leave the store empty.
func NewFromFiles(base string) *Store {
	var months map[string][]core.CategoryRecord
	readJSON(filepath.Join(base, "months.json"), &months)

	var accounts []core.AccountSummary
	readJSON(filepath.Join(base, "accounts.json"), &accounts)

	return New(months, accounts)
}

// MonthCategories implements budget.MonthReader.
func (s *Store) MonthCategories(_ context.Context, month string) ([]core.CategoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.CategoryRecord(nil), s.months[month]...), nil
}

// Accounts implements budget.AccountReader.
func (s *Store) Accounts(_ context.Context) ([]core.AccountSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.AccountSummary(nil), s.accounts...), nil
}

// SetMonth replaces one month's records.
func (s *Store) SetMonth(month string, records []core.CategoryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.months[month] = append([]core.CategoryRecord(nil), records...)
}

func readJSON(path string, out any) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, out)
}
