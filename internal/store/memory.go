// Package store holds the persistence collaborator used by the
// ingestion pipeline. Memory keeps expenses in memory and is safe for
// concurrent use; data is lost on restart - a database-backed store
// would implement the same interface.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmarren/budget-tracker/internal/domain"
)

// Memory is an in-memory expense store.
type Memory struct {
	mu       sync.RWMutex
	expenses []*domain.Expense
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// InsertPayment persists one expense and returns a handle with an
// assigned identifier. The category arrives with whatever case the
// source used and is normalized here. An expense matching an existing
// one on date, amount, and description is rejected as a duplicate,
// which the pipeline reports as a row-scoped failure.
func (s *Memory) InsertPayment(ctx context.Context, amount decimal.Decimal, category, description string, date time.Time) (*domain.Expense, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive, got %s", amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.expenses {
		if sameDay(e.Date, date) && e.Amount.Equal(amount) && e.Description == description {
			return nil, fmt.Errorf("duplicate expense: %s %s %q", date.Format("2006-01-02"), amount, description)
		}
	}

	exp := &domain.Expense{
		ID:          uuid.NewString(),
		Amount:      amount,
		Category:    capitalize(category),
		Description: description,
		Date:        date,
	}
	s.expenses = append(s.expenses, exp)

	// Return a copy to avoid external modifications
	out := *exp
	return &out, nil
}

// Expenses returns a snapshot of all stored expenses in insertion order.
func (s *Memory) Expenses() []*domain.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Expense, len(s.expenses))
	for i, e := range s.expenses {
		cp := *e
		out[i] = &cp
	}
	return out
}

// capitalize upper-cases the first letter and lower-cases the rest, so
// "electronics" and "ELECTRONICS" both store as "Electronics".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
