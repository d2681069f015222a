package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMemory_InsertPayment(t *testing.T) {
	s := NewMemory()
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	exp, err := s.InsertPayment(context.Background(), decimal.NewFromInt(50), "electronics", "Headphones", date)
	if err != nil {
		t.Fatalf("InsertPayment failed: %v", err)
	}
	if exp.ID == "" {
		t.Error("Expected an assigned ID")
	}
	if exp.Category != "Electronics" {
		t.Errorf("Category = %q, want %q", exp.Category, "Electronics")
	}
	if got := s.Expenses(); len(got) != 1 {
		t.Errorf("Expenses() returned %d rows, want 1", len(got))
	}
}

func TestMemory_CategoryCapitalization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"electronics", "Electronics"},
		{"GROCERIES", "Groceries"},
		{"Other", "Other"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := capitalize(tt.in); got != tt.want {
				t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMemory_RejectsNonPositiveAmount(t *testing.T) {
	s := NewMemory()
	_, err := s.InsertPayment(context.Background(), decimal.Zero, "Other", "", time.Now())
	if err == nil {
		t.Error("Expected error for zero amount")
	}
}

func TestMemory_RejectsDuplicate(t *testing.T) {
	s := NewMemory()
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("12.50")

	if _, err := s.InsertPayment(context.Background(), amount, "Groceries", "Milk", date); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := s.InsertPayment(context.Background(), amount, "Groceries", "Milk", date); err == nil {
		t.Error("Expected duplicate insert to be rejected")
	}
	// same day but different description is fine
	if _, err := s.InsertPayment(context.Background(), amount, "Groceries", "Bread", date); err != nil {
		t.Errorf("non-duplicate insert failed: %v", err)
	}
}

func TestMemory_ExpensesReturnsCopies(t *testing.T) {
	s := NewMemory()
	if _, err := s.InsertPayment(context.Background(), decimal.NewFromInt(1), "Other", "x", time.Now()); err != nil {
		t.Fatal(err)
	}

	s.Expenses()[0].Description = "mutated"

	if s.Expenses()[0].Description != "x" {
		t.Error("Expected stored expense to be unaffected by mutation of the snapshot")
	}
}
