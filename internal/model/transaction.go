// Package model defines the core domain types shared across the application.
package model

import "time"

// TransactionType indicates the direction money moved.
type TransactionType string

const (
	// TypeIncome marks money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense marks money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known directions.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single recorded income or expense event.
// Amount is in whole rupiah and never negative; direction is carried
// by Type, never by a sign on the amount.
type Transaction struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
	Type      TransactionType
	Category  string
	Note      string
	WalletID  string // empty when unassigned
	Amount    int64
}
