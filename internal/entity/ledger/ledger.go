// Package ledger holds the per-user financial record.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseEntry is one recorded expense.
type ExpenseEntry struct {
	Amount      decimal.Decimal
	Explanation string
	Created     time.Time
}

// Ledger is the persisted financial state of one user.
//
// Balance is the running total of income minus expenses. Expenses are kept in
// insertion order.
type Ledger struct {
	ID       string
	Username string
	Balance  decimal.Decimal
	Expenses []ExpenseEntry
}

// New returns an empty ledger with a zero balance.
func New(id, username string) *Ledger {
	return &Ledger{
		ID:       id,
		Username: username,
		Balance:  decimal.Zero,
		Expenses: make([]ExpenseEntry, 0),
	}
}

// ExpenseTotal sums the amounts of all recorded expenses.
func (l *Ledger) ExpenseTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}
