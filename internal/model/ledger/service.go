// Package ledger applies income, expense and reset operations to user
// ledgers and persists them.
package ledger

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/model/customerr"
)

// DefaultFactor is the multiplier used by Project when none is configured.
var DefaultFactor = decimal.RequireFromString("1.1")

const (
	// MaxAmountScale is the number of fractional digits an amount may carry.
	MaxAmountScale = 8
	// MaxAmountDigits bounds the integer part of an amount.
	MaxAmountDigits = 15
)

// Service is the only code that mutates a ledger's balance and expenses.
// It works on ledgers that are already loaded and does no I/O.
type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// AddIncome adds amount to the balance. Income events are not logged.
func (s *Service) AddIncome(l *ledger.Ledger, amount decimal.Decimal) error {
	if err := checkAmount("income", amount); err != nil {
		return err
	}
	l.Balance = l.Balance.Add(amount)
	return nil
}

// AddExpense appends the expense to the log and subtracts it from the balance.
func (s *Service) AddExpense(l *ledger.Ledger, amount decimal.Decimal, explanation string) error {
	if err := checkAmount("expense", amount); err != nil {
		return err
	}
	l.Expenses = append(l.Expenses, ledger.ExpenseEntry{
		Amount:      amount,
		Explanation: explanation,
		Created:     s.now().UTC(),
	})
	l.Balance = l.Balance.Sub(amount)
	return nil
}

// checkAmount rejects negative amounts and amounts outside the supported
// range. It only looks at the exponent and the digit count: printing or
// rescaling an amount like 1e2000000000 would build the whole number.
func checkAmount(kind string, amount decimal.Decimal) error {
	if amount.Sign() < 0 {
		return errors.Wrapf(customerr.ErrInvalidAmount, "%s is negative", kind)
	}
	exp := int64(amount.Exponent())
	if exp < -MaxAmountScale {
		return errors.Wrapf(customerr.ErrInvalidAmount, "%s has more than %d decimal places", kind, MaxAmountScale)
	}
	if int64(amount.NumDigits())+exp > MaxAmountDigits {
		return errors.Wrapf(customerr.ErrInvalidAmount, "%s has more than %d integer digits", kind, MaxAmountDigits)
	}
	return nil
}

// Reset clears the balance and the expense log, keeping the owner.
func (s *Service) Reset(l *ledger.Ledger) {
	l.Balance = decimal.Zero
	l.Expenses = make([]ledger.ExpenseEntry, 0)
}

// Projection is a naive estimate of future values.
type Projection struct {
	Factor   decimal.Decimal
	Balance  decimal.Decimal
	Expenses decimal.Decimal
}

// Project multiplies the current balance and the expense total by factor.
// It is a fixed linear multiplier, not a forecasting model.
func Project(l *ledger.Ledger, factor decimal.Decimal) Projection {
	return Projection{
		Factor:   factor,
		Balance:  l.Balance.Mul(factor),
		Expenses: l.ExpenseTotal().Mul(factor),
	}
}
