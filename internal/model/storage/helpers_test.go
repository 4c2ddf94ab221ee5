package storage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/model/identifier"
)

func sampleLedger() *ledger.Ledger {
	l := ledger.New(identifier.Generate(), "alice")
	l.Balance = decimal.RequireFromString("57.55")
	l.Expenses = append(l.Expenses,
		ledger.ExpenseEntry{
			Amount:      decimal.NewFromInt(30),
			Explanation: "lunch",
			Created:     time.Date(2026, 10, 1, 12, 30, 0, 0, time.UTC),
		},
		ledger.ExpenseEntry{
			Amount:  decimal.RequireFromString("12.45"),
			Created: time.Date(2026, 10, 2, 8, 0, 0, 0, time.UTC),
		},
	)
	return l
}

func assertSameLedger(t *testing.T, want, got *ledger.Ledger) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Username, got.Username)
	assert.True(t, want.Balance.Equal(got.Balance), "balance %s != %s", want.Balance, got.Balance)
	if !assert.Len(t, got.Expenses, len(want.Expenses)) {
		return
	}
	for i := range want.Expenses {
		assert.True(t, want.Expenses[i].Amount.Equal(got.Expenses[i].Amount), "expense %d amount", i)
		assert.Equal(t, want.Expenses[i].Explanation, got.Expenses[i].Explanation, "expense %d explanation", i)
		assert.True(t, want.Expenses[i].Created.Equal(got.Expenses[i].Created), "expense %d created", i)
	}
}
