package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func Test_New_ShouldStartEmpty(t *testing.T) {
	l := New("id", "alice")

	assert.Equal(t, "id", l.ID)
	assert.Equal(t, "alice", l.Username)
	assert.True(t, l.Balance.IsZero())
	assert.NotNil(t, l.Expenses)
	assert.Empty(t, l.Expenses)
}

func Test_ExpenseTotal_ShouldSumAmounts(t *testing.T) {
	l := New("id", "alice")
	l.Expenses = append(l.Expenses,
		ExpenseEntry{Amount: decimal.NewFromInt(30), Explanation: "lunch"},
		ExpenseEntry{Amount: decimal.RequireFromString("12.5")},
	)

	assert.Equal(t, "42.5", l.ExpenseTotal().String())
}
