package ledger

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/model/customerr"
)

var fixedNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func newTestService() *Service {
	return &Service{now: func() time.Time { return fixedNow }}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func cloneLedger(l *ledger.Ledger) *ledger.Ledger {
	c := *l
	c.Expenses = make([]ledger.ExpenseEntry, len(l.Expenses))
	copy(c.Expenses, l.Expenses)
	return &c
}

func Test_AddIncome_ShouldAccumulate(t *testing.T) {
	s := newTestService()
	l := ledger.New("id", "alice")
	l.Balance = dec("5")

	require.NoError(t, s.AddIncome(l, dec("10.25")))
	require.NoError(t, s.AddIncome(l, dec("0")))
	require.NoError(t, s.AddIncome(l, dec("4.75")))

	assert.Equal(t, "20", l.Balance.String())
	assert.Empty(t, l.Expenses)
}

func Test_AddExpense_ShouldAppendAndSubtract(t *testing.T) {
	s := newTestService()
	l := ledger.New("id", "alice")
	l.Balance = dec("100")
	require.NoError(t, s.AddExpense(l, dec("1"), "bus"))

	require.NoError(t, s.AddExpense(l, dec("30"), "lunch"))

	assert.Equal(t, "69", l.Balance.String())
	require.Len(t, l.Expenses, 2)
	last := l.Expenses[1]
	assert.Equal(t, "30", last.Amount.String())
	assert.Equal(t, "lunch", last.Explanation)
	assert.Equal(t, fixedNow, last.Created)
}

func Test_AddExpense_ShouldAllowBalanceBelowZero(t *testing.T) {
	s := newTestService()
	l := ledger.New("id", "alice")

	require.NoError(t, s.AddExpense(l, dec("12"), ""))

	assert.Equal(t, "-12", l.Balance.String())
}

func Test_NegativeAmounts_ShouldBeRejectedWithoutChanges(t *testing.T) {
	s := newTestService()
	l := ledger.New("id", "alice")
	l.Balance = dec("50")
	require.NoError(t, s.AddExpense(l, dec("5"), "tea"))
	before := cloneLedger(l)

	err := s.AddIncome(l, dec("-1"))
	assert.True(t, errors.Is(err, customerr.ErrInvalidAmount))

	err = s.AddExpense(l, dec("-1"), "")
	assert.True(t, errors.Is(err, customerr.ErrInvalidAmount))

	assert.Equal(t, before, l)
}

func Test_OutOfRangeAmounts_ShouldBeRejectedWithoutChanges(t *testing.T) {
	for _, amount := range []string{"1e30000000", "1e-30000000", "1234567890123456", "0.123456789"} {
		t.Run(amount, func(t *testing.T) {
			s := newTestService()
			l := ledger.New("id", "alice")
			l.Balance = dec("50")
			require.NoError(t, s.AddExpense(l, dec("5"), "tea"))
			before := cloneLedger(l)

			err := s.AddIncome(l, dec(amount))
			assert.True(t, errors.Is(err, customerr.ErrInvalidAmount), err)

			err = s.AddExpense(l, dec(amount), "")
			assert.True(t, errors.Is(err, customerr.ErrInvalidAmount), err)

			assert.Equal(t, before, l)
		})
	}
}

func Test_AmountsAtTheLimit_ShouldBeAccepted(t *testing.T) {
	s := newTestService()
	l := ledger.New("id", "alice")

	require.NoError(t, s.AddIncome(l, dec("999999999999999.99999999")))
	require.NoError(t, s.AddExpense(l, dec("0.00000001"), "crumb"))
	require.NoError(t, s.AddExpense(l, dec("0"), "free"))

	assert.True(t, l.Balance.Equal(dec("999999999999999.99999998")), l.Balance.String())
	assert.Len(t, l.Expenses, 2)
}

func Test_Reset_ShouldKeepOwner(t *testing.T) {
	s := newTestService()
	l := ledger.New("id", "alice")
	require.NoError(t, s.AddIncome(l, dec("100")))
	require.NoError(t, s.AddExpense(l, dec("30"), "lunch"))

	s.Reset(l)

	assert.Equal(t, "id", l.ID)
	assert.Equal(t, "alice", l.Username)
	assert.True(t, l.Balance.IsZero())
	assert.NotNil(t, l.Expenses)
	assert.Empty(t, l.Expenses)
}

func Test_Project_ShouldMultiplyBalanceAndExpenses(t *testing.T) {
	l := ledger.New("id", "alice")
	l.Balance = dec("70")
	l.Expenses = append(l.Expenses, ledger.ExpenseEntry{Amount: dec("30")})

	p := Project(l, DefaultFactor)

	assert.True(t, p.Balance.Equal(dec("77")), p.Balance.String())
	assert.True(t, p.Expenses.Equal(dec("33")), p.Expenses.String())
	assert.Equal(t, "70", l.Balance.String())
}

func Test_Project_ShouldHandleEmptyLedger(t *testing.T) {
	p := Project(ledger.New("id", "alice"), dec("2"))

	assert.True(t, p.Balance.IsZero())
	assert.True(t, p.Expenses.IsZero())
}
