package ledger

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/model/customerr"
	"max.ks1230/personal-accountant/internal/model/identifier"
	"max.ks1230/personal-accountant/internal/model/storage"
)

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) LedgerChanged(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type failingSaveStorage struct {
	*storage.InMemStorage
}

func (s failingSaveStorage) Save(context.Context, *ledger.Ledger) error {
	return &customerr.IOError{Op: "save ledger", Err: errors.New("disk full")}
}

func Test_Keeper_Scenario(t *testing.T) {
	ctx := context.Background()
	k := NewKeeper(storage.NewInMemStorage())

	l, err := k.Register(ctx, "alice")
	require.NoError(t, err)
	id := l.ID
	assert.True(t, identifier.Valid(id))

	l, err = k.AddIncome(ctx, id, dec("100"))
	require.NoError(t, err)
	assert.Equal(t, "100", l.Balance.String())

	l, err = k.AddExpense(ctx, id, dec("30"), "lunch")
	require.NoError(t, err)
	assert.Equal(t, "70", l.Balance.String())
	require.Len(t, l.Expenses, 1)
	assert.Equal(t, "30", l.Expenses[0].Amount.String())
	assert.Equal(t, "lunch", l.Expenses[0].Explanation)

	p, err := k.Project(ctx, id, DefaultFactor)
	require.NoError(t, err)
	assert.Equal(t, "77", p.Balance.String())
	assert.Equal(t, "33", p.Expenses.String())

	l, err = k.Reset(ctx, id)
	require.NoError(t, err)
	assert.True(t, l.Balance.IsZero())
	assert.Empty(t, l.Expenses)

	l, err = k.Login(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", l.Username)
	assert.Equal(t, id, l.ID)
	assert.True(t, l.Balance.IsZero())
	assert.Empty(t, l.Expenses)
}

func Test_Keeper_Login_ShouldReturnNotFound(t *testing.T) {
	k := NewKeeper(storage.NewInMemStorage())

	for _, id := range []string{identifier.Generate(), "not-a-code", ""} {
		_, err := k.Login(context.Background(), id)
		assert.True(t, errors.Is(err, customerr.ErrNotFound), "id %q", id)
	}
}

func Test_Keeper_InvalidAmount_ShouldNotPersist(t *testing.T) {
	ctx := context.Background()
	n := &notifierMock{}
	k := NewKeeper(storage.NewInMemStorage(), n)
	n.On("LedgerChanged", mock.Anything, mock.Anything).Return(nil)

	l, err := k.Register(ctx, "alice")
	require.NoError(t, err)
	_, err = k.AddIncome(ctx, l.ID, dec("10"))
	require.NoError(t, err)

	_, err = k.AddExpense(ctx, l.ID, dec("-1"), "")
	assert.True(t, errors.Is(err, customerr.ErrInvalidAmount))
	_, err = k.AddIncome(ctx, l.ID, dec("-1"))
	assert.True(t, errors.Is(err, customerr.ErrInvalidAmount))

	loaded, err := k.Login(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "10", loaded.Balance.String())
	assert.Empty(t, loaded.Expenses)
	n.AssertNumberOfCalls(t, "LedgerChanged", 1)
}

func Test_Keeper_ShouldNotifyAfterSave(t *testing.T) {
	ctx := context.Background()
	n := &notifierMock{}
	k := NewKeeper(storage.NewInMemStorage(), n)

	l, err := k.Register(ctx, "alice")
	require.NoError(t, err)
	n.On("LedgerChanged", mock.Anything, l.ID).Return(errors.New("cache down")).Twice()

	_, err = k.AddIncome(ctx, l.ID, dec("1"))
	assert.NoError(t, err)
	_, err = k.Reset(ctx, l.ID)
	assert.NoError(t, err)

	n.AssertExpectations(t)
}

func Test_Keeper_SaveFailure_ShouldPropagateIOError(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewInMemStorage()
	l, err := mem.Create(ctx, "alice", identifier.Generate())
	require.NoError(t, err)
	n := &notifierMock{}
	k := NewKeeper(failingSaveStorage{mem}, n)

	_, err = k.AddIncome(ctx, l.ID, dec("5"))

	assert.True(t, customerr.IsIO(err))
	n.AssertNotCalled(t, "LedgerChanged", mock.Anything, mock.Anything)
}

func Test_Keeper_ConcurrentMutations_ShouldNotLoseUpdates(t *testing.T) {
	ctx := context.Background()
	k := NewKeeper(storage.NewInMemStorage())
	a, err := k.Register(ctx, "a")
	require.NoError(t, err)
	b, err := k.Register(ctx, "b")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := k.AddIncome(ctx, a.ID, decimal.NewFromInt(2))
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := k.AddExpense(ctx, a.ID, decimal.NewFromInt(1), "x")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	loaded, err := k.Login(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "50", loaded.Balance.String())
	assert.Len(t, loaded.Expenses, 50)

	untouched, err := k.Login(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, untouched.Balance.IsZero())
	assert.Empty(t, untouched.Expenses)
	assert.Equal(t, 0, k.locks.size())
}
