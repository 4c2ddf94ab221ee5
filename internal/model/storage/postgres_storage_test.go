package storage

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/entity/price"
)

func Test_UpsertLedgerQuery_ShouldOverwriteOnConflict(t *testing.T) {
	l := sampleLedger()
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	query, args, err := upsertLedgerQuery(l, now).ToSql()

	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO ledgers (id,username,balance,updated_at) VALUES ($1,$2,$3,$4) "+
			"ON CONFLICT(id) DO UPDATE SET username = EXCLUDED.username, balance = EXCLUDED.balance, updated_at = EXCLUDED.updated_at",
		query)
	assert.Equal(t, []interface{}{l.ID, "alice", "57.55", now}, args)
}

func Test_InsertExpensesQuery_ShouldKeepOrder(t *testing.T) {
	l := sampleLedger()
	l.Expenses[1].Created = time.Time{}

	queries := insertExpensesQueries(l)
	require.Len(t, queries, 1)
	query, args, err := queries[0].ToSql()

	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO expenses (ledger_id,position,amount,explanation,created_at) VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10)",
		query)
	require.Len(t, args, 10)
	assert.Equal(t, 0, args[1])
	assert.Equal(t, "30", args[2])
	assert.Equal(t, "lunch", args[3])
	assert.Equal(t, sql.NullTime{Time: l.Expenses[0].Created, Valid: true}, args[4])
	assert.Equal(t, 1, args[6])
	assert.Equal(t, sql.NullTime{}, args[9])
}

func Test_InsertExpensesQueries_ShouldSplitLongLogs(t *testing.T) {
	l := ledger.New("id-1", "alice")
	for i := 0; i < 2*expenseInsertBatch+500; i++ {
		l.Expenses = append(l.Expenses, ledger.ExpenseEntry{Amount: decimal.NewFromInt(int64(i))})
	}

	queries := insertExpensesQueries(l)

	require.Len(t, queries, 3)
	sizes := []int{expenseInsertBatch, expenseInsertBatch, 500}
	for i, q := range queries {
		_, args, err := q.ToSql()
		require.NoError(t, err)
		require.Len(t, args, 5*sizes[i])
		assert.Equal(t, i*expenseInsertBatch, args[1], "batch %d starts at its position", i)
		assert.Equal(t, i*expenseInsertBatch+sizes[i]-1, args[len(args)-4], "batch %d ends at its position", i)
	}
}

func Test_InsertExpensesQueries_ShouldBeEmptyWithoutExpenses(t *testing.T) {
	assert.Empty(t, insertExpensesQueries(ledger.New("id-1", "alice")))
}

func Test_SelectExpensesQuery_ShouldOrderByPosition(t *testing.T) {
	query, args, err := selectExpensesQuery("id-1").ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT amount, explanation, created_at FROM expenses WHERE ledger_id = $1 ORDER BY position", query)
	assert.Equal(t, []interface{}{"id-1"}, args)
}

func Test_DeleteExpensesQuery_ShouldTargetOneLedger(t *testing.T) {
	query, args, err := deleteExpensesQuery("id-1").ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM expenses WHERE ledger_id = $1", query)
	assert.Equal(t, []interface{}{"id-1"}, args)
}

func Test_InsertQuoteQuery_ShouldStoreAvailability(t *testing.T) {
	at := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	query, args, err := insertQuoteQuery(price.Quote{Name: price.GoldUSD, UpdatedAt: at}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO quotes (name,value,available,updated_at) VALUES ($1,$2,$3,$4)", query)
	assert.Equal(t, []interface{}{price.GoldUSD, 0.0, false, at}, args)
}
