package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/entity/price"
	"max.ks1230/personal-accountant/internal/logger"
	"max.ks1230/personal-accountant/internal/model/customerr"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

// expenseInsertBatch keeps one insert well under the 65535 bind parameters
// postgres accepts per statement.
const expenseInsertBatch = 1000

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresConfig interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

// PostgresStorage keeps a ledger as one row in ledgers plus its ordered rows
// in expenses. It also records market quotes.
type PostgresStorage struct {
	db  *sql.DB
	now func() time.Time
}

func NewPostgresStorage(config postgresConfig) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db: db, now: time.Now}, nil
}

func (s *PostgresStorage) Create(ctx context.Context, username, id string) (*ledger.Ledger, error) {
	l := ledger.New(id, username)
	if err := s.Save(ctx, l); err != nil {
		return nil, errors.Wrap(err, "create ledger")
	}
	return l, nil
}

func (s *PostgresStorage) Load(ctx context.Context, id string) (*ledger.Ledger, error) {
	var username string
	var balance decimal.NullDecimal
	err := selectLedgerQuery(id).RunWith(s.db).QueryRowContext(ctx).Scan(&username, &balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(customerr.ErrNotFound, "load ledger %s", id)
	}
	if err != nil {
		return nil, &customerr.IOError{Op: "load ledger", ID: id, Err: err}
	}
	if !balance.Valid {
		return nil, &customerr.DecodeError{ID: id, Err: errors.New("balance is null")}
	}

	l := ledger.New(id, username)
	l.Balance = balance.Decimal

	l.Expenses, err = s.loadExpenses(ctx, id)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *PostgresStorage) loadExpenses(ctx context.Context, id string) ([]ledger.ExpenseEntry, error) {
	rows, err := selectExpensesQuery(id).RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, &customerr.IOError{Op: "load expenses", ID: id, Err: err}
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	exps := make([]ledger.ExpenseEntry, 0)
	for rows.Next() {
		var amount decimal.NullDecimal
		var explanation sql.NullString
		var created sql.NullTime
		if err = rows.Scan(&amount, &explanation, &created); err != nil {
			return nil, &customerr.DecodeError{ID: id, Err: errors.Wrap(err, "scan expense")}
		}
		if !amount.Valid {
			return nil, &customerr.DecodeError{ID: id, Err: errors.Errorf("expense %d has no amount", len(exps))}
		}
		e := ledger.ExpenseEntry{Amount: amount.Decimal, Explanation: explanation.String}
		if created.Valid {
			e.Created = created.Time.UTC()
		}
		exps = append(exps, e)
	}
	if err = rows.Err(); err != nil {
		return nil, &customerr.IOError{Op: "load expenses", ID: id, Err: err}
	}
	return exps, nil
}

// Save replaces the ledger row and all its expenses in one transaction.
func (s *PostgresStorage) Save(ctx context.Context, l *ledger.Ledger) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &customerr.IOError{Op: "save ledger", ID: l.ID, Err: err}
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	if _, err = upsertLedgerQuery(l, s.now()).RunWith(tx).ExecContext(ctx); err != nil {
		return &customerr.IOError{Op: "save ledger", ID: l.ID, Err: err}
	}
	if _, err = deleteExpensesQuery(l.ID).RunWith(tx).ExecContext(ctx); err != nil {
		return &customerr.IOError{Op: "save expenses", ID: l.ID, Err: err}
	}
	for _, query := range insertExpensesQueries(l) {
		if _, err = query.RunWith(tx).ExecContext(ctx); err != nil {
			return &customerr.IOError{Op: "save expenses", ID: l.ID, Err: err}
		}
	}
	if err = tx.Commit(); err != nil {
		return &customerr.IOError{Op: "save ledger", ID: l.ID, Err: err}
	}
	return nil
}

// SaveQuote appends a market quote to the quotes history.
func (s *PostgresStorage) SaveQuote(ctx context.Context, q price.Quote) error {
	_, err := insertQuoteQuery(q).RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save quote")
}

// LatestQuote returns the most recent stored quote with the given name.
func (s *PostgresStorage) LatestQuote(ctx context.Context, name string) (price.Quote, error) {
	query := psql.Select("name", "value", "available", "updated_at").
		From("quotes").
		Where(sq.Eq{"name": name}).
		OrderBy("updated_at DESC").
		Limit(1)

	var q price.Quote
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&q.Name, &q.Value, &q.Available, &q.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return price.Unavailable(name), nil
	}
	if err != nil {
		return price.Quote{}, errors.Wrap(err, "latest quote")
	}
	return q, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func selectLedgerQuery(id string) sq.SelectBuilder {
	return psql.Select("username", "balance").
		From("ledgers").
		Where(sq.Eq{"id": id})
}

func selectExpensesQuery(id string) sq.SelectBuilder {
	return psql.Select("amount", "explanation", "created_at").
		From("expenses").
		Where(sq.Eq{"ledger_id": id}).
		OrderBy("position")
}

func upsertLedgerQuery(l *ledger.Ledger, now time.Time) sq.InsertBuilder {
	return psql.Insert("ledgers").
		Columns("id", "username", "balance", "updated_at").
		Values(l.ID, l.Username, formatAmount(l.Balance), now).
		Suffix("ON CONFLICT(id) DO UPDATE SET username = EXCLUDED.username, balance = EXCLUDED.balance, updated_at = EXCLUDED.updated_at")
}

func deleteExpensesQuery(id string) sq.DeleteBuilder {
	return psql.Delete("expenses").Where(sq.Eq{"ledger_id": id})
}

func insertExpensesQueries(l *ledger.Ledger) []sq.InsertBuilder {
	queries := make([]sq.InsertBuilder, 0, (len(l.Expenses)+expenseInsertBatch-1)/expenseInsertBatch)
	for start := 0; start < len(l.Expenses); start += expenseInsertBatch {
		end := start + expenseInsertBatch
		if end > len(l.Expenses) {
			end = len(l.Expenses)
		}
		query := psql.Insert("expenses").
			Columns("ledger_id", "position", "amount", "explanation", "created_at")
		for i := start; i < end; i++ {
			e := l.Expenses[i]
			created := sql.NullTime{Time: e.Created, Valid: !e.Created.IsZero()}
			query = query.Values(l.ID, i, formatAmount(e.Amount), e.Explanation, created)
		}
		queries = append(queries, query)
	}
	return queries
}

func insertQuoteQuery(q price.Quote) sq.InsertBuilder {
	return psql.Insert("quotes").
		Columns("name", "value", "available", "updated_at").
		Values(q.Name, q.Value, q.Available, q.UpdatedAt)
}
