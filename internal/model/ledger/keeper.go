package ledger

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/logger"
	"max.ks1230/personal-accountant/internal/model/customerr"
	"max.ks1230/personal-accountant/internal/model/identifier"
)

const (
	opRegister   = "register"
	opLogin      = "login"
	opAddIncome  = "add_income"
	opAddExpense = "add_expense"
	opReset      = "reset"
	opProject    = "project"
)

type ledgerStorage interface {
	Create(ctx context.Context, username, id string) (*ledger.Ledger, error)
	Load(ctx context.Context, id string) (*ledger.Ledger, error)
	Save(ctx context.Context, l *ledger.Ledger) error
}

// ChangeNotifier is told about every saved change of a ledger.
type ChangeNotifier interface {
	LedgerChanged(ctx context.Context, id string) error
}

// Keeper runs every mutation as load, apply, save while holding the lock of
// the ledger identifier, so concurrent sessions on one ledger cannot lose
// each other's updates. Different ledgers never wait for each other.
type Keeper struct {
	storage   ledgerStorage
	service   *Service
	locks     *lockMap
	generate  func() string
	notifiers []ChangeNotifier
}

// NewKeeper builds a keeper. Notifiers are told about every saved change.
func NewKeeper(storage ledgerStorage, notifiers ...ChangeNotifier) *Keeper {
	return &Keeper{
		storage:   storage,
		service:   NewService(),
		locks:     newLockMap(),
		generate:  identifier.Generate,
		notifiers: notifiers,
	}
}

// Register creates an empty ledger under a freshly generated identifier.
func (k *Keeper) Register(ctx context.Context, username string) (*ledger.Ledger, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, opRegister)
	defer span.Finish()

	id := k.generate()
	unlock := k.locks.lock(id)
	l, err := k.storage.Create(ctx, username, id)
	unlock()

	observeOperation(opRegister, err)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, opRegister)
	}
	logger.Info("ledger registered", zap.String("ledger", id))
	return l, nil
}

// Login loads the ledger named by id. Unknown and malformed identifiers both
// yield customerr.ErrNotFound.
func (k *Keeper) Login(ctx context.Context, id string) (*ledger.Ledger, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, opLogin)
	defer span.Finish()
	span.SetTag("ledger", id)

	l, err := k.load(ctx, id)
	observeOperation(opLogin, err)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, opLogin)
	}
	return l, nil
}

func (k *Keeper) AddIncome(ctx context.Context, id string, amount decimal.Decimal) (*ledger.Ledger, error) {
	return k.update(ctx, opAddIncome, id, func(l *ledger.Ledger) error {
		return k.service.AddIncome(l, amount)
	})
}

func (k *Keeper) AddExpense(ctx context.Context, id string, amount decimal.Decimal, explanation string) (*ledger.Ledger, error) {
	return k.update(ctx, opAddExpense, id, func(l *ledger.Ledger) error {
		return k.service.AddExpense(l, amount, explanation)
	})
}

// Reset empties the ledger but keeps its owner and identifier.
func (k *Keeper) Reset(ctx context.Context, id string) (*ledger.Ledger, error) {
	return k.update(ctx, opReset, id, func(l *ledger.Ledger) error {
		k.service.Reset(l)
		return nil
	})
}

// Project loads the ledger and applies Project to it.
func (k *Keeper) Project(ctx context.Context, id string, factor decimal.Decimal) (Projection, error) {
	l, err := k.load(ctx, id)
	observeOperation(opProject, err)
	if err != nil {
		return Projection{}, errors.Wrap(err, opProject)
	}
	return Project(l, factor), nil
}

func (k *Keeper) update(ctx context.Context, op, id string, mutate func(*ledger.Ledger) error) (*ledger.Ledger, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()
	span.SetTag("ledger", id)

	l, err := k.apply(ctx, id, mutate)
	observeOperation(op, err)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, op)
	}

	k.notify(ctx, id)
	return l, nil
}

func (k *Keeper) apply(ctx context.Context, id string, mutate func(*ledger.Ledger) error) (*ledger.Ledger, error) {
	if !identifier.Valid(id) {
		return nil, errors.Wrapf(customerr.ErrNotFound, "ledger %q", id)
	}

	unlock := k.locks.lock(id)
	defer unlock()

	l, err := k.storage.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = mutate(l); err != nil {
		return nil, err
	}
	if err = k.storage.Save(ctx, l); err != nil {
		logger.Error("cannot save ledger", zap.String("ledger", id), zap.Error(err))
		return nil, err
	}
	return l, nil
}

func (k *Keeper) load(ctx context.Context, id string) (*ledger.Ledger, error) {
	if !identifier.Valid(id) {
		return nil, errors.Wrapf(customerr.ErrNotFound, "ledger %q", id)
	}
	return k.storage.Load(ctx, id)
}

func (k *Keeper) notify(ctx context.Context, id string) {
	for _, n := range k.notifiers {
		if err := n.LedgerChanged(ctx, id); err != nil {
			logger.Warn("ledger change notification failed", zap.String("ledger", id), zap.Error(err))
		}
	}
}
