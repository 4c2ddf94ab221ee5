package storage

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/logger"
)

const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendGCS      = "gcs"
)

// Ledgers is implemented by every backend.
type Ledgers interface {
	Create(ctx context.Context, username, id string) (*ledger.Ledger, error)
	Load(ctx context.Context, id string) (*ledger.Ledger, error)
	Save(ctx context.Context, l *ledger.Ledger) error
	Close() error
}

type config interface {
	Backend() string
	Dir() string
	Bucket() string
	Prefix() string
}

// Open builds the backend selected by config. The postgres settings are only
// read for the postgres backend.
func Open(ctx context.Context, cfg config, pg postgresConfig) (Ledgers, error) {
	logger.Info("opening ledger storage", zap.String("backend", cfg.Backend()))

	var (
		store Ledgers
		err   error
	)
	switch cfg.Backend() {
	case BackendFile, "":
		store, err = asLedgers(NewFileStorage(cfg.Dir()))
	case BackendMemory:
		store = NewInMemStorage()
	case BackendPostgres:
		store, err = asLedgers(NewPostgresStorage(pg))
	case BackendGCS:
		store, err = asLedgers(NewGCSStorage(ctx, cfg.Bucket(), cfg.Prefix()))
	default:
		err = errors.Errorf("unknown storage backend %q", cfg.Backend())
	}
	return store, errors.Wrap(err, "open storage")
}

// asLedgers keeps a failed constructor from producing a non-nil interface
// around a nil pointer.
func asLedgers[T Ledgers](s T, err error) (Ledgers, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

var (
	_ Ledgers = (*FileStorage)(nil)
	_ Ledgers = (*InMemStorage)(nil)
	_ Ledgers = (*PostgresStorage)(nil)
	_ Ledgers = (*GCSStorage)(nil)
)
