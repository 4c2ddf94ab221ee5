package storage

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/model/customerr"
)

// InMemStorage keeps encoded ledgers in memory. Records go through the same
// codec as the durable backends, so callers never share state with the store.
type InMemStorage struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{records: make(map[string][]byte)}
}

func (s *InMemStorage) Create(ctx context.Context, username, id string) (*ledger.Ledger, error) {
	l := ledger.New(id, username)
	if err := s.Save(ctx, l); err != nil {
		return nil, errors.Wrap(err, "create ledger")
	}
	return l, nil
}

func (s *InMemStorage) Load(_ context.Context, id string) (*ledger.Ledger, error) {
	s.mu.RLock()
	data, ok := s.records[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(customerr.ErrNotFound, "load ledger %s", id)
	}
	return decodeLedger(id, data)
}

func (s *InMemStorage) Save(_ context.Context, l *ledger.Ledger) error {
	data, err := encodeLedger(l)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records[l.ID] = data
	s.mu.Unlock()
	return nil
}

func (s *InMemStorage) Close() error {
	return nil
}
