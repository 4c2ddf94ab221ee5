package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/personal-accountant/internal/model/customerr"
	"max.ks1230/personal-accountant/internal/model/identifier"
)

func newFileStorage(t *testing.T) *FileStorage {
	t.Helper()
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return s
}

func Test_FileStorage_CreateThenLoad_ShouldReturnEmptyLedger(t *testing.T) {
	ctx := context.Background()
	s := newFileStorage(t)
	id := identifier.Generate()

	created, err := s.Create(ctx, "alice", id)
	require.NoError(t, err)

	loaded, err := s.Load(ctx, id)
	require.NoError(t, err)
	assertSameLedger(t, created, loaded)
	assert.True(t, loaded.Balance.IsZero())
	assert.Empty(t, loaded.Expenses)
}

func Test_FileStorage_SaveThenLoad_ShouldRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newFileStorage(t)
	l := sampleLedger()

	require.NoError(t, s.Save(ctx, l))
	loaded, err := s.Load(ctx, l.ID)

	require.NoError(t, err)
	assertSameLedger(t, l, loaded)
}

func Test_FileStorage_Create_ShouldOverwriteExistingRecord(t *testing.T) {
	ctx := context.Background()
	s := newFileStorage(t)
	l := sampleLedger()
	require.NoError(t, s.Save(ctx, l))

	_, err := s.Create(ctx, "alice", l.ID)
	require.NoError(t, err)

	loaded, err := s.Load(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Balance.IsZero())
	assert.Empty(t, loaded.Expenses)
}

func Test_FileStorage_Load_ShouldReturnNotFound(t *testing.T) {
	s := newFileStorage(t)

	for _, id := range []string{identifier.Generate(), "../outside", ".hidden", ""} {
		_, err := s.Load(context.Background(), id)
		assert.True(t, errors.Is(err, customerr.ErrNotFound), "id %q: %v", id, err)
	}
}

func Test_FileStorage_Load_ShouldReportCorruptRecord(t *testing.T) {
	s := newFileStorage(t)
	id := identifier.Generate()
	require.NoError(t, os.WriteFile(s.path(id), []byte(`{"username": "alice", "inco`), 0o600))

	_, err := s.Load(context.Background(), id)

	assert.True(t, customerr.IsDecode(err))
	assert.False(t, errors.Is(err, customerr.ErrNotFound))
}

func Test_FileStorage_Save_ShouldLeaveNoTemporaryFiles(t *testing.T) {
	ctx := context.Background()
	s := newFileStorage(t)
	l := sampleLedger()

	for i := 0; i < 3; i++ {
		l.Balance = l.Balance.Add(decimal.NewFromInt(1))
		require.NoError(t, s.Save(ctx, l))
	}

	entries, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, l.ID+".json", entries[0].Name())
}

func Test_FileStorage_Save_ShouldRejectUnsafeIdentifier(t *testing.T) {
	s := newFileStorage(t)
	l := sampleLedger()
	l.ID = "../escape"

	err := s.Save(context.Background(), l)

	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(filepath.Dir(s.dir), "escape.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func Test_FileStorage_Save_ShouldReportIOError(t *testing.T) {
	s := newFileStorage(t)
	require.NoError(t, os.RemoveAll(s.dir))
	// a regular file where the directory should be
	require.NoError(t, os.WriteFile(s.dir, nil, 0o600))

	err := s.Save(context.Background(), sampleLedger())

	assert.True(t, customerr.IsIO(err), "got %v", err)
}

func Test_FileStorage_ConcurrentSaves_ShouldNotInterfere(t *testing.T) {
	ctx := context.Background()
	s := newFileStorage(t)
	a, err := s.Create(ctx, "a", identifier.Generate())
	require.NoError(t, err)
	b, err := s.Create(ctx, "b", identifier.Generate())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l := *b
			l.Balance = decimal.NewFromInt(int64(i))
			l.Username = fmt.Sprintf("b%d", i)
			assert.NoError(t, s.Save(ctx, &l))
		}(i)
	}
	wg.Wait()

	loadedA, err := s.Load(ctx, a.ID)
	require.NoError(t, err)
	assertSameLedger(t, a, loadedA)

	loadedB, err := s.Load(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "b"+loadedB.Balance.String(), loadedB.Username)
}
