package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/logger"
	"max.ks1230/personal-accountant/internal/model/customerr"
)

const recordExt = ".json"

// FileStorage keeps one JSON document per ledger in a directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &customerr.IOError{Op: "create ledger directory", ID: dir, Err: err}
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) Create(ctx context.Context, username, id string) (*ledger.Ledger, error) {
	l := ledger.New(id, username)
	if err := s.Save(ctx, l); err != nil {
		return nil, errors.Wrap(err, "create ledger")
	}
	return l, nil
}

func (s *FileStorage) Load(_ context.Context, id string) (*ledger.Ledger, error) {
	if !validName(id) {
		return nil, errors.Wrapf(customerr.ErrNotFound, "load ledger %q", id)
	}

	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(customerr.ErrNotFound, "load ledger %s", id)
	}
	if err != nil {
		return nil, &customerr.IOError{Op: "load ledger", ID: id, Err: err}
	}
	return decodeLedger(id, data)
}

// Save replaces the ledger file atomically: the document is written to a
// temporary file in the same directory and renamed over the old one.
func (s *FileStorage) Save(_ context.Context, l *ledger.Ledger) error {
	if !validName(l.ID) {
		return errors.Errorf("save ledger: invalid identifier %q", l.ID)
	}

	data, err := encodeLedger(l)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+l.ID+recordExt+".*.tmp")
	if err != nil {
		return &customerr.IOError{Op: "save ledger", ID: l.ID, Err: err}
	}
	tmpName := tmp.Name()

	err = writeAndClose(tmp, data)
	if err == nil {
		err = os.Rename(tmpName, s.path(l.ID))
	}
	if err != nil {
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			logger.Warn("cannot remove temporary ledger file", zap.String("file", tmpName), zap.Error(rmErr))
		}
		return &customerr.IOError{Op: "save ledger", ID: l.ID, Err: err}
	}
	return nil
}

func (s *FileStorage) Close() error {
	return nil
}

func (s *FileStorage) path(id string) string {
	return filepath.Join(s.dir, id+recordExt)
}

func writeAndClose(f *os.File, data []byte) error {
	_, err := f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// validName rejects identifiers that would escape the directory or collide
// with temporary files.
func validName(id string) bool {
	return id != "" &&
		!strings.HasPrefix(id, ".") &&
		!strings.ContainsAny(id, `/\`) &&
		!strings.ContainsRune(id, 0)
}
