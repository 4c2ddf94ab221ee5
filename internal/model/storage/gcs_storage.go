package storage

import (
	"context"
	"io"

	gcs "cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/model/customerr"
)

// GCSStorage keeps one JSON object per ledger in a Cloud Storage bucket.
// Objects become visible only when the writer is closed, so a failed upload
// never replaces the previous version.
type GCSStorage struct {
	client *gcs.Client
	bucket string
	prefix string
}

const userAgent = "personal-accountant"

// NewGCSStorage uses Application Default Credentials unless opts say
// otherwise.
func NewGCSStorage(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*GCSStorage, error) {
	if bucket == "" {
		return nil, errors.New("gcs storage: bucket is required")
	}
	opts = append([]option.ClientOption{option.WithUserAgent(userAgent)}, opts...)
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create storage client")
	}
	return &GCSStorage{client: client, bucket: bucket, prefix: prefix}, nil
}

func (s *GCSStorage) Create(ctx context.Context, username, id string) (*ledger.Ledger, error) {
	l := ledger.New(id, username)
	if err := s.Save(ctx, l); err != nil {
		return nil, errors.Wrap(err, "create ledger")
	}
	return l, nil
}

func (s *GCSStorage) Load(ctx context.Context, id string) (*ledger.Ledger, error) {
	if !validName(id) {
		return nil, errors.Wrapf(customerr.ErrNotFound, "load ledger %q", id)
	}

	r, err := s.object(id).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, errors.Wrapf(customerr.ErrNotFound, "load ledger %s", id)
	}
	if err != nil {
		return nil, &customerr.IOError{Op: "open ledger object", ID: id, Err: err}
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &customerr.IOError{Op: "read ledger object", ID: id, Err: err}
	}
	return decodeLedger(id, data)
}

func (s *GCSStorage) Save(ctx context.Context, l *ledger.Ledger) error {
	if !validName(l.ID) {
		return errors.Errorf("save ledger: invalid identifier %q", l.ID)
	}

	data, err := encodeLedger(l)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.object(l.ID).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err = w.Write(data); err != nil {
		// cancelling the context aborts the upload, the old object stays
		cancel()
		_ = w.Close()
		return &customerr.IOError{Op: "write ledger object", ID: l.ID, Err: err}
	}
	if err = w.Close(); err != nil {
		return &customerr.IOError{Op: "finalize ledger object", ID: l.ID, Err: err}
	}
	return nil
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}

func (s *GCSStorage) object(id string) *gcs.ObjectHandle {
	return s.client.Bucket(s.bucket).Object(objectName(s.prefix, id))
}

func objectName(prefix, id string) string {
	return prefix + id + recordExt
}
