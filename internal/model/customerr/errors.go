// Package customerr holds the error taxonomy shared by the ledger core and
// its presentation layers.
package customerr

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound means no ledger is stored under the identifier.
	ErrNotFound = errors.New("ledger not found")
	// ErrInvalidAmount is returned for negative income or expense amounts and
	// for amounts too large or too precise to keep.
	ErrInvalidAmount = errors.New("invalid amount")
)

// DecodeError reports a stored ledger record that exists but cannot be decoded.
type DecodeError struct {
	ID  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ledger %s is corrupt: %v", e.ID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IOError wraps a failure of the storage medium itself.
type IOError struct {
	Op  string
	ID  string
	Err error
}

func (e *IOError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsDecode reports whether err carries a DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsIO reports whether err carries an IOError.
func IsIO(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}
