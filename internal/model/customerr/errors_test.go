package customerr

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_WrappedNotFound_ShouldStillMatch(t *testing.T) {
	err := errors.Wrap(ErrNotFound, "load ledger")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, IsDecode(err))
}

func Test_DecodeError_ShouldBeDistinctFromNotFound(t *testing.T) {
	err := errors.Wrap(&DecodeError{ID: "x", Err: errors.New("unexpected EOF")}, "load ledger")

	assert.True(t, IsDecode(err))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "ledger x is corrupt")
}

func Test_IOError_ShouldUnwrapToCause(t *testing.T) {
	err := &IOError{Op: "save ledger", ID: "x", Err: os.ErrPermission}

	assert.True(t, IsIO(err))
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.Equal(t, "save ledger x: permission denied", err.Error())
}
