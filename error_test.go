package handbook_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/handbook"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := handbook.Errorf(handbook.ENOTFOUND, "section %q not found", "ledger")

	assert.Equal(t, handbook.ENOTFOUND, handbook.ErrorCode(err))
	assert.Equal(t, "section \"ledger\" not found", handbook.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load config: %w", handbook.Errorf(handbook.EINVALID, "bad landing"))

	assert.Equal(t, handbook.EINVALID, handbook.ErrorCode(err))
	assert.Equal(t, "bad landing", handbook.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, handbook.EINTERNAL, handbook.ErrorCode(err))
	assert.Equal(t, "Internal error", handbook.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, handbook.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, handbook.ErrorMessage(nil))
}
