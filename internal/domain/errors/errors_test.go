package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrInvalidRadius.WithDetails("radius must be between 0 and 50.0km")

	assert.True(t, stderrors.Is(detailed, ErrInvalidRadius))
	assert.False(t, stderrors.Is(detailed, ErrInvalidLocation))
	assert.Equal(t, "radius must be between 0 and 50.0km", detailed.Details())
	assert.Empty(t, ErrInvalidRadius.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrListingNotFound.WrapMessage("load listing")

	assert.True(t, stderrors.Is(wrapped, ErrListingNotFound))
	assert.Equal(t, "load listing: Listing not found", wrapped.Error())

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert listing")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
}
