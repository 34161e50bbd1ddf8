package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetails_MatchesSentinel(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("date must use the 2006-01-02 layout")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", detailed.ErrorCode())
	assert.Equal(t, "date must use the 2006-01-02 layout", detailed.Details())

	// The sentinel itself stays detail-free.
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessage_MatchesSentinel(t *testing.T) {
	wrapped := ErrUnauthorized.WrapMessage("session expired or revoked")

	assert.ErrorIs(t, wrapped, ErrUnauthorized)

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestBaseError_Is_DistinguishesCodes(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("bad input")

	assert.NotErrorIs(t, detailed, ErrNotFound)
	assert.NotErrorIs(t, detailed, ErrUnauthorized)
	assert.False(t, detailed.Is(errors.New("plain error")))
}
