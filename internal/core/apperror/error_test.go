package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorString(t *testing.T) {
	err := NewUnknownKey("offers", "colour")
	assert.Equal(t, `UNKNOWN_FILTER_KEY: unknown filter key "colour" in category "offers"`, err.Error())

	cause := errors.New("connection refused")
	up := NewUpstream("transactions", cause)
	assert.Contains(t, up.Error(), "caused by: connection refused")
	assert.ErrorIs(t, up, cause)
}

func TestAsAppError_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("set filter: %w", NewTypeMismatch("offers", "status", "string_set", "string"))

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeTypeMismatch, appErr.Code)
	assert.Equal(t, "string_set", appErr.Details["want"])
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(wrapped))
	assert.True(t, HasCode(wrapped, CodeTypeMismatch))
}

func TestGetHTTPStatus_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("boom")))
	assert.False(t, IsAppError(errors.New("boom")))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestWithDetail(t *testing.T) {
	err := NewValidation("bad column").WithDetail("label", "Name")
	assert.Equal(t, map[string]any{"label": "Name"}, err.Details)
	assert.True(t, IsNotFound(NewNotFound("view", "payouts")))
}
