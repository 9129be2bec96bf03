package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/shared/failure"
)

var errSentinel = errors.New("slot already taken")

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
	assert.Nil(t, f.Unwrap())
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.InvalidPageParam.Code)
	assert.Equal(t, "invalid page parameter", failure.InvalidPageParam.Message)
	assert.Equal(t, http.StatusBadRequest, failure.InvalidLimitParam.Code)
	assert.Equal(t, "invalid limit parameter", failure.InvalidLimitParam.Message)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		msg     string
		message string
	}{
		{
			name:    "with message",
			code:    http.StatusConflict,
			msg:     "room A is booked from 09:00",
			message: "room A is booked from 09:00",
		},
		{
			name:    "without message",
			code:    http.StatusConflict,
			msg:     "",
			message: "slot already taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.Wrap(tt.code, errSentinel, tt.msg)

			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, tt.code, failure.GetCode(err))
			assert.ErrorIs(t, err, errSentinel)
		})
	}
}

func TestBadRequest(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))

	err := failure.BadRequest(errSentinel)

	var f *failure.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, http.StatusBadRequest, f.Code)
	assert.Equal(t, "slot already taken", f.Message)
	assert.ErrorIs(t, err, errSentinel)
}

func TestBadRequestFromString(t *testing.T) {
	err := failure.BadRequestFromString("custom bad request")

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, "custom bad request", err.Error())
}

func TestInternalError(t *testing.T) {
	assert.NoError(t, failure.InternalError(nil))

	err := failure.InternalError(errors.New("database connection failed"))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Equal(t, "database connection failed", err.Error())
}

func TestNotFound(t *testing.T) {
	assert.NoError(t, failure.NotFound(nil))

	err := failure.NotFound(errSentinel)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, "slot already taken", err.Error())
	assert.ErrorIs(t, err, errSentinel)
}

func TestConflict(t *testing.T) {
	assert.NoError(t, failure.Conflict(nil))

	err := failure.Conflict(fmt.Errorf("%w: Room_A", errSentinel))

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, "slot already taken: Room_A", err.Error())
	assert.ErrorIs(t, err, errSentinel)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("booking: %w", failure.Conflict(errSentinel)),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}
