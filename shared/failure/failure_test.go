package failure_test

import (
	"cyclebook/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("place is required")), code: http.StatusBadRequest, message: "place is required"},
		{name: "bad request from string", err: failure.BadRequestFromString("Invalid booking or code"), code: http.StatusBadRequest, message: "Invalid booking or code"},
		{name: "unauthorized", err: failure.Unauthorized("Invalid credentials"), code: http.StatusUnauthorized, message: "Invalid credentials"},
		{name: "forbidden", err: failure.Forbidden("Access denied"), code: http.StatusForbidden, message: "Access denied"},
		{name: "not found", err: failure.NotFound("User not found"), code: http.StatusNotFound, message: "User not found"},
		{name: "conflict is reported as bad request", err: failure.Conflict("Cycle is already booked"), code: http.StatusBadRequest, message: "Cycle is already booked"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError, message: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
			assert.True(t, failure.IsFailure(tt.err))
		})
	}
}

func TestNilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to start ride: %w", failure.NotFound("Booking not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.True(t, failure.IsFailure(wrapped))

	plain := errors.New("connection reset")
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(plain))
	assert.False(t, failure.IsFailure(plain))
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, failure.MissingTokenError.Code)
	assert.Equal(t, http.StatusForbidden, failure.InvalidTokenError.Code)
	assert.Equal(t, http.StatusForbidden, failure.ForbiddenError.Code)
}
