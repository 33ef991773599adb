package errors

import (
	"io"
	"net/http"
	"testing"

	"kinconnect/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNewVendorError_Classification(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		unauthorized bool
	}{
		{name: "forbidden status", status: http.StatusForbidden, unauthorized: true},
		{name: "unauthorized status", status: http.StatusUnauthorized, unauthorized: true},
		{name: "permission denied body", status: http.StatusBadRequest, body: `{"status":"PERMISSION_DENIED"}`, unauthorized: true},
		{name: "entity not found body", status: http.StatusNotFound, body: "Requested entity was not found.", unauthorized: true},
		{name: "server error", status: http.StatusInternalServerError, body: "boom"},
		{name: "no response", status: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewVendorError("gemini", tt.status, []byte(tt.body), nil)

			assert.Equal(t, tt.unauthorized, err.Unauthorized())
			if tt.unauthorized {
				assert.ErrorIs(t, err, ErrVendorUnauthorized)
				assert.Equal(t, http.StatusUnauthorized, err.HTTPCode())
			} else {
				assert.ErrorIs(t, err, ErrVendorUnavailable)
				assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
			}
		})
	}
}

func TestVendorError_UnwrapsCause(t *testing.T) {
	err := errors.Wrap(NewVendorError("replicate", 0, nil, io.ErrUnexpectedEOF), "remove background")

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, ErrVendorUnavailable)

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VENDOR_UNAVAILABLE", appErr.ErrorCode())
}

func TestBaseError_IsMatchesCopiesWithDetails(t *testing.T) {
	err := ErrValidationFailed.WithDetails("zip is required")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrMemberNotFound)
	assert.Equal(t, "Input validation failed: zip is required", err.Error())
}
