package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("delete user: %w", ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"email taken", ErrEmailTaken, http.StatusBadRequest, "USER_ALREADY_EXISTS"},
		{"bad user credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"bad admin credentials", ErrInvalidAdminCredentials, http.StatusBadRequest, "INVALID_CREDENTIALS"},
		{"file type", ErrInvalidFileType, http.StatusBadRequest, "INVALID_FILE_TYPE"},
		{"file size", ErrFileTooLarge, http.StatusBadRequest, "FILE_TOO_LARGE"},
		{"no file", ErrNoFile, http.StatusBadRequest, "NO_FILE"},
		{"anything else", errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalDetail(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dial tcp 10.0.0.3:3306: connection refused"))
	assert.NotContains(t, httpErr.ToErrorResponse().Message, "10.0.0.3")
}
