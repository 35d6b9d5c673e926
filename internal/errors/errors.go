package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned when registering with an email that is already in use.
	ErrEmailTaken = errors.New("User with this email already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrInvalidAdminCredentials is returned when the admin username or password is incorrect.
	ErrInvalidAdminCredentials = errors.New("Invalid Credentials")
	// ErrInvalidFileType is returned when an upload is not an allowed image type.
	ErrInvalidFileType = errors.New("Error: You can only upload image files (jpeg, jpg, png, gif).")
	// ErrFileTooLarge is returned when an upload exceeds the size ceiling.
	ErrFileTooLarge = errors.New("Error: File too large")
	// ErrNoFile is returned when an upload request carries no file.
	ErrNoFile = errors.New("Error: No file selected!")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, ErrEmailTaken.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidAdminCredentials):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidAdminCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidFileType):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidFileType.Error(), "INVALID_FILE_TYPE")
	case errors.Is(err, ErrFileTooLarge):
		return NewHTTPError(http.StatusBadRequest, ErrFileTooLarge.Error(), "FILE_TOO_LARGE")
	case errors.Is(err, ErrNoFile):
		return NewHTTPError(http.StatusBadRequest, ErrNoFile.Error(), "NO_FILE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Server error. Please try again later.", "INTERNAL_ERROR")
	}
}
