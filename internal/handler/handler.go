package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"venuebook/internal/auth"
	apperrors "venuebook/internal/errors"
)

// MessageResponse is a response that only carries a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse pairs a message with the affected record.
type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// badRequest returns a 400 with the given message.
func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: message, Code: code})
}

// fail maps a service error to its HTTP response, keeping the cause for logging.
func fail(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// failNotFound is fail with a resource-specific 404 message.
func failNotFound(err error, message string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{Message: message, Code: "NOT_FOUND"})
	}
	return fail(err)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, badRequest("Invalid id", "INVALID_ID")
	}
	return id, nil
}

// actor names the admin performing the request for the audit log.
func actor(c echo.Context) string {
	if claims, ok := auth.AdminFromContext(c); ok {
		return claims.Admin.ID
	}
	return "unknown"
}
