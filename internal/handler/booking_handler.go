package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"venuebook/internal/auth"
	apperrors "venuebook/internal/errors"
	"venuebook/internal/model"
	"venuebook/internal/service"
)

const bookingRequiredMessage = "Please fill out all required fields."

// BookingHandler handles booking submissions.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookingRequest represents a booking form submission.
// GuestCount accepts both a JSON number and a numeric string.
type BookingRequest struct {
	Name               string      `json:"name" validate:"required"`
	Email              string      `json:"email" validate:"required"`
	Phone              string      `json:"phone" validate:"required"`
	EventDate          string      `json:"eventDate" validate:"required"`
	EventTime          string      `json:"eventTime" validate:"required"`
	EventType          string      `json:"eventType" validate:"required"`
	GuestCount         json.Number `json:"guestCount" validate:"required" swaggertype:"integer"`
	PackageType        string      `json:"packageType" validate:"required"`
	AdditionalServices []string    `json:"additionalServices"`
	Message            string      `json:"message"`
}

// BookingResponse confirms a booking request.
type BookingResponse struct {
	Message        string          `json:"message"`
	Booking        *model.Booking  `json:"booking"`
	EstimatedTotal decimal.Decimal `json:"estimatedTotal" swaggertype:"string"`
}

// Create godoc
// @Summary Submit a booking request
// @Tags booking
// @Accept json
// @Produce json
// @Security UserToken
// @Param request body BookingRequest true "Booking"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /booking [post]
func (h *BookingHandler) Create(c echo.Context) error {
	claims, ok := auth.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Message: "Token is not valid", Code: "TOKEN_INVALID"})
	}
	userID, err := uuid.Parse(claims.User.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Message: "Token is not valid", Code: "TOKEN_INVALID"})
	}

	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(bookingRequiredMessage, "VALIDATION_ERROR")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(bookingRequiredMessage, "VALIDATION_ERROR")
	}
	guests, err := req.GuestCount.Int64()
	if err != nil || guests <= 0 {
		return badRequest(bookingRequiredMessage, "VALIDATION_ERROR")
	}
	eventDate, err := service.ParseEventDate(req.EventDate)
	if err != nil {
		return badRequest(bookingRequiredMessage, "VALIDATION_ERROR")
	}

	booking, total, err := h.bookingService.Create(c.Request().Context(), userID, service.BookingInput{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		EventDate:          eventDate,
		EventTime:          req.EventTime,
		EventType:          req.EventType,
		GuestCount:         int(guests),
		PackageType:        req.PackageType,
		AdditionalServices: req.AdditionalServices,
		Message:            req.Message,
	})
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, BookingResponse{
		Message:        "Booking request submitted successfully! We will contact you within 24 hours to confirm the details.",
		Booking:        booking,
		EstimatedTotal: total,
	})
}
