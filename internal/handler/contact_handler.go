package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"venuebook/internal/service"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Submit godoc
// @Summary Submit a contact inquiry
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Inquiry"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("Please fill out all required fields.", "VALIDATION_ERROR")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(fieldMessage(err), "VALIDATION_ERROR")
	}

	if _, err := h.contactService.Submit(c.Request().Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{
		Message: "Thank you for your message! We will get back to you within 24 hours.",
	})
}
