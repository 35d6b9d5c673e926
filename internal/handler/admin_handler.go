package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "venuebook/internal/errors"
	"venuebook/internal/seed"
	"venuebook/internal/service"
	"venuebook/internal/storage"
)

const (
	imageRequiredMessage = "Image URL, Alt Text, and Category are required."
	defaultAuditLimit    = 100
	maxAuditLimit        = 1000
)

// AdminHandler serves the admin panel API.
type AdminHandler struct {
	admins     service.AdminService
	contacts   service.ContactService
	bookings   service.BookingService
	gallery    service.GalleryService
	pricing    *service.Pricing
	seedSource string
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	admins service.AdminService,
	contacts service.ContactService,
	bookings service.BookingService,
	gallery service.GalleryService,
	pricing *service.Pricing,
	seedSource string,
) *AdminHandler {
	return &AdminHandler{
		admins:     admins,
		contacts:   contacts,
		bookings:   bookings,
		gallery:    gallery,
		pricing:    pricing,
		seedSource: seedSource,
	}
}

// AdminLoginRequest represents an admin login request.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UploadResponse reports where an uploaded file is served from.
type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(apperrors.ErrInvalidAdminCredentials)
	}
	token, err := h.admins.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// formUpload opens the gallery file of a multipart request.
func formUpload(c echo.Context) (service.Upload, func(), error) {
	fh, err := c.FormFile(storage.FieldName)
	if err != nil {
		return service.Upload{}, nil, fail(apperrors.ErrNoFile)
	}
	f, err := fh.Open()
	if err != nil {
		return service.Upload{}, nil, fail(fmt.Errorf("open upload: %w", err))
	}
	return service.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Body:        f,
	}, func() { f.Close() }, nil
}

// Upload godoc
// @Summary Upload a gallery image file
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security AdminToken
// @Param galleryImage formData file true "jpeg, jpg, png or gif, at most 5 MB"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Router /admin/upload [post]
func (h *AdminHandler) Upload(c echo.Context) error {
	upload, closeFn, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closeFn()

	stored, err := h.gallery.Upload(c.Request().Context(), actor(c), upload)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, UploadResponse{Message: "File uploaded successfully", FilePath: stored.Path})
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security AdminToken
// @Success 200 {array} model.User
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admins.ListUsers(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
// @Summary Update a user
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path string true "User ID"
// @Param request body service.UserUpdate true "Fields to change"
// @Success 200 {object} DataResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req service.UserUpdate
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "VALIDATION_ERROR")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(fieldMessage(err), "VALIDATION_ERROR")
	}

	user, err := h.admins.UpdateUser(c.Request().Context(), actor(c), id, req)
	if err != nil {
		return failNotFound(err, "User not found")
	}
	return c.JSON(http.StatusOK, DataResponse{Message: "User updated successfully", Data: user})
}

// DeleteUser godoc
// @Summary Delete a user; their bookings are kept
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.admins.DeleteUser(c.Request().Context(), actor(c), id); err != nil {
		return failNotFound(err, "User not found")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}

// ListContacts godoc
// @Summary List contact inquiries
// @Tags admin
// @Produce json
// @Security AdminToken
// @Success 200 {array} model.Contact
// @Router /admin/contacts [get]
func (h *AdminHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contacts.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, contacts)
}

// UpdateContact godoc
// @Summary Update a contact inquiry
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path string true "Contact ID"
// @Param request body service.ContactUpdate true "Fields to change"
// @Success 200 {object} DataResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/contacts/{id} [put]
func (h *AdminHandler) UpdateContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req service.ContactUpdate
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "VALIDATION_ERROR")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(fieldMessage(err), "VALIDATION_ERROR")
	}

	contact, err := h.contacts.Update(c.Request().Context(), actor(c), id, req)
	if err != nil {
		return failNotFound(err, "Contact inquiry not found")
	}
	return c.JSON(http.StatusOK, DataResponse{Message: "Contact updated successfully", Data: contact})
}

// DeleteContact godoc
// @Summary Delete a contact inquiry
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param id path string true "Contact ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/contacts/{id} [delete]
func (h *AdminHandler) DeleteContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.contacts.Delete(c.Request().Context(), actor(c), id); err != nil {
		return failNotFound(err, "Contact inquiry not found")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Contact inquiry deleted successfully"})
}

// ListBookings godoc
// @Summary List bookings with their owners
// @Tags admin
// @Produce json
// @Security AdminToken
// @Success 200 {array} model.BookingWithOwner
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookings.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateBooking godoc
// @Summary Update a booking
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path string true "Booking ID"
// @Param request body service.BookingUpdate true "Fields to change"
// @Success 200 {object} DataResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/bookings/{id} [put]
func (h *AdminHandler) UpdateBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req service.BookingUpdate
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "VALIDATION_ERROR")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(fieldMessage(err), "VALIDATION_ERROR")
	}

	booking, err := h.bookings.Update(c.Request().Context(), actor(c), id, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEventDate) {
			return badRequest("eventDate is invalid", "VALIDATION_ERROR")
		}
		return failNotFound(err, "Booking not found")
	}
	return c.JSON(http.StatusOK, DataResponse{Message: "Booking updated successfully", Data: booking})
}

// DeleteBooking godoc
// @Summary Delete a booking
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param id path string true "Booking ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/bookings/{id} [delete]
func (h *AdminHandler) DeleteBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.bookings.Delete(c.Request().Context(), actor(c), id); err != nil {
		return failNotFound(err, "Booking not found")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Booking deleted successfully"})
}

// ExportBookings godoc
// @Summary Download all bookings as an Excel workbook
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security AdminToken
// @Success 200 {file} file
// @Router /admin/bookings/export [get]
func (h *AdminHandler) ExportBookings(c echo.Context) error {
	rows, err := h.bookings.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	var buf bytes.Buffer
	if err := service.WriteBookingsWorkbook(&buf, rows, h.pricing); err != nil {
		return fail(err)
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ListGallery godoc
// @Summary List gallery images
// @Tags admin
// @Produce json
// @Security AdminToken
// @Success 200 {array} model.GalleryImage
// @Router /admin/gallery [get]
func (h *AdminHandler) ListGallery(c echo.Context) error {
	images, err := h.gallery.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, images)
}

// AddImage godoc
// @Summary Register gallery image metadata
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param request body service.ImageInput true "Image metadata"
// @Success 201 {object} DataResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/gallery [post]
func (h *AdminHandler) AddImage(c echo.Context) error {
	var req service.ImageInput
	if err := c.Bind(&req); err != nil {
		return badRequest(imageRequiredMessage, "VALIDATION_ERROR")
	}
	if blank(req.Src) || blank(req.Alt) || blank(req.Category) {
		return badRequest(imageRequiredMessage, "VALIDATION_ERROR")
	}

	image, err := h.gallery.Add(c.Request().Context(), actor(c), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, DataResponse{Message: "Image details saved successfully", Data: image})
}

// UploadImage godoc
// @Summary Upload a gallery image and register it in one request
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security AdminToken
// @Param galleryImage formData file true "jpeg, jpg, png or gif, at most 5 MB"
// @Param alt formData string true "Alt text"
// @Param category formData string true "Category"
// @Success 201 {object} DataResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/gallery/upload [post]
func (h *AdminHandler) UploadImage(c echo.Context) error {
	alt, category := c.FormValue("alt"), c.FormValue("category")
	if blank(alt) || blank(category) {
		return badRequest(imageRequiredMessage, "VALIDATION_ERROR")
	}
	upload, closeFn, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closeFn()

	image, err := h.gallery.UploadAndAdd(c.Request().Context(), actor(c), upload, alt, category)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, DataResponse{Message: "Image details saved successfully", Data: image})
}

// UpdateImage godoc
// @Summary Update gallery image metadata
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path string true "Image ID"
// @Param request body service.ImageUpdate true "Fields to change"
// @Success 200 {object} DataResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/gallery/{id} [put]
func (h *AdminHandler) UpdateImage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req service.ImageUpdate
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "VALIDATION_ERROR")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(fieldMessage(err), "VALIDATION_ERROR")
	}

	image, err := h.gallery.Update(c.Request().Context(), actor(c), id, req)
	if err != nil {
		return failNotFound(err, "Image not found")
	}
	return c.JSON(http.StatusOK, DataResponse{Message: "Image updated successfully", Data: image})
}

// DeleteImage godoc
// @Summary Delete a gallery image and its uploaded file
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param id path string true "Image ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/gallery/{id} [delete]
func (h *AdminHandler) DeleteImage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.gallery.Delete(c.Request().Context(), actor(c), id); err != nil {
		return failNotFound(err, "Image not found")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Image deleted successfully"})
}

// SeedGallery godoc
// @Summary Import gallery entries from the configured seed source
// @Tags admin
// @Produce json
// @Security AdminToken
// @Success 200 {object} service.SeedResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/gallery/seed [post]
func (h *AdminHandler) SeedGallery(c echo.Context) error {
	entries, err := seed.LoadGallery(c.Request().Context(), h.seedSource)
	if err != nil {
		if errors.Is(err, seed.ErrNoSource) {
			return badRequest("GALLERY_SEED_SOURCE is not configured", "NO_SEED_SOURCE")
		}
		return echo.NewHTTPError(http.StatusBadGateway, apperrors.ErrorResponse{
			Message: "failed to load gallery seed",
			Code:    "SEED_FETCH_FAILED",
		}).SetInternal(err)
	}

	res, err := h.gallery.Seed(c.Request().Context(), entries)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, res)
}

// Audit godoc
// @Summary Recent admin actions
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param limit query int false "Number of entries (default 100, max 1000)"
// @Success 200 {array} auditlog.Entry
// @Router /admin/audit [get]
func (h *AdminHandler) Audit(c echo.Context) error {
	limit := int64(defaultAuditLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return badRequest("limit must be a positive integer", "VALIDATION_ERROR")
		}
		limit = n
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	entries, err := h.admins.Audit(c.Request().Context(), limit)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, entries)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
