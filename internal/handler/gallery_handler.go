package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"venuebook/internal/service"
)

// GalleryHandler serves the public gallery and price list.
type GalleryHandler struct {
	galleryService service.GalleryService
	pricing        *service.Pricing
}

// NewGalleryHandler creates a new public gallery handler.
func NewGalleryHandler(galleryService service.GalleryService, pricing *service.Pricing) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService, pricing: pricing}
}

// List godoc
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Success 200 {array} model.GalleryImage
// @Failure 500 {object} errors.ErrorResponse
// @Router /gallery [get]
func (h *GalleryHandler) List(c echo.Context) error {
	images, err := h.galleryService.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, images)
}

// Pricing godoc
// @Summary Venue packages and add-on prices
// @Tags pricing
// @Produce json
// @Success 200 {object} service.Catalogue
// @Router /pricing [get]
func (h *GalleryHandler) Pricing(c echo.Context) error {
	return c.JSON(http.StatusOK, h.pricing.Catalogue())
}
