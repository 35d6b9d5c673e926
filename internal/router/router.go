package router

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"venuebook/internal/auth"
	"venuebook/internal/config"
	apperrors "venuebook/internal/errors"
	"venuebook/internal/handler"
	"venuebook/internal/metrics"
)

// loginRate allows a burst of 10 attempts per client, refilled at one every 6 seconds.
var loginRate = middleware.RateLimiterMemoryStoreConfig{
	Rate:      rate.Every(6 * time.Second),
	Burst:     10,
	ExpiresIn: 10 * time.Minute,
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	httpMetrics *metrics.HTTP,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
	bookingHandler *handler.BookingHandler,
	galleryHandler *handler.GalleryHandler,
	adminHandler *handler.AdminHandler,
) {
	e.HTTPErrorHandler = errorHandler(e)
	e.Validator = handler.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins(),
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
			auth.UserTokenHeader, auth.AdminTokenHeader,
		},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))
	if httpMetrics != nil {
		e.Use(httpMetrics.Middleware())
		e.GET("/metrics", echo.WrapHandler(httpMetrics.Handler()))
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static(cfg.UploadURLPrefix, cfg.UploadDir)

	loginLimiter := middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(loginRate))
	uploadLimit := middleware.BodyLimit(bodyLimit(cfg.UploadMaxBytes))
	userAuth := auth.UserMiddleware(tokens)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login, loginLimiter)
	api.POST("/contact", contactHandler.Submit)
	api.GET("/gallery", galleryHandler.List)
	api.GET("/pricing", galleryHandler.Pricing)
	api.POST("/admin/login", adminHandler.Login, loginLimiter)

	// User routes
	api.GET("/auth", authHandler.Profile, userAuth)
	api.POST("/booking", bookingHandler.Create, userAuth)

	// Admin routes
	admin := api.Group("/admin", auth.AdminMiddleware(tokens))
	admin.POST("/upload", adminHandler.Upload, uploadLimit)

	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	admin.GET("/contacts", adminHandler.ListContacts)
	admin.PUT("/contacts/:id", adminHandler.UpdateContact)
	admin.DELETE("/contacts/:id", adminHandler.DeleteContact)

	admin.GET("/bookings", adminHandler.ListBookings)
	admin.GET("/bookings/export", adminHandler.ExportBookings)
	admin.PUT("/bookings/:id", adminHandler.UpdateBooking)
	admin.DELETE("/bookings/:id", adminHandler.DeleteBooking)

	admin.GET("/gallery", adminHandler.ListGallery)
	admin.POST("/gallery", adminHandler.AddImage)
	admin.POST("/gallery/upload", adminHandler.UploadImage, uploadLimit)
	admin.POST("/gallery/seed", adminHandler.SeedGallery)
	admin.PUT("/gallery/:id", adminHandler.UpdateImage)
	admin.DELETE("/gallery/:id", adminHandler.DeleteImage)

	admin.GET("/audit", adminHandler.Audit)
}

// bodyLimit leaves room for multipart framing around a file of maxBytes.
func bodyLimit(maxBytes int64) string {
	return fmt.Sprintf("%dK", (maxBytes+(1<<20))/1024)
}

// errorHandler logs server errors and renders every error as {"message": ...}.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			he = echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
				Message: "Server error. Please try again later.",
				Code:    "INTERNAL_ERROR",
			}).SetInternal(err)
		}
		if he.Code >= http.StatusInternalServerError {
			log.Printf("[http] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		}
		e.DefaultHTTPErrorHandler(he, c)
	}
}
