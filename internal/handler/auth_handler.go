package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"venuebook/internal/auth"
	apperrors "venuebook/internal/errors"
	"venuebook/internal/service"
)

// AuthHandler handles user registration, login and profile endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued token.
type TokenResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("Please enter all fields", "VALIDATION_ERROR")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Please enter all fields", "VALIDATION_ERROR")
	}

	token, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, TokenResponse{Message: "User registered successfully", Token: token})
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("Please provide email and password", "VALIDATION_ERROR")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Please provide email and password", "VALIDATION_ERROR")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Message: "Login successful", Token: token})
}

// Profile godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security UserToken
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	claims, ok := auth.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Message: "Token is not valid", Code: "TOKEN_INVALID"})
	}
	userID, err := uuid.Parse(claims.User.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Message: "Token is not valid", Code: "TOKEN_INVALID"})
	}

	user, err := h.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return failNotFound(err, "User not found")
	}
	return c.JSON(http.StatusOK, user)
}
