package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "venuebook/internal/errors"
)

const (
	// UserTokenHeader carries the user token.
	UserTokenHeader = "x-auth-token"
	// AdminTokenHeader carries the admin token.
	AdminTokenHeader = "x-admin-token"

	userContextKey  = "user"
	adminContextKey = "admin"
)

// UserMiddleware rejects requests without a valid user token in x-auth-token
// and stores the decoded *UserClaims in the context.
func UserMiddleware(tokens *TokenService) echo.MiddlewareFunc {
	return headerTokenMiddleware(
		UserTokenHeader,
		userContextKey,
		func(raw string) (interface{}, error) { return tokens.ParseUserToken(raw) },
		"No token, authorization denied",
		"Token is not valid",
	)
}

// AdminMiddleware rejects requests without a valid admin token in x-admin-token
// and stores the decoded *AdminClaims in the context.
func AdminMiddleware(tokens *TokenService) echo.MiddlewareFunc {
	return headerTokenMiddleware(
		AdminTokenHeader,
		adminContextKey,
		func(raw string) (interface{}, error) { return tokens.ParseAdminToken(raw) },
		"No admin token, authorization denied",
		"Admin token is not valid",
	)
}

func headerTokenMiddleware(header, contextKey string, parse func(string) (interface{}, error), missingMsg, invalidMsg string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + header,
		ContextKey:  contextKey,
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			return parse(raw)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(header) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Message: missingMsg,
					Code:    "TOKEN_MISSING",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Message: invalidMsg,
				Code:    "TOKEN_INVALID",
			})
		},
	})
}

// UserFromContext returns the user claims set by UserMiddleware.
func UserFromContext(c echo.Context) (*UserClaims, bool) {
	claims, ok := c.Get(userContextKey).(*UserClaims)
	return claims, ok && claims != nil
}

// AdminFromContext returns the admin claims set by AdminMiddleware.
func AdminFromContext(c echo.Context) (*AdminClaims, bool) {
	claims, ok := c.Get(adminContextKey).(*AdminClaims)
	return claims, ok && claims != nil
}
