package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// TokenTTL is how long both user and admin tokens stay valid.
	TokenTTL = 5 * time.Hour
	// RoleAdmin is the only role the admin middleware accepts.
	RoleAdmin = "admin"

	audienceUser  = "user"
	audienceAdmin = "admin"
)

var (
	// ErrInvalidToken is returned for any token that fails signature, expiry, audience or shape checks.
	ErrInvalidToken = errors.New("invalid token")
)

// UserIdentity is the identity carried by a user token.
type UserIdentity struct {
	ID string `json:"id"`
}

// UserClaims is the payload of a user token: {"user":{"id":...}}.
type UserClaims struct {
	User UserIdentity `json:"user"`
	jwt.RegisteredClaims
}

// AdminIdentity is the identity carried by an admin token.
type AdminIdentity struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// AdminClaims is the payload of an admin token: {"admin":{"id":...,"role":...}}.
type AdminClaims struct {
	Admin AdminIdentity `json:"admin"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies user and admin tokens.
type TokenService struct {
	userSecret  []byte
	adminSecret []byte
	now         func() time.Time
}

// NewTokenService creates a token service. Passing the same secret twice is
// allowed; audience and claim shape still keep the two token kinds apart.
func NewTokenService(userSecret, adminSecret string) *TokenService {
	if adminSecret == "" {
		adminSecret = userSecret
	}
	return &TokenService{
		userSecret:  []byte(userSecret),
		adminSecret: []byte(adminSecret),
		now:         time.Now,
	}
}

func (s *TokenService) registered(subject, audience string) jwt.RegisteredClaims {
	now := s.now()
	return jwt.RegisteredClaims{
		Subject:   subject,
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
}

// IssueUserToken signs a user token for the given user id.
func (s *TokenService) IssueUserToken(userID string) (string, error) {
	claims := &UserClaims{
		User:             UserIdentity{ID: userID},
		RegisteredClaims: s.registered(userID, audienceUser),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.userSecret)
}

// IssueAdminToken signs an admin token.
func (s *TokenService) IssueAdminToken(adminID, role string) (string, error) {
	claims := &AdminClaims{
		Admin:            AdminIdentity{ID: adminID, Role: role},
		RegisteredClaims: s.registered(adminID, audienceAdmin),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.adminSecret)
}

// ParseUserToken validates a user token and returns its claims.
func (s *TokenService) ParseUserToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}
	if err := parse(tokenString, claims, s.userSecret); err != nil {
		return nil, err
	}
	if !claims.VerifyAudience(audienceUser, true) || claims.User.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseAdminToken validates an admin token, including the role claim.
func (s *TokenService) ParseAdminToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	if err := parse(tokenString, claims, s.adminSecret); err != nil {
		return nil, err
	}
	if !claims.VerifyAudience(audienceAdmin, true) || claims.Admin.ID == "" || claims.Admin.Role != RoleAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
