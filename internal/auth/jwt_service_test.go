package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenService_UserRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, "")

	token, err := svc.IssueUserToken("user-1")
	require.NoError(t, err)

	claims, err := svc.ParseUserToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.User.ID)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_AdminRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, "")

	token, err := svc.IssueAdminToken("admin_user", RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ParseAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin_user", claims.Admin.ID)
	assert.Equal(t, RoleAdmin, claims.Admin.Role)
}

func TestTokenService_TokensAreNotInterchangeable(t *testing.T) {
	svc := NewTokenService(testSecret, "")

	userToken, err := svc.IssueUserToken("user-1")
	require.NoError(t, err)
	adminToken, err := svc.IssueAdminToken("admin_user", RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ParseAdminToken(userToken)
	assert.Error(t, err)
	_, err = svc.ParseUserToken(adminToken)
	assert.Error(t, err)
}

func TestTokenService_RejectsNonAdminRole(t *testing.T) {
	svc := NewTokenService(testSecret, "")

	token, err := svc.IssueAdminToken("someone", "editor")
	require.NoError(t, err)

	_, err = svc.ParseAdminToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsAdminShapeWithoutAudience(t *testing.T) {
	svc := NewTokenService(testSecret, "")

	// a payload that merely contains an "admin" key, signed with the shared secret
	claims := jwt.MapClaims{
		"admin": map[string]string{"id": "admin_user", "role": "admin"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ParseAdminToken(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService(testSecret, "")
	svc.now = func() time.Time { return time.Now().Add(-6 * time.Hour) }

	token, err := svc.IssueUserToken("user-1")
	require.NoError(t, err)

	_, err = svc.ParseUserToken(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("other-secret", "")
	verifier := NewTokenService(testSecret, "")

	token, err := issuer.IssueUserToken("user-1")
	require.NoError(t, err)

	_, err = verifier.ParseUserToken(token)
	assert.Error(t, err)
}

func TestTokenService_SeparateAdminSecret(t *testing.T) {
	svc := NewTokenService("user-secret", "admin-secret")
	shared := NewTokenService("user-secret", "")

	token, err := shared.IssueAdminToken("admin_user", RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ParseAdminToken(token)
	assert.Error(t, err)
}
