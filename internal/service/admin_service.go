package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"venuebook/internal/auditlog"
	"venuebook/internal/auth"
	"venuebook/internal/cache"
	apperrors "venuebook/internal/errors"
	"venuebook/internal/model"
	"venuebook/internal/repository"
)

// AdminID is the identity placed in admin tokens.
const AdminID = "admin_user"

// anonymousActor records failed logins. The submitted username is never stored.
const anonymousActor = "anonymous"

// AdminCredentials is the single configured admin account.
type AdminCredentials struct {
	Username string
	Password string
}

// UserUpdate holds the fields an admin may change on a user.
type UserUpdate struct {
	FullName    *string `json:"fullName" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,min=1"`
	Password    *string `json:"password" validate:"omitempty,min=1"`
}

// AdminService covers admin login, user management and the audit trail.
type AdminService interface {
	Login(ctx context.Context, username, password string) (string, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, actor string, id uuid.UUID, in UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, actor string, id uuid.UUID) error
	Audit(ctx context.Context, n int64) ([]auditlog.Entry, error)
}

type adminService struct {
	creds  AdminCredentials
	users  repository.UserRepository
	tokens *auth.TokenService
	cache  *cache.Client
	audit  auditlog.Recorder
}

// NewAdminService creates a new admin service.
func NewAdminService(creds AdminCredentials, users repository.UserRepository, tokens *auth.TokenService, cache *cache.Client, audit auditlog.Recorder) AdminService {
	return &adminService{creds: creds, users: users, tokens: tokens, cache: cache, audit: audit}
}

// Login checks the configured credentials in constant time and issues an admin token.
func (s *adminService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	if !userOK || !passOK {
		s.audit.Record(ctx, "admin.login_failed", anonymousActor, nil)
		return "", apperrors.ErrInvalidAdminCredentials
	}

	token, err := s.tokens.IssueAdminToken(AdminID, auth.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("issue admin token: %w", err)
	}
	s.audit.Record(ctx, "admin.login", AdminID, nil)
	return token, nil
}

// ListUsers returns every user newest first, without password hashes.
func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, wrap("list users", err)
	}
	return users, nil
}

func (s *adminService) UpdateUser(ctx context.Context, actor string, id uuid.UUID, in UserUpdate) (*model.User, error) {
	cols := map[string]interface{}{}
	setString(cols, "full_name", in.FullName)
	setString(cols, "phone_number", in.PhoneNumber)

	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		other, err := s.users.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, apperrors.ErrEmailTaken
		}
		cols["email"] = email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		cols["password"] = string(hash)
	}

	user, err := s.users.Update(ctx, id, cols)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil {
		return nil, wrap("update user", err)
	}
	_ = s.cache.Delete(ctx, profileCacheKey(id))
	s.audit.Record(ctx, "user.update", actor, map[string]string{"id": id.String()})
	return user, nil
}

// DeleteUser removes the user only. Their bookings are kept.
func (s *adminService) DeleteUser(ctx context.Context, actor string, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return wrap("delete user", err)
	}
	_ = s.cache.Delete(ctx, profileCacheKey(id))
	s.audit.Record(ctx, "user.delete", actor, map[string]string{"id": id.String()})
	return nil
}

// Audit returns the most recent admin actions.
func (s *adminService) Audit(ctx context.Context, n int64) ([]auditlog.Entry, error) {
	entries, err := s.audit.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}
	return entries, nil
}
