package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"venuebook/internal/auth"
	"venuebook/internal/cache"
	apperrors "venuebook/internal/errors"
	"venuebook/internal/model"
	"venuebook/internal/repository"
)

const (
	bcryptCost      = 10
	profileCacheTTL = 5 * time.Minute
)

// RegisterInput carries the fields of the registration form.
type RegisterInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
}

// AuthService handles user registration, login and profile lookup.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
	Profile(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
	cache  *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService, cache *cache.Client) AuthService {
	return &authService{users: users, tokens: tokens, cache: cache}
}

func profileCacheKey(id uuid.UUID) string {
	return "user:profile:" + id.String()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with a hashed password and returns a user token.
func (s *authService) Register(ctx context.Context, in RegisterInput) (string, error) {
	email := normalizeEmail(in.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FullName:    strings.TrimSpace(in.FullName),
		Email:       email,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Password:    string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// a concurrent registration can win the race past FindByEmail
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperrors.ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.IssueUserToken(user.ID.String())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Login verifies the credentials and returns a user token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueUserToken(user.ID.String())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Profile returns the user without the password hash, served from cache when possible.
func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, profileCacheKey(userID), &cached) {
		return &cached, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, wrap("find user", err)
	}
	user.Password = ""

	s.cache.SetJSON(ctx, profileCacheKey(userID), user, profileCacheTTL)
	return user, nil
}
