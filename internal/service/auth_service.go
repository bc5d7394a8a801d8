package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/growwitup/backend/internal/auth"
	"github.com/growwitup/backend/internal/logger"
	"github.com/growwitup/backend/internal/model"
	"github.com/growwitup/backend/internal/repository"
)

// ErrInvalidCredentials is returned on any login failure, whether the user
// is unknown or the password does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService handles admin login.
type AuthService struct {
	users    UserStore
	tokenSvc *auth.TokenService
	log      *logger.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, tokenSvc *auth.TokenService, log *logger.Logger) *AuthService {
	return &AuthService{
		users:    users,
		tokenSvc: tokenSvc,
		log:      log.WithComponent("auth_service"),
	}
}

// LoginResponse contains the response from a login
type LoginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Login validates the email/password pair against the stored user and
// issues a credential under the configured policy.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		s.log.Info().Str("email", email).Msg("login failed: password mismatch")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue credential: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("email", email).Msg("login successful")

	return &LoginResponse{
		Email: user.Email,
		Token: token,
	}, nil
}
