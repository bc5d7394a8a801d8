package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/growwitup/backend/internal/config"
)

// ErrInvalidCredential is returned when a presented credential fails
// validation under the active policy.
var ErrInvalidCredential = errors.New("invalid or expired credential")

// TokenClaims represents the claims embedded in an access token.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email  string `json:"email,omitempty"`
	UserID string `json:"userId,omitempty"`
}

// TokenService issues and validates login credentials. Under the token
// policy credentials are HS256-signed JWTs with a fixed expiry; under the
// legacy shared-secret policy the credential is a static configured value
// with no expiry and no per-user binding.
type TokenService struct {
	cfg config.AuthConfig
}

// NewTokenService creates a new TokenService.
func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{cfg: cfg}
}

// Issue creates a credential for the given user.
func (s *TokenService) Issue(userID, email string) (string, error) {
	if s.cfg.Policy == config.PolicySharedSecret {
		return s.cfg.SharedToken, nil
	}

	now := time.Now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			ID:        uuid.New().String(),
		},
		Email:  email,
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SigningSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate checks a presented credential and returns its claims.
// Under the shared-secret policy the returned claims carry no user binding.
func (s *TokenService) Validate(credential string) (*TokenClaims, error) {
	if s.cfg.Policy == config.PolicySharedSecret {
		if subtle.ConstantTimeCompare([]byte(credential), []byte(s.cfg.SharedToken)) != 1 {
			return nil, ErrInvalidCredential
		}
		return &TokenClaims{}, nil
	}

	token, err := jwt.ParseWithClaims(credential, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidCredential
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidCredential
	}
	return claims, nil
}
