package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/growwitup/backend/internal/logger"
	"github.com/growwitup/backend/internal/model"
	"github.com/growwitup/backend/internal/repository"
)

// Subscription errors
var (
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrNotSubscribed     = errors.New("email not found")
	ErrInvalidEmail      = errors.New("invalid email address")
)

// SubscriberStore is the persistence surface the subscriber service needs.
type SubscriberStore interface {
	Create(ctx context.Context, sub *model.Subscriber) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteByEmail(ctx context.Context, email string) error
	List(ctx context.Context) ([]model.Subscriber, error)
	Count(ctx context.Context) (int, error)
}

// SubscriberService manages the subscriber list.
type SubscriberService struct {
	subscribers SubscriberStore
	log         *logger.Logger
}

// NewSubscriberService creates a new SubscriberService
func NewSubscriberService(subscribers SubscriberStore, log *logger.Logger) *SubscriberService {
	return &SubscriberService{
		subscribers: subscribers,
		log:         log.WithComponent("subscriber_service"),
	}
}

// Subscribe adds an email to the subscriber list. A duplicate email is
// rejected with ErrAlreadySubscribed, whether caught by the pre-check or by
// the storage-level unique constraint.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	exists, err := s.subscribers.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check subscriber: %w", err)
	}
	if exists {
		return ErrAlreadySubscribed
	}

	sub := &model.Subscriber{
		ID:           uuid.New().String(),
		Email:        email,
		SubscribedAt: time.Now(),
	}
	if err := s.subscribers.Create(ctx, sub); err != nil {
		// Concurrent subscribe can slip past the pre-check; the unique
		// constraint catches it.
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadySubscribed
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}

	s.log.Info().Str("email", email).Msg("subscriber added")
	return nil
}

// Unsubscribe removes an email from the subscriber list. An unknown email
// is rejected with ErrNotSubscribed and the list is left unchanged.
func (s *SubscriberService) Unsubscribe(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	if err := s.subscribers.DeleteByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotSubscribed
		}
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}

	s.log.Info().Str("email", email).Msg("subscriber removed")
	return nil
}

// List returns all subscribers
func (s *SubscriberService) List(ctx context.Context) ([]model.Subscriber, error) {
	return s.subscribers.List(ctx)
}

// Count returns the total number of subscribers
func (s *SubscriberService) Count(ctx context.Context) (int, error) {
	return s.subscribers.Count(ctx)
}

// normalizeEmail lowercases, trims, and validates an email address.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}
