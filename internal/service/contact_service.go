package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/growwitup/backend/internal/config"
	"github.com/growwitup/backend/internal/email"
	"github.com/growwitup/backend/internal/logger"
	"github.com/growwitup/backend/internal/model"
)

// ContactStore is the persistence surface the contact service needs.
type ContactStore interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]model.ContactMessage, error)
	Count(ctx context.Context) (int, error)
}

// ContactService stores contact-form submissions and notifies the owner.
type ContactService struct {
	contacts  ContactStore
	senderFor email.Factory
	mailCfg   config.MailConfig
	log       *logger.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contacts ContactStore, senderFor email.Factory, mailCfg config.MailConfig, log *logger.Logger) *ContactService {
	return &ContactService{
		contacts:  contacts,
		senderFor: senderFor,
		mailCfg:   mailCfg,
		log:       log.WithComponent("contact_service"),
	}
}

// Submit persists a contact message and then mails the owner a
// notification. The record is persisted first and stays persisted even when
// the notification send fails; the mail error is returned to the caller for
// status mapping.
func (s *ContactService) Submit(ctx context.Context, name, fromEmail, message string) error {
	msg := &model.ContactMessage{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     fromEmail,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}
	s.log.Info().Str("contact_id", msg.ID).Str("email", fromEmail).Msg("contact message stored")

	sender, err := s.senderFor(ctx)
	if err != nil {
		return fmt.Errorf("failed to create mail sender: %w", err)
	}

	err = sender.Send(ctx, email.Message{
		To:       s.mailCfg.OwnerEmail,
		Subject:  fmt.Sprintf("%s Want to Contact.", name),
		HTMLBody: email.ContactNotificationHTML(name, fromEmail, message),
		TextBody: email.ContactNotificationText(name, fromEmail, message),
	})
	if err != nil {
		s.log.Error().Err(err).Str("contact_id", msg.ID).Msg("owner notification failed")
		return err
	}

	return nil
}

// List returns all contact messages
func (s *ContactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	return s.contacts.List(ctx)
}

// Count returns the total number of contact messages
func (s *ContactService) Count(ctx context.Context) (int, error) {
	return s.contacts.Count(ctx)
}
