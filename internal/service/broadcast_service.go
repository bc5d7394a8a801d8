package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/growwitup/backend/internal/config"
	"github.com/growwitup/backend/internal/email"
	"github.com/growwitup/backend/internal/logger"
	"golang.org/x/sync/errgroup"
)

// RecipientFailure records one failed send during a broadcast.
type RecipientFailure struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// BroadcastResult reports the outcome of a broadcast: how many sends
// succeeded out of the total attempted, and which recipients failed.
type BroadcastResult struct {
	Sent   int                `json:"sent"`
	Total  int                `json:"total"`
	Failed []RecipientFailure `json:"failed,omitempty"`
}

// BroadcastService sends mail to every current subscriber.
type BroadcastService struct {
	subscribers SubscriberStore
	senderFor   email.Factory
	mailCfg     config.MailConfig
	siteCfg     config.SiteConfig
	log         *logger.Logger
}

// NewBroadcastService creates a new BroadcastService
func NewBroadcastService(
	subscribers SubscriberStore,
	senderFor email.Factory,
	mailCfg config.MailConfig,
	siteCfg config.SiteConfig,
	log *logger.Logger,
) *BroadcastService {
	return &BroadcastService{
		subscribers: subscribers,
		senderFor:   senderFor,
		mailCfg:     mailCfg,
		siteCfg:     siteCfg,
		log:         log.WithComponent("broadcast_service"),
	}
}

// SendBroadcast sends one message per subscriber with an unsubscribe link.
// Sends fan out with bounded concurrency and continue past individual
// failures; every failed recipient is collected into the result. The whole
// broadcast runs under the configured timeout, so the result may report
// partial completion.
func (s *BroadcastService) SendBroadcast(ctx context.Context, subject, htmlBody string) (*BroadcastResult, error) {
	if s.mailCfg.BroadcastTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.mailCfg.BroadcastTimeout)
		defer cancel()
	}

	subs, err := s.subscribers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	// One sender per send session: a single refresh-token exchange covers
	// the whole broadcast.
	sender, err := s.senderFor(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail sender: %w", err)
	}

	concurrency := s.mailCfg.BroadcastConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	result := &BroadcastResult{Total: len(subs)}
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(concurrency)

	for _, sub := range subs {
		g.Go(func() error {
			msg := email.Message{
				To:       sub.Email,
				Subject:  subject,
				HTMLBody: email.BroadcastHTML(htmlBody, s.siteCfg.PublicBaseURL),
				TextBody: email.BroadcastText(htmlBody, s.siteCfg.PublicBaseURL),
			}

			err := sender.Send(ctx, msg)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.Error().Err(err).Str("recipient", sub.Email).Msg("broadcast send failed")
				result.Failed = append(result.Failed, RecipientFailure{
					Email:  sub.Email,
					Reason: reasonFor(err),
				})
				return nil
			}
			result.Sent++
			return nil
		})
	}

	g.Wait()

	s.log.Info().
		Int("sent", result.Sent).
		Int("total", result.Total).
		Int("failed", len(result.Failed)).
		Msg("broadcast completed")

	return result, nil
}

// reasonFor reduces a send error to a sanitized per-recipient reason.
// Raw provider errors never reach the response.
func reasonFor(err error) string {
	switch {
	case errors.Is(err, email.ErrAuthFailure):
		return "provider authentication failed"
	case errors.Is(err, email.ErrConnectionFailure):
		return "provider connection failed"
	case errors.Is(err, email.ErrInvalidRecipient):
		return "recipient address rejected"
	case errors.Is(err, context.DeadlineExceeded):
		return "broadcast timed out"
	default:
		return "send failed"
	}
}

// SendMeetingConfirmation notifies the owner that a meeting date was
// proposed by the given requester.
func (s *BroadcastService) SendMeetingConfirmation(ctx context.Context, date, requesterEmail string) error {
	sender, err := s.senderFor(ctx)
	if err != nil {
		return fmt.Errorf("failed to create mail sender: %w", err)
	}

	err = sender.Send(ctx, email.Message{
		To:       s.mailCfg.OwnerEmail,
		Subject:  "Meeting Scheduled!",
		HTMLBody: email.MeetingConfirmationHTML(date, requesterEmail),
		TextBody: email.MeetingConfirmationText(date, requesterEmail),
	})
	if err != nil {
		s.log.Error().Err(err).Str("requester", requesterEmail).Msg("meeting confirmation failed")
		return err
	}
	return nil
}
