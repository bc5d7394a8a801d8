package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/growwitup/backend/internal/config"
	"github.com/growwitup/backend/internal/email"
	"github.com/growwitup/backend/internal/service"
	"github.com/stretchr/testify/require"
)

// slowSender succeeds for the first fast sends and then blocks every later
// send until the context expires.
type slowSender struct {
	mu   sync.Mutex
	fast int
	sent int
}

func (s *slowSender) Send(ctx context.Context, msg email.Message) error {
	s.mu.Lock()
	if s.sent < s.fast {
		s.sent++
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()
	<-ctx.Done()
	return ctx.Err()
}

func siteConfig() config.SiteConfig {
	return config.SiteConfig{PublicBaseURL: "https://growwitup.com"}
}

func broadcastMailConfig() config.MailConfig {
	cfg := mailConfig()
	cfg.BroadcastConcurrency = 2
	return cfg
}

func TestBroadcastService_SendBroadcast(t *testing.T) {
	t.Parallel()

	t.Run("sends to every subscriber", func(t *testing.T) {
		t.Parallel()
		store := newFakeSubscriberStore("a@x.com", "b@x.com", "c@x.com")
		sender := &fakeSender{}
		svc := service.NewBroadcastService(store, factoryFor(sender), broadcastMailConfig(), siteConfig(), testLogger())

		result, err := svc.SendBroadcast(context.Background(), "News", "<b>Big update</b>")
		require.NoError(t, err)
		require.Equal(t, 3, result.Total)
		require.Equal(t, 3, result.Sent)
		require.Empty(t, result.Failed)
		require.ElementsMatch(t, []string{"a@x.com", "b@x.com", "c@x.com"}, sender.sentTo())

		require.Equal(t, "News", sender.sent[0].Subject)
		require.Contains(t, sender.sent[0].HTMLBody, "https://growwitup.com/unsubscribe")
	})

	t.Run("continues past individual failures", func(t *testing.T) {
		t.Parallel()
		store := newFakeSubscriberStore("a@x.com", "b@x.com", "c@x.com", "d@x.com")
		sender := &fakeSender{failFor: map[string]error{"b@x.com": errors.New("mailbox full")}}
		svc := service.NewBroadcastService(store, factoryFor(sender), broadcastMailConfig(), siteConfig(), testLogger())

		result, err := svc.SendBroadcast(context.Background(), "News", "update")
		require.NoError(t, err)
		require.Equal(t, 4, result.Total)
		require.Equal(t, 3, result.Sent)
		require.Len(t, result.Failed, 1)
		require.Equal(t, "b@x.com", result.Failed[0].Email)
		require.NotEmpty(t, result.Failed[0].Reason)

		// The remaining subscribers were still attempted
		require.ElementsMatch(t, []string{"a@x.com", "c@x.com", "d@x.com"}, sender.sentTo())
	})

	t.Run("timeout reports partial completion", func(t *testing.T) {
		t.Parallel()
		store := newFakeSubscriberStore("a@x.com", "b@x.com", "c@x.com", "d@x.com")
		sender := &slowSender{fast: 2}

		cfg := broadcastMailConfig()
		cfg.BroadcastConcurrency = 1
		cfg.BroadcastTimeout = 50 * time.Millisecond
		svc := service.NewBroadcastService(store, factoryFor(sender), cfg, siteConfig(), testLogger())

		result, err := svc.SendBroadcast(context.Background(), "News", "update")
		require.NoError(t, err)
		require.Equal(t, 4, result.Total)
		require.Equal(t, 2, result.Sent)
		require.Len(t, result.Failed, 2)
		for _, f := range result.Failed {
			require.Equal(t, "broadcast timed out", f.Reason)
		}
	})

	t.Run("empty subscriber list sends nothing", func(t *testing.T) {
		t.Parallel()
		sender := &fakeSender{}
		svc := service.NewBroadcastService(newFakeSubscriberStore(), factoryFor(sender), broadcastMailConfig(), siteConfig(), testLogger())

		result, err := svc.SendBroadcast(context.Background(), "News", "update")
		require.NoError(t, err)
		require.Equal(t, 0, result.Total)
		require.Equal(t, 0, result.Sent)
		require.Empty(t, sender.sentTo())
	})

	t.Run("sender construction failure aborts the broadcast", func(t *testing.T) {
		t.Parallel()
		store := newFakeSubscriberStore("a@x.com")
		svc := service.NewBroadcastService(store, failingFactory(errors.New("bad refresh token")), broadcastMailConfig(), siteConfig(), testLogger())

		_, err := svc.SendBroadcast(context.Background(), "News", "update")
		require.Error(t, err)
	})
}

func TestBroadcastService_SendMeetingConfirmation(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	svc := service.NewBroadcastService(newFakeSubscriberStore(), factoryFor(sender), broadcastMailConfig(), siteConfig(), testLogger())

	err := svc.SendMeetingConfirmation(context.Background(), "2026-09-01", "client@x.com")
	require.NoError(t, err)

	require.Equal(t, []string{"owner@growwitup.com"}, sender.sentTo())
	require.Equal(t, "Meeting Scheduled!", sender.sent[0].Subject)
	require.Contains(t, sender.sent[0].HTMLBody, "2026-09-01")
	require.Contains(t, sender.sent[0].HTMLBody, "client@x.com")
}
