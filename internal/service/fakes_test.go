package service_test

import (
	"context"
	"sync"

	"github.com/growwitup/backend/internal/email"
	"github.com/growwitup/backend/internal/logger"
	"github.com/growwitup/backend/internal/model"
	"github.com/growwitup/backend/internal/repository"
)

func testLogger() *logger.Logger {
	return logger.New("disabled", "json")
}

// fakeUserStore is an in-memory UserStore
type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore(users ...*model.User) *fakeUserStore {
	s := &fakeUserStore{users: map[string]*model.User{}}
	for _, u := range users {
		s.users[u.Email] = u
	}
	return s
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

// fakeSubscriberStore is an in-memory SubscriberStore
type fakeSubscriberStore struct {
	mu   sync.Mutex
	subs []model.Subscriber
}

func newFakeSubscriberStore(emails ...string) *fakeSubscriberStore {
	s := &fakeSubscriberStore{}
	for _, e := range emails {
		s.subs = append(s.subs, model.Subscriber{ID: e, Email: e})
	}
	return s
}

func (s *fakeSubscriberStore) Create(ctx context.Context, sub *model.Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.subs {
		if existing.Email == sub.Email {
			return repository.ErrDuplicate
		}
	}
	s.subs = append(s.subs, *sub)
	return nil
}

func (s *fakeSubscriberStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.subs {
		if existing.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeSubscriberStore) DeleteByEmail(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.subs {
		if existing.Email == email {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeSubscriberStore) List(ctx context.Context) ([]model.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Subscriber, len(s.subs))
	copy(out, s.subs)
	return out, nil
}

func (s *fakeSubscriberStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs), nil
}

// fakeContactStore is an in-memory ContactStore
type fakeContactStore struct {
	mu        sync.Mutex
	messages  []model.ContactMessage
	createErr error
}

func (s *fakeContactStore) Create(ctx context.Context, msg *model.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *fakeContactStore) List(ctx context.Context) ([]model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ContactMessage, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

func (s *fakeContactStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages), nil
}

// fakeSender records sent messages and can fail selected recipients
type fakeSender struct {
	mu      sync.Mutex
	sent    []email.Message
	failFor map[string]error
}

func (s *fakeSender) Send(ctx context.Context, msg email.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failFor[msg.To]; ok {
		return err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *fakeSender) sentTo() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.sent))
	for _, msg := range s.sent {
		out = append(out, msg.To)
	}
	return out
}

func factoryFor(sender email.Sender) email.Factory {
	return func(ctx context.Context) (email.Sender, error) {
		return sender, nil
	}
}

func failingFactory(err error) email.Factory {
	return func(ctx context.Context) (email.Sender, error) {
		return nil, err
	}
}
