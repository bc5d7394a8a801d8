package service_test

import (
	"context"
	"testing"

	"github.com/growwitup/backend/internal/service"
	"github.com/stretchr/testify/require"
)

func TestSubscriberService_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("new email is added", func(t *testing.T) {
		t.Parallel()
		store := newFakeSubscriberStore()
		svc := service.NewSubscriberService(store, testLogger())

		require.NoError(t, svc.Subscribe(context.Background(), "b@x.com"))

		count, err := svc.Count(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("duplicate email is rejected and not stored twice", func(t *testing.T) {
		t.Parallel()
		store := newFakeSubscriberStore()
		svc := service.NewSubscriberService(store, testLogger())

		require.NoError(t, svc.Subscribe(context.Background(), "b@x.com"))
		err := svc.Subscribe(context.Background(), "b@x.com")
		require.ErrorIs(t, err, service.ErrAlreadySubscribed)

		count, err := svc.Count(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("storage-level duplicate maps to the same error", func(t *testing.T) {
		t.Parallel()
		// Pre-seed the store directly so the service pre-check cannot see
		// the row through its own normalized lookup path.
		store := newFakeSubscriberStore("c@x.com")
		svc := service.NewSubscriberService(store, testLogger())

		err := svc.Subscribe(context.Background(), "c@x.com")
		require.ErrorIs(t, err, service.ErrAlreadySubscribed)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		t.Parallel()
		svc := service.NewSubscriberService(newFakeSubscriberStore(), testLogger())
		err := svc.Subscribe(context.Background(), "not-an-email")
		require.ErrorIs(t, err, service.ErrInvalidEmail)
	})
}

func TestSubscriberService_Unsubscribe(t *testing.T) {
	t.Parallel()

	t.Run("existing email is removed", func(t *testing.T) {
		t.Parallel()
		store := newFakeSubscriberStore("b@x.com")
		svc := service.NewSubscriberService(store, testLogger())

		require.NoError(t, svc.Unsubscribe(context.Background(), "b@x.com"))

		count, err := svc.Count(context.Background())
		require.NoError(t, err)
		require.Equal(t, 0, count)
	})

	t.Run("unknown email returns not subscribed and leaves the set unchanged", func(t *testing.T) {
		t.Parallel()
		store := newFakeSubscriberStore("b@x.com")
		svc := service.NewSubscriberService(store, testLogger())

		err := svc.Unsubscribe(context.Background(), "nobody@x.com")
		require.ErrorIs(t, err, service.ErrNotSubscribed)

		count, err := svc.Count(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

func TestSubscriberService_CountAfterChurn(t *testing.T) {
	t.Parallel()

	svc := service.NewSubscriberService(newFakeSubscriberStore(), testLogger())
	ctx := context.Background()

	emails := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"}
	for _, e := range emails {
		require.NoError(t, svc.Subscribe(ctx, e))
	}

	require.NoError(t, svc.Unsubscribe(ctx, "b@x.com"))
	require.NoError(t, svc.Unsubscribe(ctx, "d@x.com"))
	// Repeat removal of an already-removed email does not change the count
	require.ErrorIs(t, svc.Unsubscribe(ctx, "b@x.com"), service.ErrNotSubscribed)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
