package repository

import (
	"context"
	"fmt"

	"github.com/growwitup/backend/internal/database"
	"github.com/growwitup/backend/internal/model"
)

// SubscriberRepository handles subscriber persistence
type SubscriberRepository struct {
	db *database.Postgres
}

// NewSubscriberRepository creates a new SubscriberRepository
func NewSubscriberRepository(db *database.Postgres) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// Create inserts a new subscriber. Returns ErrDuplicate if the email is
// already subscribed (unique constraint on email).
func (r *SubscriberRepository) Create(ctx context.Context, sub *model.Subscriber) error {
	query := `
		INSERT INTO subscribers (id, email, subscribed_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, sub.ID, sub.Email, sub.SubscribedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

// ExistsByEmail checks if a subscriber with the given email exists
func (r *SubscriberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM subscribers WHERE email = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check subscriber existence: %w", err)
	}
	return exists, nil
}

// DeleteByEmail removes a subscriber. Returns ErrNotFound if no row matched.
func (r *SubscriberRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM subscribers WHERE email = $1`
	result, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all subscribers ordered by subscription time
func (r *SubscriberRepository) List(ctx context.Context) ([]model.Subscriber, error) {
	query := `
		SELECT id, email, subscribed_at
		FROM subscribers
		ORDER BY subscribed_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := []model.Subscriber{}
	for rows.Next() {
		var sub model.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.SubscribedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscribers: %w", err)
	}
	return subscribers, nil
}

// Count returns the total number of subscribers
func (r *SubscriberRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}
