package repository

import (
	"context"
	"fmt"

	"github.com/growwitup/backend/internal/database"
	"github.com/growwitup/backend/internal/model"
)

// ContactRepository handles contact message persistence
type ContactRepository struct {
	db *database.Postgres
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *database.Postgres) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact message
func (r *ContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Message,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// List returns all contact messages, newest first
func (r *ContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []model.ContactMessage{}
	for rows.Next() {
		var msg model.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact messages: %w", err)
	}
	return messages, nil
}

// Count returns the total number of contact messages
func (r *ContactRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}
