package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"travelrec/internal/models"
)

// CreateContactMessage stores a contact form submission and fills its ID and timestamp.
func (d *DB) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}

	err := d.Pool.QueryRow(ctx, `
		INSERT INTO contact_messages (id, name, email, message)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, msg.ID, msg.Name, msg.Email, msg.Message).Scan(&msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// GetContactMessage returns a single contact message by ID.
func (d *DB) GetContactMessage(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := d.Pool.QueryRow(ctx, `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		WHERE id = $1
	`, id).Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContactMessageNotFound
		}
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	return &msg, nil
}

// ListContactMessages returns the most recent contact messages, newest first.
func (d *DB) ListContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var msg models.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
