package api

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"travelrec/internal/db"
	"travelrec/internal/models"
)

// ContactLister reads stored contact messages.
type ContactLister interface {
	ListContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error)
	GetContactMessage(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
}

// ContactHandler exposes stored contact messages to admins.
type ContactHandler struct {
	store ContactLister
}

// NewContactHandler creates a new API contact handler.
func NewContactHandler(store ContactLister) *ContactHandler {
	return &ContactHandler{store: store}
}

// List returns the most recent messages (?limit=, default 50, max 200).
func (h *ContactHandler) List(c fiber.Ctx) error {
	messages, err := h.store.ListContactMessages(c.Context(), queryLimit(c, 50, 200))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to list contact messages")
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	return jsonSuccess(c, messages)
}

// Get returns a single message by id.
func (h *ContactHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid message id")
	}

	msg, err := h.store.GetContactMessage(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrContactMessageNotFound) {
			return jsonError(c, fiber.StatusNotFound, "contact message not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to load contact message")
	}
	return jsonSuccess(c, msg)
}
