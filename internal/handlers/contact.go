package handlers

import (
	"context"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"travelrec/internal/config"
	"travelrec/internal/email"
	"travelrec/internal/models"
	"travelrec/internal/validation"
)

const flashKey = "flash"

// ContactStore persists contact form submissions.
type ContactStore interface {
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	store    ContactStore
	notifier *email.Notifier
	layout   *Layout
	site     *config.SiteConfig
}

// NewContactHandler creates a new contact handler. store and notifier may be nil.
func NewContactHandler(store ContactStore, notifier *email.Notifier, layout *Layout, site *config.SiteConfig) *ContactHandler {
	return &ContactHandler{store: store, notifier: notifier, layout: layout, site: site}
}

// Submit validates and records a message, then redirects back to the
// contact page with an acknowledgement and empty fields.
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	form := ContactForm{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Message: strings.TrimSpace(c.FormValue("message")),
	}

	if valid, msg := validation.ValidateContactForm(form.Name, form.Email, form.Message); !valid {
		if isHTMX(c) {
			return htmxError(c, msg)
		}
		return c.Status(fiber.StatusUnprocessableEntity).Render("contact", h.layout.Data("contact", fiber.Map{
			"Error": msg,
			"Form":  form,
		}))
	}

	message := &models.ContactMessage{
		ID:        uuid.New(),
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		CreatedAt: time.Now(),
	}

	if h.store != nil {
		if err := h.store.CreateContactMessage(c.Context(), message); err != nil {
			log.Printf("Failed to save contact message: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Your message could not be saved. Please try again later.")
		}
	} else {
		slog.Info("contact message received", "id", message.ID, "email", message.Email)
	}

	h.notifier.NotifyContactMessage(message)

	setFlash(c, h.site.Contact.Acknowledgement)
	return c.Redirect().Status(fiber.StatusSeeOther).To("/page/contact")
}

func setFlash(c fiber.Ctx, message string) {
	if sess := session.FromContext(c); sess != nil {
		sess.Set(flashKey, message)
	}
}

// popFlash returns and clears the pending flash message.
func popFlash(c fiber.Ctx) string {
	sess := session.FromContext(c)
	if sess == nil {
		return ""
	}
	message, _ := sess.Get(flashKey).(string)
	if message != "" {
		sess.Delete(flashKey)
	}
	return message
}
