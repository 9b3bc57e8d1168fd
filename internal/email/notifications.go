package email

import (
	"travelrec/internal/config"
	"travelrec/internal/models"
)

// Notifier sends email notifications for site events.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
	}
}

// NotifyContactMessage forwards a contact form submission to the site owner.
func (n *Notifier) NotifyContactMessage(msg *models.ContactMessage) {
	if n == nil || !n.service.IsEnabled() || n.cfg.ContactNotifyEmail == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.ContactReceived(msg)
	n.service.SendAsync([]string{n.cfg.ContactNotifyEmail}, subject, htmlBody, textBody)
}
