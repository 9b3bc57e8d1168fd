package email

import (
	"fmt"
	"html"
	"strings"

	"travelrec/internal/config"
	"travelrec/internal/models"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0e7490; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { padding: 15px; text-align: center; font-size: 12px; color: #6b7280; }
        .label { font-weight: 600; color: #374151; }
        blockquote { background: white; border-left: 4px solid #0e7490; margin: 15px 0; padding: 10px 15px; white-space: pre-wrap; }
    </style>
</head>
<body>
    <div class="header"><h1>%s</h1></div>
    <div class="content">%s</div>
    <div class="footer"><p>Sent by %s &middot; <a href="%s">%s</a></p></div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(t.cfg.SiteTitle), content,
		html.EscapeString(t.cfg.SiteTitle), html.EscapeString(t.cfg.BaseURL), html.EscapeString(t.cfg.BaseURL))
}

// ContactReceived generates the notification for a new contact form message.
func (t *Templates) ContactReceived(msg *models.ContactMessage) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] New message from %s", t.cfg.SiteTitle, singleLine(msg.Name))

	content := fmt.Sprintf(`<p>A visitor submitted the contact form.</p>
<p><span class="label">Name:</span> %s</p>
<p><span class="label">Email:</span> <a href="mailto:%s">%s</a></p>
<blockquote>%s</blockquote>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email), html.EscapeString(msg.Email),
		html.EscapeString(msg.Message))
	htmlBody = t.baseHTML("New contact message", content)

	textBody = fmt.Sprintf("A visitor submitted the contact form.\n\nName: %s\nEmail: %s\n\n%s\n\n-- %s (%s)\n",
		msg.Name, msg.Email, msg.Message, t.cfg.SiteTitle, t.cfg.BaseURL)

	return subject, htmlBody, textBody
}

// singleLine strips line breaks so user input cannot inject mail headers.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
