package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"
)

// isHTMX reports whether the request was issued by HTMX and expects a fragment.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(`<div class="alert alert-error" role="alert">` + html.EscapeString(message) + `</div>`)
}
