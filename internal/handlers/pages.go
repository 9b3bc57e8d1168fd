package handlers

import (
	"github.com/gofiber/fiber/v3"

	"travelrec/internal/config"
)

// ContactForm holds the values echoed back into the contact form.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// Layout builds the data shared by every page: branding, navigation and
// the search bar, which is only visible on the home page.
type Layout struct {
	cfg  *config.Config
	site *config.SiteConfig
}

// NewLayout creates a layout helper.
func NewLayout(cfg *config.Config, site *config.SiteConfig) *Layout {
	return &Layout{cfg: cfg, site: site}
}

// ResolvePage returns the page for id, falling back to the home page for
// empty or unknown ids.
func (l *Layout) ResolvePage(id string) config.PageConfig {
	if p := l.site.GetPage(id); p != nil {
		return *p
	}
	if p := l.site.GetPage(config.HomePage); p != nil {
		return *p
	}
	return config.PageConfig{ID: config.HomePage, Title: "Home"}
}

// Data returns template data with pageID as the single active page.
func (l *Layout) Data(pageID string, data fiber.Map) fiber.Map {
	page := l.ResolvePage(pageID)
	if data == nil {
		data = fiber.Map{}
	}
	data["Pages"] = l.site.Pages
	data["ActivePage"] = page.ID
	data["ShowSearch"] = page.ID == config.HomePage
	if _, ok := data["Title"]; !ok {
		data["Title"] = page.Title
	}
	if _, ok := data["Query"]; !ok {
		data["Query"] = ""
	}
	if _, ok := data["Form"]; !ok {
		data["Form"] = ContactForm{}
	}
	return MergeBranding(data, l.cfg)
}

// ErrorData returns template data for the error page; no page is active.
func (l *Layout) ErrorData(title, message string) fiber.Map {
	return MergeBranding(fiber.Map{
		"Title":      title,
		"Message":    message,
		"Pages":      l.site.Pages,
		"ActivePage": "",
		"ShowSearch": false,
		"Query":      "",
	}, l.cfg)
}

// PageHandler renders named pages.
type PageHandler struct {
	layout *Layout
	site   *config.SiteConfig
	search *SearchHandler
}

// NewPageHandler creates a new page handler.
func NewPageHandler(layout *Layout, site *config.SiteConfig, search *SearchHandler) *PageHandler {
	return &PageHandler{layout: layout, site: site, search: search}
}

// Show renders the page named by the :page param. Unknown pages fall back
// to home, the server-side equivalent of an unmatched location fragment.
func (h *PageHandler) Show(c fiber.Ctx) error {
	return h.render(c, c.Params("page"))
}

// Named returns a handler that always renders the given page.
func (h *PageHandler) Named(id string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return h.render(c, id)
	}
}

func (h *PageHandler) render(c fiber.Ctx, id string) error {
	page := h.layout.ResolvePage(id)

	switch page.ID {
	case config.HomePage:
		return h.search.Index(c)
	case "about":
		return c.Render("about", h.layout.Data(page.ID, fiber.Map{
			"About": h.site.About,
		}))
	case "contact":
		return c.Render("contact", h.layout.Data(page.ID, fiber.Map{
			"Flash": popFlash(c),
		}))
	default:
		return c.Render("page", h.layout.Data(page.ID, nil))
	}
}
