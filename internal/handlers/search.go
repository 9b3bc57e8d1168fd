package handlers

import (
	"html/template"
	"time"

	"github.com/gofiber/fiber/v3"

	"travelrec/internal/config"
	"travelrec/internal/render"
	"travelrec/internal/search"
)

// SearchHandler renders the home page and its search results.
type SearchHandler struct {
	pipeline *search.Pipeline
	layout   *Layout
	now      func() time.Time
}

// NewSearchHandler creates a new search handler. now supplies the viewer's
// instant for local time hints.
func NewSearchHandler(pipeline *search.Pipeline, layout *Layout, now func() time.Time) *SearchHandler {
	if now == nil {
		now = time.Now
	}
	return &SearchHandler{pipeline: pipeline, layout: layout, now: now}
}

// Index renders the home page with an empty results area.
func (h *SearchHandler) Index(c fiber.Ctx) error {
	return c.Render("index", h.layout.Data(config.HomePage, resultsData("", render.View{})))
}

// Search resolves ?q= and renders the results. HTMX requests receive only
// the results fragment.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	query := c.Query("q", "")
	view := render.Build(h.pipeline.Resolve(query), h.now())

	data := resultsData(query, view)
	if isHTMX(c) {
		return c.Render("partials/results", data, "")
	}
	return c.Render("index", h.layout.Data(config.HomePage, data))
}

// Reset clears the query, results and local time hint.
func (h *SearchHandler) Reset(c fiber.Ctx) error {
	if isHTMX(c) {
		return c.Render("partials/results", resultsData("", render.View{}), "")
	}
	return c.Redirect().Status(fiber.StatusSeeOther).To("/")
}

func resultsData(query string, view render.View) fiber.Map {
	results := template.HTML("")
	if !view.IsEmpty() {
		results = view.HTML()
	}
	return fiber.Map{
		"Query":     query,
		"Results":   results,
		"LocalTime": view.LocalTime,
	}
}
