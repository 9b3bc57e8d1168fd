package api

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"travelrec/internal/models"
	"travelrec/internal/render"
	"travelrec/internal/search"
)

// SearchHandler exposes the search pipeline as JSON.
type SearchHandler struct {
	pipeline *search.Pipeline
	now      func() time.Time
}

// NewSearchHandler creates a new API search handler.
func NewSearchHandler(pipeline *search.Pipeline, now func() time.Time) *SearchHandler {
	if now == nil {
		now = time.Now
	}
	return &SearchHandler{pipeline: pipeline, now: now}
}

// Search resolves ?q= and returns the matching destinations.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	res := h.pipeline.Resolve(c.Query("q", ""))
	view := render.Build(res, h.now())

	destinations := res.Destinations
	if destinations == nil {
		destinations = []models.Destination{}
	}

	return jsonSuccess(c, models.SearchResponse{
		Query:        res.Query,
		Keyword:      res.Keyword,
		Category:     res.Category,
		Matched:      res.Matched,
		Destinations: destinations,
		LocalTime:    view.LocalTime,
		Message:      view.Message,
	})
}
