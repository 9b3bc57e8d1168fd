package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"travelrec/internal/dataset"
)

// Pinger checks a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	db    Pinger
	store *dataset.Store
}

// NewProbeHandler creates a new probe handler. db may be nil when no database is configured.
func NewProbeHandler(database Pinger, store *dataset.Store) *ProbeHandler {
	return &ProbeHandler{db: database, store: store}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint. An absent dataset is a valid
// serving state and is only reported; an unreachable database is not.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	datasetState := h.store.State().String()

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "error",
				"error":   "database unavailable",
				"dataset": datasetState,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"dataset": datasetState,
	})
}
