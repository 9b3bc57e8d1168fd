package api

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/invopop/jsonschema"

	"travelrec/internal/dataset"
	"travelrec/internal/middleware"
	"travelrec/internal/models"
)

// DatasetHandler reports on and reloads the recommendations dataset.
type DatasetHandler struct {
	store *dataset.Store
}

// NewDatasetHandler creates a new API dataset handler.
func NewDatasetHandler(store *dataset.Store) *DatasetHandler {
	return &DatasetHandler{store: store}
}

// Status returns the lifecycle state and per-category counts.
func (h *DatasetHandler) Status(c fiber.Ctx) error {
	return jsonSuccess(c, h.status())
}

// Reload performs an explicit load. A failed reload leaves the dataset
// absent, matching a failed startup load.
func (h *DatasetHandler) Reload(c fiber.Ctx) error {
	subject, _ := c.Locals(middleware.AdminSubjectKey).(string)
	log.Printf("Dataset reload requested by %s", subject)

	if _, err := h.store.Load(c.Context()); err != nil {
		return jsonError(c, fiber.StatusBadGateway, "failed to load recommendations")
	}
	return jsonSuccess(c, h.status())
}

// Schema returns the JSON schema of the recommendations document.
func (h *DatasetHandler) Schema(c fiber.Ctx) error {
	r := &jsonschema.Reflector{DoNotReference: true}
	schema := r.Reflect(&models.DatasetDocument{})
	schema.Title = "Travel recommendations"
	return c.JSON(schema)
}

func (h *DatasetHandler) status() models.DatasetStatusResponse {
	ds := h.store.Snapshot()
	resp := models.DatasetStatusResponse{
		State:  h.store.State().String(),
		Source: h.store.Location(),
		Counts: ds.Counts(),
	}
	if ds != nil {
		loadedAt := ds.LoadedAt
		resp.LoadedAt = &loadedAt
	}
	return resp
}
