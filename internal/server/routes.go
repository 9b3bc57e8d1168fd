package server

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travelrec/internal/config"
	"travelrec/internal/dataset"
	"travelrec/internal/db"
	"travelrec/internal/email"
	"travelrec/internal/handlers"
	"travelrec/internal/handlers/api"
	"travelrec/internal/middleware"
	"travelrec/internal/search"
)

// Deps are the collaborators routes are wired to. DB, Notifier and
// AdminAuth are optional.
type Deps struct {
	Store     *dataset.Store
	DB        *db.DB
	Notifier  *email.Notifier
	AdminAuth *middleware.AdminAuth
	Now       func() time.Time
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, deps Deps) error {
	pipeline := search.NewPipeline(deps.Store)

	var contactStore handlers.ContactStore
	var pinger handlers.Pinger
	if deps.DB != nil {
		contactStore = deps.DB
		pinger = deps.DB
	}

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(pipeline, s.layout, deps.Now)
	pageHandler := handlers.NewPageHandler(s.layout, s.Site, searchHandler)
	contactHandler := handlers.NewContactHandler(contactStore, deps.Notifier, s.layout, s.Site)
	probeHandler := handlers.NewProbeHandler(pinger, deps.Store)

	apiSearchHandler := api.NewSearchHandler(pipeline, deps.Now)
	apiDatasetHandler := api.NewDatasetHandler(deps.Store)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Pages - only home shows the search bar
	s.App.Get("/", pageHandler.Named(config.HomePage))
	s.App.Get("/about", pageHandler.Named("about"))
	s.App.Get("/contact", pageHandler.Named("contact"))
	s.App.Get("/page/:page", pageHandler.Show)

	// Search
	s.App.Get("/search", searchHandler.Search)
	s.App.Get("/search/reset", searchHandler.Reset)

	// Contact form
	s.App.Post("/contact", contactHandler.Submit)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/search", apiSearchHandler.Search)
	apiGroup.Get("/dataset", apiDatasetHandler.Status)
	apiGroup.Get("/schema/dataset", apiDatasetHandler.Schema)

	// Admin API - requires OIDC bearer tokens
	if deps.AdminAuth == nil {
		log.Println("Admin API is disabled. Set ADMIN_OIDC_ISSUER and ADMIN_OIDC_AUDIENCE to enable.")
		return nil
	}

	admin := apiGroup.Group("/admin", deps.AdminAuth.RequireAdmin)
	admin.Post("/dataset/reload", apiDatasetHandler.Reload)
	if deps.DB != nil {
		apiContactHandler := api.NewContactHandler(deps.DB)
		admin.Get("/contact", apiContactHandler.List)
		admin.Get("/contact/:id", apiContactHandler.Get)
	}

	return nil
}
