package app

import (
	"github.com/gin-gonic/gin"

	"github.com/VPLOPES/brasil-macro-data/config"
	"github.com/VPLOPES/brasil-macro-data/internal/api"
	"github.com/VPLOPES/brasil-macro-data/internal/catalog"
	"github.com/VPLOPES/brasil-macro-data/internal/service"
	"github.com/VPLOPES/brasil-macro-data/internal/source"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the immutable indicator catalog.
//   - Creates the upstream clients (BCB, SIDRA, Focus) from configuration.
//   - Initializes the service layer (aggregation, calculation, Focus).
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Immutable indicator catalog, built once and injected everywhere
	cat := catalog.New()

	// Upstream clients, each with its own bounded timeout
	bcb := source.NewBCBClient(cfg.Upstream.BCBBaseURL, cfg.Upstream.BCBTimeout)
	sidra := source.NewSidraClient(cfg.Upstream.SidraBaseURL, cfg.Upstream.SidraTimeout)
	focus := source.NewFocusClient(cfg.Upstream.FocusBaseURL, cfg.Upstream.FocusTimeout)

	// Service layer (aggregation and calculation core)
	indicators := service.NewIndicatorService(cat, bcb, sidra)
	focusSvc := service.NewFocusService(focus)

	// HTTP handler layer
	handler := api.NewHandler(indicators, focusSvc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(bcb.Ping)
	healthHandler.Register(router)

	// No pooled resources to release; cleanup is kept for symmetry with
	// the shutdown path in main.
	cleanup := func() {}

	return router, cleanup, nil
}
