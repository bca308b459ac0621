package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/VPLOPES/brasil-macro-data/internal/middleware"
)

// requestTimeout bounds one inbound request end to end. It sits above the
// slowest single upstream timeout (30s for BCB) because a summary request
// fans out to several upstreams concurrently, not sequentially.
const requestTimeout = 35 * time.Second

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, Metrics, RateLimiter).
//   - Adds request timeout handling.
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.Metrics(),
		middleware.RateLimiter(),
	)

	// Timeout
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// Swagger and Prometheus
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := router.Group("/api/v1")
	{
		indicators := v1.Group("/indicators")
		{
			indicators.GET("", handler.ListIndicators)
			indicators.GET("/summary", handler.GetAllSummaries)
			indicators.GET("/series", handler.GetMultipleSeries)
			indicators.GET("/:code/summary", handler.GetSummary)
			indicators.GET("/:code/series", handler.GetSeries)
		}

		calculator := v1.Group("/calculator")
		{
			calculator.POST("/correct", handler.Correct)
			calculator.GET("/indices", handler.CorrectionIndices)
		}

		v1.GET("/export/csv", handler.ExportCSV)

		focus := v1.Group("/focus")
		{
			focus.GET("/summary", handler.FocusSummary)
			focus.GET("/:indicator", handler.FocusIndicator)
		}
	}

	return router
}
