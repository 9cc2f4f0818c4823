package main

import (
	"log/slog"
	"net/http"

	"area-profile/internal/cache"
	"area-profile/internal/config"
	"area-profile/internal/observability"
	"area-profile/internal/profile"

	"github.com/gin-gonic/gin"

	_ "area-profile/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	profileService profile.Service
	metrics        *observability.Metrics
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// One HTTP client shared by every adapter: a single per-request timeout
	// and a 24 h response cache in front of all upstream sources.
	httpClient := &http.Client{
		Timeout: cfg.SourceTimeout(),
		Transport: cache.NewTransport(userAgentRoundTripper{
			agent: cfg.App.UserAgent,
			inner: http.DefaultTransport,
		}, cfg.CacheTTL()),
	}

	metrics := observability.NewMetrics()

	app := &App{
		router:         router,
		logger:         logger,
		profileService: profile.NewService(httpClient, metrics, logger),
		metrics:        metrics,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// userAgentRoundTripper stamps the configured User-Agent on every outbound
// request. Some open-data sources throttle anonymous client defaults.
type userAgentRoundTripper struct {
	agent string
	inner http.RoundTripper
}

func (u userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", u.agent)
	return u.inner.RoundTrip(req)
}
