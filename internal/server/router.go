package server

import (
	"log/slog"
	"net/http"

	"github.com/zqrup/esphome-sub000/internal/apiserver"
	"github.com/zqrup/esphome-sub000/internal/config"
	"github.com/zqrup/esphome-sub000/internal/websocket"
)

// Router dispatches incoming admin HTTP requests: health/readiness checks,
// the Prometheus metrics endpoint (wired in by Server via Metrics.Middleware),
// the read-only event-stream feed, and the dashboard's static assets.
type Router struct {
	cfg           *config.Config
	logger        *slog.Logger
	static        http.Handler
	eventsHandler http.Handler
	healthHandler *HealthHandler
}

// NewRouter creates a new request router.
func NewRouter(cfg *config.Config, apiServer *apiserver.Server, wsHandler http.Handler, logger *slog.Logger) *Router {
	r := &Router{
		cfg:           cfg,
		logger:        logger,
		eventsHandler: wsHandler,
		healthHandler: NewHealthHandler(apiServer),
	}

	if cfg.Admin.StaticDir != "" {
		r.static = newDashboardHandler(cfg.Admin.StaticDir, cfg.Admin.CacheControl)
	}

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	switch req.URL.Path {
	case "/health", "/healthz", "/ready", "/readyz":
		r.healthHandler.ServeHTTP(w, req)
		return
	case "/events":
		r.eventsHandler.ServeHTTP(w, req)
		return
	}

	if r.static != nil {
		r.static.ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}
