package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/zqrup/esphome-sub000/internal/apiserver"
)

var startTime = time.Now()

// HealthHandler serves health check and readiness endpoints.
type HealthHandler struct {
	apiServer *apiserver.Server
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(s *apiserver.Server) *HealthHandler {
	return &HealthHandler{apiServer: s}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/ready", "/readyz":
		h.readiness(w)
	default:
		h.liveness(w)
	}
}

func (h *HealthHandler) liveness(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(startTime).String(),
	})
}

// readiness always reports the device-API server ready, regardless of how
// many clients are currently connected; it does not check whether the
// server holds a listening socket.
func (h *HealthHandler) readiness(w http.ResponseWriter) {
	stats := h.apiServer.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":         "ready",
		"uptime":         time.Since(startTime).String(),
		"uptime_seconds": time.Since(startTime).Seconds(),
		"connections": map[string]interface{}{
			"active": stats.ActiveConnections,
			"total":  stats.TotalConnections,
		},
		"memory": map[string]interface{}{
			"alloc_mb":  mem.Alloc / 1024 / 1024,
			"sys_mb":    mem.Sys / 1024 / 1024,
			"gc_cycles": mem.NumGC,
		},
		"go_version": runtime.Version(),
		"goroutines": runtime.NumGoroutine(),
	})
}
