// Package server implements the admin HTTP surface: health/readiness
// checks, Prometheus metrics, and a read-only WebSocket event feed for
// operators — entirely separate from the device-control socket that
// internal/apiserver owns.
package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/zqrup/esphome-sub000/internal/apiserver"
	"github.com/zqrup/esphome-sub000/internal/config"
	"github.com/zqrup/esphome-sub000/internal/websocket"
)

// Server is the admin HTTP server.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	http    *http.Server
	router  *Router
	metrics *Metrics
	wsMgr   *websocket.Manager

	acmeRedirect *http.Server
	http3        *HTTP3Server
}

// New creates a new admin server fronting apiServer's stats and events.
func New(cfg *config.Config, apiServer *apiserver.Server, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	s.wsMgr = websocket.NewManager(logger)
	wsHandler := websocket.NewHandler(s.wsMgr, logger)

	s.metrics = NewMetrics(apiServer)
	s.router = NewRouter(cfg, apiServer, wsHandler, logger)

	s.http = &http.Server{
		Addr:         cfg.Admin.Address,
		Handler:      s.buildMiddleware(s.router),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Events returns the manager whose BroadcastEvent pushes entity/connection
// notifications to every subscribed dashboard client.
func (s *Server) Events() *websocket.Manager { return s.wsMgr }

// Start begins listening for HTTP connections.
func (s *Server) Start() error {
	s.logger.Info("admin server starting",
		"address", s.cfg.Admin.Address,
		"tls", s.cfg.Admin.TLS.Auto,
		"http3", s.cfg.Admin.HTTP3,
	)

	if s.cfg.Admin.TLS.Auto || (s.cfg.Admin.TLS.Cert != "" && s.cfg.Admin.TLS.Key != "") {
		return s.startTLS()
	}
	if s.cfg.Admin.HTTP2 {
		if err := EnableHTTP2(s.http, false); err != nil {
			return fmt.Errorf("enabling h2c: %w", err)
		}
	}
	return s.http.ListenAndServe()
}

// Stop gracefully shuts down the server, including the ACME HTTP-01
// redirect listener if startACME started one.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("admin server shutting down")
	if s.acmeRedirect != nil {
		_ = s.acmeRedirect.Shutdown(ctx)
	}
	if s.http3 != nil {
		_ = s.http3.Stop(ctx)
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) startTLS() error {
	if s.cfg.Admin.TLS.Cert != "" && s.cfg.Admin.TLS.Key != "" {
		return s.http.ListenAndServeTLS(s.cfg.Admin.TLS.Cert, s.cfg.Admin.TLS.Key)
	}

	if !s.cfg.Admin.TLS.Auto {
		return fmt.Errorf("TLS enabled but no cert/key provided and auto-TLS is disabled")
	}

	if len(s.cfg.Admin.TLS.ACME.Domains) > 0 {
		return s.startACME()
	}

	s.logger.Warn("auto-TLS: using self-signed certificate for development")

	cert, key, err := generateSelfSignedCert()
	if err != nil {
		return fmt.Errorf("generating self-signed cert: %w", err)
	}

	tlsCert, err := tls.X509KeyPair(cert, key)
	if err != nil {
		return fmt.Errorf("parsing self-signed cert: %w", err)
	}

	s.http.TLSConfig = &tls.Config{
		Certificates: []tls.Certificate{tlsCert},
		MinVersion:   tls.VersionTLS12,
	}

	s.startHTTP3(s.http.TLSConfig)
	return s.http.ListenAndServeTLS("", "")
}

// startACME fronts the admin server with Let's Encrypt certificates issued
// on demand, plus an HTTP-01 challenge/redirect listener on :80 when the
// config asks for one.
func (s *Server) startACME() error {
	tlsConfig, redirectSrv, err := SetupACME(s.cfg, s.logger)
	if err != nil {
		return fmt.Errorf("setting up ACME: %w", err)
	}
	if redirectSrv != nil {
		s.acmeRedirect = redirectSrv
	}
	s.http.TLSConfig = tlsConfig
	s.startHTTP3(tlsConfig)
	return s.http.ListenAndServeTLS("", "")
}

// startHTTP3 launches the QUIC listener alongside the TCP one when the
// config asks for HTTP/3; it shares the same handler and TLS material as
// the TCP server, so either transport serves an identical response.
func (s *Server) startHTTP3(tlsConfig *tls.Config) {
	s.http3 = NewHTTP3Server(s.cfg, s.http.Handler, tlsConfig, s.logger)
	if s.http3 == nil {
		return
	}
	go func() {
		if err := s.http3.Start(); err != nil {
			s.logger.Error("HTTP/3 listener stopped", "error", err)
		}
	}()
}

// altSvcPort extracts the port the Alt-Svc header should advertise from the
// admin listener's configured address.
func altSvcPort(addr string) int {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0
	}
	var port int
	fmt.Sscanf(portStr, "%d", &port)
	return port
}

func (s *Server) buildMiddleware(handler http.Handler) http.Handler {
	// CoreMiddleware collapses Recovery + RequestID + EarlyHints + Logging
	// into a single handler with one pooled response writer and one context value.
	handler = CoreMiddleware(s.logger)(handler)

	if s.cfg.Metrics.Enabled {
		handler = s.metrics.Middleware(s.cfg.Metrics.Path)(handler)
	}

	if s.cfg.Admin.HTTP3 {
		handler = AltSvcMiddleware(altSvcPort(s.cfg.Admin.Address))(handler)
	}

	// Compression is outermost (wraps everything including metrics)
	handler = CompressionMiddleware()(handler)

	return handler
}
