package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/quic-go/quic-go/http3"
	"github.com/zqrup/esphome-sub000/internal/config"
)

// HTTP3Server runs the admin dashboard's QUIC listener alongside the
// regular TCP one; it shares the handler and certificate with its TCP
// sibling so a client gets the same responses over either transport.
type HTTP3Server struct {
	quic   *http3.Server
	logger *slog.Logger
}

// NewHTTP3Server returns nil when HTTP/3 isn't configured or TLS material
// isn't available yet — QUIC has no cleartext mode to fall back to.
func NewHTTP3Server(cfg *config.Config, handler http.Handler, tlsConfig *tls.Config, logger *slog.Logger) *HTTP3Server {
	if !cfg.Admin.HTTP3 {
		return nil
	}
	if tlsConfig == nil {
		logger.Warn("HTTP/3 requested but no TLS material is available yet")
		return nil
	}

	return &HTTP3Server{
		quic: &http3.Server{
			Addr:      cfg.Admin.Address,
			Handler:   handler,
			TLSConfig: tlsConfig,
		},
		logger: logger,
	}
}

// Start blocks, serving QUIC connections until the listener is closed.
func (s *HTTP3Server) Start() error {
	if s == nil {
		return nil
	}
	s.logger.Info("admin QUIC listener starting", "address", s.quic.Addr)
	return s.quic.ListenAndServe()
}

// Stop closes the QUIC listener; ctx is accepted for symmetry with the TCP
// server's graceful Shutdown but quic-go's Close has no drain phase.
func (s *HTTP3Server) Stop(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.quic.Close()
}

// AltSvcHeader is the value an HTTP/1.1 or HTTP/2 response advertises so
// clients know they can switch to HTTP/3 on the given port.
func AltSvcHeader(port int) string {
	return fmt.Sprintf(`h3=":%d"; ma=86400`, port)
}

// AltSvcMiddleware stamps every response with AltSvcHeader(port).
func AltSvcMiddleware(port int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Alt-Svc", AltSvcHeader(port))
			next.ServeHTTP(w, r)
		})
	}
}
