package server

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/zqrup/esphome-sub000/internal/config"
	"golang.org/x/crypto/acme"
	"golang.org/x/crypto/acme/autocert"
)

const defaultACMECacheDir = "/var/lib/esphome-sub000/certs"

// NewACMEManager builds an autocert.Manager for the admin dashboard's TLS
// listener, scoped to exactly the domains the config names (autocert
// refuses to issue for anything outside HostWhitelist).
func NewACMEManager(cfg *config.ACMEConfig, logger *slog.Logger) (*autocert.Manager, error) {
	if cfg.Email == "" {
		return nil, fmt.Errorf("admin.tls.acme.email is required")
	}
	if len(cfg.Domains) == 0 {
		return nil, fmt.Errorf("admin.tls.acme.domains is required")
	}

	cacheDir := cfg.CacheDir
	if cacheDir == "" {
		cacheDir = defaultACMECacheDir
	}
	if err := os.MkdirAll(cacheDir, 0700); err != nil {
		return nil, fmt.Errorf("creating ACME cert cache dir %s: %w", cacheDir, err)
	}

	manager := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Email:      cfg.Email,
		HostPolicy: autocert.HostWhitelist(cfg.Domains...),
		Cache:      autocert.DirCache(cacheDir),
	}

	if cfg.Staging {
		manager.Client = &acme.Client{DirectoryURL: "https://acme-staging-v02.api.letsencrypt.org/directory"}
		logger.Info("admin TLS: using Let's Encrypt staging directory", "domains", cfg.Domains)
	}

	return manager, nil
}

// HTTPRedirectServer answers plain HTTP on addr with a 301 to the HTTPS
// equivalent of every request, except ACME HTTP-01 challenge paths, which
// manager intercepts so Let's Encrypt can verify domain ownership.
func HTTPRedirectServer(addr string, manager *autocert.Manager, logger *slog.Logger) *http.Server {
	redirect := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target := "https://" + r.Host + r.URL.Path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	})

	srv := &http.Server{Addr: addr, Handler: manager.HTTPHandler(redirect)}
	go func() {
		logger.Info("starting ACME HTTP-01 / redirect listener", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("ACME redirect listener stopped", "error", err)
		}
	}()
	return srv
}

// SetupACME wires up automatic certificate issuance for the admin
// dashboard's TLS listener and, when configured, a companion HTTP-01
// challenge/redirect server on :80.
func SetupACME(cfg *config.Config, logger *slog.Logger) (*tls.Config, *http.Server, error) {
	manager, err := NewACMEManager(&cfg.Admin.TLS.ACME, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("building ACME manager: %w", err)
	}

	tlsConfig := &tls.Config{
		GetCertificate: manager.GetCertificate,
		MinVersion:     tls.VersionTLS12,
	}

	var redirect *http.Server
	if cfg.Admin.HTTPRedirect {
		redirect = HTTPRedirectServer(":80", manager, logger)
	}

	return tlsConfig, redirect, nil
}
