package server

import (
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// EnableHTTP2 arranges for srv to speak HTTP/2. Under TLS this is already
// automatic via ALPN, so the only real work here is wrapping the handler in
// h2c for the cleartext case the admin server uses during local
// development, where ACME-issued certs aren't available.
func EnableHTTP2(srv *http.Server, useTLS bool) error {
	if useTLS {
		return nil
	}
	srv.Handler = h2c.NewHandler(srv.Handler, &http2.Server{})
	return nil
}
