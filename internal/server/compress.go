package server

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// gzipCompressThreshold is the smallest response body CompressionMiddleware
// will bother compressing; below this the gzip framing overhead isn't worth
// paying for a dashboard JSON blob or a tiny health check.
const gzipCompressThreshold = 1024

var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		w, _ := gzip.NewWriterLevel(io.Discard, gzip.DefaultCompression)
		return w
	},
}

// CompressionMiddleware gzip-encodes eligible admin responses on the fly.
// Eligibility is decided from the response's own Content-Type once the
// handler has written enough bytes to clear gzipCompressThreshold, so a
// short error response never pays the compression cost.
func CompressionMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer gw.finish()

			next.ServeHTTP(gw, r)
		})
	}
}

// gzipResponseWriter buffers the response until it can decide whether the
// content type is compressible and the body clears gzipCompressThreshold;
// once committed it streams straight into a pooled gzip.Writer.
type gzipResponseWriter struct {
	http.ResponseWriter
	buf         []byte
	gz          *gzip.Writer
	headerSent  bool
	compressing bool
}

func (gw *gzipResponseWriter) eligible() bool {
	ct := gw.Header().Get("Content-Type")
	if ct == "" || gw.Header().Get("Content-Encoding") != "" {
		return false
	}
	ct = strings.ToLower(ct)
	switch {
	case strings.HasPrefix(ct, "text/"):
		return true
	case strings.Contains(ct, "application/json"),
		strings.Contains(ct, "application/javascript"),
		strings.Contains(ct, "application/xml"),
		strings.Contains(ct, "application/xhtml"),
		strings.Contains(ct, "image/svg+xml"):
		return true
	default:
		return false
	}
}

func (gw *gzipResponseWriter) WriteHeader(code int) {
	if gw.headerSent {
		return
	}
	gw.headerSent = true
	if gw.eligible() && len(gw.buf) >= gzipCompressThreshold {
		gw.begin()
	}
	gw.ResponseWriter.WriteHeader(code)
}

func (gw *gzipResponseWriter) Write(b []byte) (int, error) {
	if gw.compressing {
		return gw.gz.Write(b)
	}

	gw.buf = append(gw.buf, b...)
	if !gw.headerSent && len(gw.buf) >= gzipCompressThreshold && gw.eligible() {
		gw.begin()
		gw.headerSent = true
		gw.ResponseWriter.WriteHeader(http.StatusOK)
		return gw.gz.Write(gw.buf)
	}
	return len(b), nil
}

func (gw *gzipResponseWriter) begin() {
	gw.Header().Set("Content-Encoding", "gzip")
	gw.Header().Set("Vary", "Accept-Encoding")
	gw.Header().Del("Content-Length")
	gw.compressing = true

	gz := gzipWriterPool.Get().(*gzip.Writer)
	gz.Reset(gw.ResponseWriter)
	gw.gz = gz
}

// finish flushes whatever the handler wrote: either closes the gzip stream
// back into the pool, or — for bodies that never crossed the threshold —
// writes the buffered bytes through uncompressed.
func (gw *gzipResponseWriter) finish() {
	if gw.compressing {
		gw.gz.Close()
		gzipWriterPool.Put(gw.gz)
		return
	}
	if len(gw.buf) == 0 {
		return
	}
	if !gw.headerSent {
		gw.ResponseWriter.WriteHeader(http.StatusOK)
	}
	gw.ResponseWriter.Write(gw.buf)
}
