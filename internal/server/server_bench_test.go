package server

import (
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func benchLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func BenchmarkCompressionMiddleware(b *testing.B) {
	bodies := map[string]string{
		"small": "<h1>Hello</h1>",
		"large": strings.Repeat("<p>This is a paragraph of text that should be compressed.</p>\n", 200),
	}

	for name, body := range bodies {
		body := body
		b.Run(name, func(b *testing.B) {
			handler := CompressionMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.Write([]byte(body))
			}))

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				req := httptest.NewRequest("GET", "/", nil)
				req.Header.Set("Accept-Encoding", "gzip")
				handler.ServeHTTP(httptest.NewRecorder(), req)
			}
		})
	}

	b.Run("ineligible_content_type", func(b *testing.B) {
		handler := CompressionMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte(strings.Repeat("x", 2000)))
		}))

		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			handler.ServeHTTP(httptest.NewRecorder(), req)
		}
	})
}

func BenchmarkRequestIDMiddleware(b *testing.B) {
	handler := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger := benchLogger()
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("OK"))
	}))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}

func BenchmarkEarlyHintsMiddleware(b *testing.B) {
	handler := EarlyHintsMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Link", "</style.css>; rel=preload; as=style")
		w.Header().Add("Link", "</app.js>; rel=preload; as=script")
		w.WriteHeader(200)
		w.Write([]byte("OK"))
	}))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}

func BenchmarkAltSvcMiddleware(b *testing.B) {
	handler := AltSvcMiddleware(9443)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}

func BenchmarkCoreMiddlewareStack(b *testing.B) {
	logger := benchLogger()
	body := strings.Repeat("<div>Content block</div>\n", 100)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(body))
	})

	wrapped := CoreMiddleware(logger)(handler)
	wrapped = CompressionMiddleware()(wrapped)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		wrapped.ServeHTTP(httptest.NewRecorder(), req)
	}
}

func BenchmarkGzipWriterReuse(b *testing.B) {
	data := []byte(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 500))

	b.ResetTimer()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		w, _ := gzip.NewWriterLevel(io.Discard, gzip.DefaultCompression)
		w.Write(data)
		w.Close()
	}
}

func BenchmarkHealthEndpoint(b *testing.B) {
	req := httptest.NewRequest("GET", "/health", nil)
	handler := NewHealthHandler(nil)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}
