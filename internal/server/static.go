package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// dashboardHandler serves the admin dashboard's static bundle out of a
// directory, falling back to index.html for any path that doesn't resolve
// to a real file so a single-page dashboard can own client-side routing.
type dashboardHandler struct {
	root         string
	cacheControl string
	fileServer   http.Handler
}

// newDashboardHandler builds a handler rooted at dir; cacheControl is
// applied to every response, empty meaning "don't set the header".
func newDashboardHandler(dir, cacheControl string) *dashboardHandler {
	return &dashboardHandler{
		root:         dir,
		cacheControl: cacheControl,
		fileServer:   http.FileServer(http.Dir(dir)),
	}
}

func (h *dashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.cacheControl != "" {
		w.Header().Set("Cache-Control", h.cacheControl)
	}

	path := filepath.Join(h.root, filepath.Clean(r.URL.Path))
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		h.serveIndex(w, r)
		return
	}
	h.fileServer.ServeHTTP(w, r)
}

func (h *dashboardHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(h.root, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
