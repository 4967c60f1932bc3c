package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// handleApp serves the built app from the configured directory. Unknown
// paths without a file extension fall back to index.html so client-side
// routes resolve.
func (s *Server) handleApp(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	dir := s.cfg.Serve.Dir

	reqPath := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/"))
	if reqPath == "." || reqPath == "/" {
		reqPath = "index.html"
	}
	// Clean above collapses traversal, but reject anything that still
	// escapes the root.
	if strings.HasPrefix(reqPath, "..") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	full := filepath.Join(dir, reqPath)
	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		http.ServeFile(w, r, full)
		return
	}

	// SPA fallback: route-like paths get index.html, asset-like paths 404
	if filepath.Ext(reqPath) == "" {
		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err == nil {
			http.ServeFile(w, r, index)
			return
		}
	}

	http.Error(w, "Not found", http.StatusNotFound)
}
