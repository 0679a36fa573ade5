package handlers

import (
	"bytes"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MatBureau/appservice-demo/internal/system"
)

type homePage struct {
	Timestamp   string
	Environment string
	DemoValue   string
	Version     string
	System      *system.Snapshot
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	snap, err := h.system.Collect(r.Context())
	if err != nil {
		InternalError(w, r, err)
		return
	}

	page := homePage{
		Timestamp:   h.clock.Timestamp(),
		Environment: h.environment(),
		DemoValue:   h.demoValue(),
		Version:     Version,
		System:      snap,
	}

	// Render fully before writing so a template error can still become a 500.
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "index.html", page); err != nil {
		InternalError(w, r, fmt.Errorf("render home page: %w", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// staticFiles serves regular files from the embedded static tree. Anything
// else, directories included, gets the JSON 404.
func (h *Handlers) staticFiles() http.HandlerFunc {
	fsys := h.static
	fileServer := http.StripPrefix("/static/", http.FileServerFS(fsys))

	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		info, err := fs.Stat(fsys, name)
		if name == "" || err != nil || info.IsDir() {
			NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	}
}
