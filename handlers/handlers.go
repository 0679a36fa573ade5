package handlers

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"os"

	"github.com/MatBureau/appservice-demo/internal/clock"
	"github.com/MatBureau/appservice-demo/internal/config"
	"github.com/MatBureau/appservice-demo/internal/system"
	"github.com/MatBureau/appservice-demo/web"
)

const (
	Version       = "1.0.0"
	ServiceName   = "python-demo-app"
	Framework     = "chi"
	Language      = "Go"
	StatusMessage = "Hello from Azure App Service with Go and Docker!"
)

// SystemInfo is the source of host snapshots. *system.Collector is the real one.
type SystemInfo interface {
	Collect(ctx context.Context) (*system.Snapshot, error)
}

type Options struct {
	// Lookup reads per-request environment values. Defaults to os.LookupEnv.
	Lookup config.Lookup
	Clock  *clock.Clock
	System SystemInfo
}

// Handlers holds everything the routes read. Nothing in it is mutated after
// New returns, except the clock's own high-water mark.
type Handlers struct {
	settings  config.Settings
	lookup    config.Lookup
	clock     *clock.Clock
	system    SystemInfo
	templates *template.Template
	static    fs.FS
}

func New(settings config.Settings, opts Options) (*Handlers, error) {
	tmpl, err := template.ParseFS(web.TemplatesFS(), "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := web.StaticFS()
	if err != nil {
		return nil, err
	}

	h := &Handlers{
		settings:  settings,
		lookup:    opts.Lookup,
		clock:     opts.Clock,
		system:    opts.System,
		templates: tmpl,
		static:    static,
	}
	if h.lookup == nil {
		h.lookup = os.LookupEnv
	}
	if h.clock == nil {
		h.clock = clock.New()
	}
	if h.system == nil {
		h.system = system.NewCollector()
	}
	return h, nil
}

func (h *Handlers) environment() string {
	return config.EnvironmentName(h.lookup)
}

func (h *Handlers) demoValue() string {
	return config.DemoValue(h.lookup)
}
