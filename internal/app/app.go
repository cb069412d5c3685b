package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/klokku/planner/internal/config"
	"github.com/klokku/planner/internal/event_bus"
	"github.com/klokku/planner/internal/utils"
	"github.com/klokku/planner/pkg/planner"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, the planner service and the HTTP server.
type Application struct {
	cfg    config.Application
	deps   *Dependencies
	router *mux.Router
	srv    *http.Server
}

// NewApplication loads the configuration at configPath and builds the
// application, ready to Generate or Run.
func NewApplication(configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return newApplication(cfg)
}

func newApplication(cfg config.Application) (*Application, error) {
	deps, err := BuildDependencies(cfg)
	if err != nil {
		return nil, err
	}
	subscribeProgress(deps.EventBus)

	r := mux.NewRouter()
	SetupMiddleware(r, deps)
	RegisterRoutes(r, deps)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Server.Addr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, deps: deps, router: r, srv: srv}, nil
}

// Generate writes the planner of year to <outputdir>/planner_<year>.pdf. A year
// of 0 falls back to the configured year, then to the current one. The file is
// only replaced once the whole document has been written.
func (a *Application) Generate(ctx context.Context, year int) (planner.Result, string, error) {
	if year == 0 {
		year = a.cfg.Year
	}
	year = utils.YearOrCurrent(a.deps.Clock, year)
	if err := planner.ValidateYear(year); err != nil {
		return planner.Result{}, "", err
	}

	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return planner.Result{}, "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(a.cfg.OutputDir, planner.FileName(year))
	tmp, err := os.CreateTemp(a.cfg.OutputDir, ".planner-*.pdf")
	if err != nil {
		return planner.Result{}, "", fmt.Errorf("creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	result, err := a.deps.PlannerService.Generate(ctx, planner.Request{Year: year, Theme: a.cfg.Theme}, tmp)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing %s: %w", tmp.Name(), closeErr)
	}
	if err != nil {
		return planner.Result{}, "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return planner.Result{}, "", fmt.Errorf("moving planner into place: %w", err)
	}
	return result, path, nil
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}

func subscribeProgress(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped(bus, event_bus.PlannerPageRendered, func(e event_bus.EventT[event_bus.PageRendered]) error {
		log.WithFields(log.Fields{
			"year":    e.Data.Year,
			"section": e.Data.Section,
		}).Debugf("page %d/%d %s", e.Data.Page, e.Data.TotalPages, e.Data.Destination)
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.PlannerDocumentFinished, func(e event_bus.EventT[event_bus.DocumentFinished]) error {
		entry := log.WithFields(log.Fields{
			"year":     e.Data.Year,
			"theme":    e.Data.Theme,
			"pages":    e.Data.Pages,
			"weeks":    e.Data.Weeks,
			"duration": e.Data.Duration,
		})
		if e.Data.Err != nil {
			entry.WithError(e.Data.Err).Errorf("Failed to generate planner for %d", e.Data.Year)
			return nil
		}
		entry.Infof("Generated planner for %d", e.Data.Year)
		return nil
	})
}
