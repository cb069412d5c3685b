package app

import (
	"fmt"

	"github.com/klokku/planner/internal/config"
	"github.com/klokku/planner/internal/event_bus"
	"github.com/klokku/planner/internal/utils"
	"github.com/klokku/planner/pkg/canvas"
	"github.com/klokku/planner/pkg/highlights"
	"github.com/klokku/planner/pkg/planner"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	PlannerService   *planner.ServiceImpl
	ManifestRenderer *planner.CsvManifestRendererImpl
	PlannerHandler   *planner.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	hl, err := highlights.Parse(highlightSpecs(cfg.Highlights))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	created, err := cfg.Document.CreationTime()
	if err != nil {
		return nil, fmt.Errorf("config: document.creationdate: %w", err)
	}
	meta := canvas.Metadata{
		Title:        cfg.Document.Title,
		Author:       cfg.Document.Author,
		Subject:      "Bullet journal planner",
		CreationDate: created,
		Compress:     cfg.Document.Compress,
	}

	deps.PlannerService = planner.NewService(plannerOptions(cfg), hl, meta, deps.EventBus, deps.Clock)
	deps.ManifestRenderer = planner.NewCsvManifestRenderer()
	deps.PlannerHandler = planner.NewHandler(deps.PlannerService, deps.ManifestRenderer)

	return deps, nil
}

func plannerOptions(cfg config.Application) planner.Options {
	opts := planner.Options{
		IndexPages:     cfg.Pages.IndexPages,
		FutureLogPages: cfg.Pages.FutureLogPages,
		Quarterly:      cfg.Pages.Quarterly,
		Reviews:        cfg.Pages.Reviews,
	}
	for _, c := range cfg.Collections {
		opts.Collections = append(opts.Collections, planner.Collection{Id: c.Id, Title: c.Title})
	}
	return opts
}

func highlightSpecs(in []config.Highlight) []highlights.Spec {
	specs := make([]highlights.Spec, 0, len(in))
	for _, h := range in {
		specs = append(specs, highlights.Spec{Title: h.Title, Start: h.Start, End: h.End})
	}
	return specs
}
