package planner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/klokku/planner/internal/event_bus"
	"github.com/klokku/planner/internal/utils"
	"github.com/klokku/planner/pkg/canvas"
	"github.com/klokku/planner/pkg/highlights"
	"github.com/klokku/planner/pkg/theme"
	log "github.com/sirupsen/logrus"
)

type Request struct {
	Year  int
	Theme string
}

type Result struct {
	Year         int
	Theme        string
	Pages        int
	Weeks        int
	Destinations int
	Duration     time.Duration
}

type Service interface {
	Generate(ctx context.Context, req Request, w io.Writer) (Result, error)
	Plan(req Request) (*Document, error)
}

type ServiceImpl struct {
	options    Options
	highlights highlights.Set
	metadata   canvas.Metadata
	eventBus   *event_bus.EventBus
	clock      utils.Clock
}

func NewService(options Options, hl highlights.Set, metadata canvas.Metadata, eventBus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		options:    options,
		highlights: hl,
		metadata:   metadata,
		eventBus:   eventBus,
		clock:      clock,
	}
}

// Plan validates the request and plans its document without drawing anything.
func (s *ServiceImpl) Plan(req Request) (*Document, error) {
	if err := ValidateYear(req.Year); err != nil {
		return nil, err
	}
	th, err := theme.Lookup(req.Theme)
	if err != nil {
		return nil, err
	}
	return NewDocument(req.Year, th, s.options, s.highlights)
}

// Generate draws the planner of req.Year and writes the PDF to w. Nothing is
// written when any page fails.
func (s *ServiceImpl) Generate(ctx context.Context, req Request, w io.Writer) (Result, error) {
	start := s.clock.Now()
	doc, err := s.Plan(req)
	if err != nil {
		return Result{}, err
	}
	log.Infof("Generating planner for %d (%d pages, theme %s)", doc.Year, len(doc.Plan), doc.Env.Theme.Name)

	pdf := canvas.NewPDFCanvas(doc.Env.Grid, doc.Manifest, s.documentMetadata(doc.Year))
	err = doc.Render(ctx, pdf, func(p Page) error {
		log.Debugf("Rendered page %d/%d: %s", p.Number, len(doc.Plan), p.Dest)
		return s.publish(ctx, event_bus.PlannerPageRendered, event_bus.PageRendered{
			Year:        doc.Year,
			Page:        p.Number,
			TotalPages:  len(doc.Plan),
			Destination: p.Dest,
			Section:     p.Section,
		})
	})
	if err == nil {
		err = pdf.Finish(w)
	}

	result := Result{
		Year:         doc.Year,
		Theme:        doc.Env.Theme.Name,
		Pages:        pdf.PageCount(),
		Weeks:        doc.Weeks(),
		Destinations: doc.Manifest.Len(),
		Duration:     s.clock.Now().Sub(start),
	}
	finished := event_bus.DocumentFinished{
		Year:     result.Year,
		Pages:    result.Pages,
		Weeks:    result.Weeks,
		Theme:    result.Theme,
		Duration: result.Duration,
		Err:      err,
	}
	if pubErr := s.publish(context.WithoutCancel(ctx), event_bus.PlannerDocumentFinished, finished); pubErr != nil && err == nil {
		err = pubErr
	}
	if err != nil {
		return Result{}, fmt.Errorf("generating planner for %d: %w", doc.Year, err)
	}
	return result, nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, data any) error {
	if s.eventBus == nil {
		return nil
	}
	return s.eventBus.Publish(event_bus.NewEvent(ctx, eventType, data))
}

// documentMetadata fills in the defaults that keep output reproducible: the
// creation date is pinned to the start of the planner year unless configured.
func (s *ServiceImpl) documentMetadata(year int) canvas.Metadata {
	meta := s.metadata
	if meta.Title == "" {
		meta.Title = fmt.Sprintf("Planner %d", year)
	}
	if meta.Creator == "" {
		meta.Creator = "planner"
	}
	if meta.CreationDate.IsZero() {
		meta.CreationDate = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return meta
}
