package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/klokku/planner/pkg/canvas"
	"github.com/klokku/planner/pkg/highlights"
	"github.com/klokku/planner/pkg/pages"
	"github.com/klokku/planner/pkg/theme"
)

const (
	MinYear = 1
	MaxYear = 9999
)

var (
	ErrInvalidYear       = errors.New("invalid year")
	ErrUnknownTheme      = theme.ErrUnknownTheme
	ErrInvalidCollection = errors.New("invalid collection")
)

// Document is a planner ready to be drawn: the page plan, the manifest built
// from it and the environment the renderers share.
type Document struct {
	Year     int
	Plan     []Page
	Manifest *canvas.Manifest
	Env      pages.Env
}

func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidYear, year, MinYear, MaxYear)
	}
	return nil
}

// NewDocument plans the planner of year. Collections without an id get one
// derived from their title.
func NewDocument(year int, th theme.Theme, opts Options, hl highlights.Set) (*Document, error) {
	if err := ValidateYear(year); err != nil {
		return nil, err
	}
	cols := make([]Collection, 0, len(opts.Collections))
	for _, c := range opts.Collections {
		c.Title = strings.TrimSpace(c.Title)
		if c.Title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrInvalidCollection)
		}
		if c.Id == "" {
			c.Id = CollectionId(c.Title)
		}
		cols = append(cols, c)
	}
	opts.Collections = cols

	plan := Plan(year, opts)
	manifest, err := NewManifest(plan)
	if err != nil {
		return nil, err
	}
	return &Document{
		Year:     year,
		Plan:     plan,
		Manifest: manifest,
		Env:      pages.NewEnv(year, th, hl, Tabs(opts)),
	}, nil
}

// Render draws every planned page onto c, placing each page's destination and
// bookmarks before its content. It does not finish the canvas. onPage, when set,
// is called after each page is drawn.
func (d *Document) Render(ctx context.Context, c canvas.Canvas, onPage func(Page) error) error {
	for _, p := range d.Plan {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.NewPage()
		c.AddDestination(p.Dest)
		for _, b := range p.Bookmarks {
			c.AddBookmark(b.Title, b.Level)
		}
		p.draw(c, d.Env)
		if err := c.Err(); err != nil {
			return fmt.Errorf("page %d (%s): %w", p.Number, p.Dest, err)
		}
		if onPage != nil {
			if err := onPage(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// Weeks is the number of week pages in the document.
func (d *Document) Weeks() int {
	return d.Env.TotalWeeks
}
