// Package theme holds the color palettes a planner can be rendered with.
// A theme never changes geometry.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/klokku/planner/pkg/canvas"
)

var ErrUnknownTheme = errors.New("unknown theme")

const DefaultName = "light"

type Theme struct {
	Name            string
	Text            canvas.Color
	Muted           canvas.Color
	Lines           canvas.Color
	Dots            canvas.Color
	Accent          canvas.Color
	WeekendFill     canvas.Color
	PlaceholderFill canvas.Color
	HighlightFill   canvas.Color
	TabFill         canvas.Color
	TabText         canvas.Color
}

var builtin = map[string]Theme{
	"light": {
		Name:            "light",
		Text:            canvas.Color{R: 33, G: 33, B: 33},
		Muted:           canvas.Color{R: 120, G: 120, B: 120},
		Lines:           canvas.Color{R: 190, G: 190, B: 190},
		Dots:            canvas.Color{R: 170, G: 170, B: 170},
		Accent:          canvas.Color{R: 52, G: 101, B: 164},
		WeekendFill:     canvas.Color{R: 243, G: 243, B: 243},
		PlaceholderFill: canvas.Color{R: 225, G: 225, B: 225},
		HighlightFill:   canvas.Color{R: 255, G: 236, B: 179},
		TabFill:         canvas.Color{R: 232, G: 238, B: 246},
		TabText:         canvas.Color{R: 52, G: 101, B: 164},
	},
	"earth": {
		Name:            "earth",
		Text:            canvas.Color{R: 62, G: 48, B: 36},
		Muted:           canvas.Color{R: 140, G: 120, B: 100},
		Lines:           canvas.Color{R: 205, G: 190, B: 170},
		Dots:            canvas.Color{R: 185, G: 170, B: 150},
		Accent:          canvas.Color{R: 128, G: 90, B: 50},
		WeekendFill:     canvas.Color{R: 246, G: 240, B: 230},
		PlaceholderFill: canvas.Color{R: 228, G: 218, B: 204},
		HighlightFill:   canvas.Color{R: 214, G: 230, B: 196},
		TabFill:         canvas.Color{R: 238, G: 228, B: 212},
		TabText:         canvas.Color{R: 128, G: 90, B: 50},
	},
	"ocean": {
		Name:            "ocean",
		Text:            canvas.Color{R: 20, G: 40, B: 60},
		Muted:           canvas.Color{R: 90, G: 120, B: 140},
		Lines:           canvas.Color{R: 170, G: 195, B: 210},
		Dots:            canvas.Color{R: 150, G: 180, B: 200},
		Accent:          canvas.Color{R: 0, G: 105, B: 140},
		WeekendFill:     canvas.Color{R: 234, G: 244, B: 248},
		PlaceholderFill: canvas.Color{R: 210, G: 225, B: 232},
		HighlightFill:   canvas.Color{R: 255, G: 224, B: 204},
		TabFill:         canvas.Color{R: 220, G: 236, B: 244},
		TabText:         canvas.Color{R: 0, G: 105, B: 140},
	},
}

// Lookup returns the named theme. An empty name selects the default.
func Lookup(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default(), nil
	}
	t, ok := builtin[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Default returns the light theme.
func Default() Theme {
	return builtin[DefaultName]
}

// Names returns the built-in theme names sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
