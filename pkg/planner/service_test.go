package planner

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/klokku/planner/internal/event_bus"
	"github.com/klokku/planner/internal/utils"
	"github.com/klokku/planner/pkg/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(bus *event_bus.EventBus) *ServiceImpl {
	clock := &utils.MockClock{}
	clock.SetNow(time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC))
	return NewService(Options{}, nil, canvas.Metadata{Author: "tests"}, bus, clock)
}

func TestGenerate(t *testing.T) {
	bus := event_bus.NewEventBus()
	var rendered []event_bus.PageRendered
	event_bus.SubscribeTyped(bus, event_bus.PlannerPageRendered, func(e event_bus.EventT[event_bus.PageRendered]) error {
		rendered = append(rendered, e.Data)
		return nil
	})
	var finished []event_bus.DocumentFinished
	event_bus.SubscribeTyped(bus, event_bus.PlannerDocumentFinished, func(e event_bus.EventT[event_bus.DocumentFinished]) error {
		finished = append(finished, e.Data)
		return nil
	})
	service := newTestService(bus)

	var buf bytes.Buffer
	result, err := service.Generate(context.Background(), Request{Year: 2024, Theme: "ocean"}, &buf)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, 2024, result.Year)
	assert.Equal(t, "ocean", result.Theme)
	assert.Equal(t, 3+53+2, result.Pages)
	assert.Equal(t, 53, result.Weeks)
	assert.Equal(t, result.Pages, result.Destinations)

	require.Len(t, rendered, result.Pages)
	assert.Equal(t, "seasonal", rendered[0].Destination)
	assert.Equal(t, "dots", rendered[len(rendered)-1].Destination)
	assert.Equal(t, result.Pages, rendered[10].TotalPages)
	require.Len(t, finished, 1)
	assert.NoError(t, finished[0].Err)
	assert.Equal(t, result.Pages, finished[0].Pages)
}

func TestGenerateIsReproducible(t *testing.T) {
	service := newTestService(nil)
	var first, second bytes.Buffer
	_, err := service.Generate(context.Background(), Request{Year: 2025}, &first)
	require.NoError(t, err)
	// crosses a second boundary so a wall-clock timestamp would show up
	time.Sleep(1100 * time.Millisecond)
	_, err = service.Generate(context.Background(), Request{Year: 2025}, &second)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()))
}

func TestGeneratePinsDocumentDates(t *testing.T) {
	clock := &utils.MockClock{}
	clock.SetNow(time.Date(2026, time.October, 19, 6, 36, 17, 0, time.UTC))
	service := NewService(Options{}, nil, canvas.Metadata{}, nil, clock)

	var buf bytes.Buffer
	_, err := service.Generate(context.Background(), Request{Year: 2025}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "/CreationDate (D:20250101000000")
	assert.Contains(t, out, "/ModDate (D:20250101000000")
	assert.NotContains(t, out, "D:2026")
}

func TestGenerateRejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "year zero", req: Request{Year: 0}, wantErr: ErrInvalidYear},
		{name: "negative year", req: Request{Year: -5}, wantErr: ErrInvalidYear},
		{name: "five digit year", req: Request{Year: 10000}, wantErr: ErrInvalidYear},
		{name: "unknown theme", req: Request{Year: 2024, Theme: "neon"}, wantErr: ErrUnknownTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := newTestService(nil).Generate(context.Background(), tt.req, &buf)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, buf.Len())
		})
	}
}

func TestGenerateWritesNothingWhenCancelled(t *testing.T) {
	bus := event_bus.NewEventBus()
	var finished []event_bus.DocumentFinished
	event_bus.SubscribeTyped(bus, event_bus.PlannerDocumentFinished, func(e event_bus.EventT[event_bus.DocumentFinished]) error {
		finished = append(finished, e.Data)
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := newTestService(bus).Generate(ctx, Request{Year: 2024}, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
	require.Len(t, finished, 1)
	assert.ErrorIs(t, finished[0].Err, context.Canceled)
}

func TestDocumentMetadataDefaults(t *testing.T) {
	meta := newTestService(nil).documentMetadata(2031)
	assert.Equal(t, "Planner 2031", meta.Title)
	assert.Equal(t, "tests", meta.Author)
	assert.Equal(t, time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC), meta.CreationDate)
}
