package event_bus

import "time"

const (
	PlannerPageRendered     EventType = "planner.page.rendered"
	PlannerDocumentFinished EventType = "planner.document.finished"
)

type PageRendered struct {
	Year        int
	Page        int
	TotalPages  int
	Destination string
	Section     string
}

type DocumentFinished struct {
	Year     int
	Pages    int
	Weeks    int
	Theme    string
	Duration time.Duration
	// Err is set when the document could not be written.
	Err error
}
