package planner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/klokku/planner/internal/rest"
	"github.com/klokku/planner/pkg/dates"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service          Service
	manifestRenderer ManifestRenderer
}

func NewHandler(service Service, manifestRenderer ManifestRenderer) *Handler {
	return &Handler{service, manifestRenderer}
}

// GetPlanner streams the planner PDF of the year in the path. The theme query
// parameter selects the palette.
func (handler *Handler) GetPlanner(w http.ResponseWriter, r *http.Request) {
	req, ok := parseRequest(w, r)
	if !ok {
		return
	}
	log.Debugf("Generating planner for %d via HTTP", req.Year)

	var buf bytes.Buffer
	result, err := handler.service.Generate(r.Context(), req, &buf)
	if err != nil {
		if writeBadRequest(w, err) {
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", FileName(result.Year)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Errorf("failed to write planner response: %v", err)
	}
}

// GetPages returns the page plan of the year in the path as CSV.
func (handler *Handler) GetPages(w http.ResponseWriter, r *http.Request) {
	req, ok := parseRequest(w, r)
	if !ok {
		return
	}
	doc, err := handler.service.Plan(req)
	if err != nil {
		if writeBadRequest(w, err) {
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	csv, err := handler.manifestRenderer.RenderManifest(doc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csv)); err != nil {
		log.Errorf("failed to write pages response: %v", err)
	}
}

type WeekDTO struct {
	Week        string   `json:"week"`
	Year        int      `json:"year"`
	Number      int      `json:"number"`
	Destination string   `json:"destination"`
	Page        int      `json:"page"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Months      []string `json:"months"`
	Previous    string   `json:"previous,omitempty"`
	Next        string   `json:"next,omitempty"`
}

// GetWeek describes the week page of a "2024-W11" style week: where it sits in
// the planner and which days it covers.
func (handler *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	weekString := mux.Vars(r)["week"]
	week, err := dates.WeekFromString(weekString)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid week", err.Error())
		return
	}
	doc, err := handler.service.Plan(Request{Year: week.Year, Theme: r.URL.Query().Get("theme")})
	if err != nil {
		if writeBadRequest(w, err) {
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !week.Valid() {
		rest.WriteError(w, http.StatusNotFound, "Week not found",
			fmt.Sprintf("%d has weeks 1 to %d", week.Year, doc.Weeks()))
		return
	}
	page, _ := doc.Manifest.Page(week.Destination())

	weekDTO := toWeekDTO(week, page)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(weekDTO); err != nil {
		log.Errorf("failed to write week response: %v", err)
	}
}

func toWeekDTO(week dates.Week, page int) WeekDTO {
	months := make([]string, 0, 2)
	for _, m := range week.Months() {
		months = append(months, m.String())
	}
	dto := WeekDTO{
		Week:        week.String(),
		Year:        week.Year,
		Number:      week.Number,
		Destination: week.Destination(),
		Page:        page,
		Start:       week.Start().Format(time.DateOnly),
		End:         week.End().Format(time.DateOnly),
		Months:      months,
	}
	if prev, ok := week.Previous(); ok {
		dto.Previous = prev.String()
	}
	if next, ok := week.Next(); ok {
		dto.Next = next.String()
	}
	return dto
}

// FileName is the name a generated planner is saved under.
func FileName(year int) string {
	return fmt.Sprintf("planner_%d.pdf", year)
}

func parseRequest(w http.ResponseWriter, r *http.Request) (Request, bool) {
	yearString := mux.Vars(r)["year"]
	year, err := strconv.Atoi(yearString)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid year", "year must be an integer")
		return Request{}, false
	}
	return Request{Year: year, Theme: r.URL.Query().Get("theme")}, true
}

func writeBadRequest(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, ErrInvalidYear):
		rest.WriteError(w, http.StatusBadRequest, "Invalid year", err.Error())
	case errors.Is(err, ErrUnknownTheme):
		rest.WriteError(w, http.StatusBadRequest, "Unknown theme", err.Error())
	default:
		return false
	}
	return true
}
