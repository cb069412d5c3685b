package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {
	r.HandleFunc("/planner/{year}.pdf", deps.PlannerHandler.GetPlanner).Methods("GET")
	r.HandleFunc("/planner/{year}/pages.csv", deps.PlannerHandler.GetPages).Methods("GET")
	r.HandleFunc("/planner/weeks/{week}", deps.PlannerHandler.GetWeek).Methods("GET")
}
