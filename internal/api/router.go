package api

import (
	"net/http"
	"round-trip-planner/internal/api/handlers"
	"round-trip-planner/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(optimizer *services.RouteOptimizer, maxStops int) http.Handler {
	mux := http.NewServeMux()

	planner := handlers.NewPlannerHandler(optimizer, maxStops)

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locations", planner.Locations)
	mux.HandleFunc("/route", planner.Route)

	return requestIDMiddleware(loggingMiddleware(mux))
}
