package main

import (
	"log"
	"net/http"
	"round-trip-planner/internal/adapters/distance"
	"round-trip-planner/internal/api"
	"round-trip-planner/internal/config"
	"round-trip-planner/internal/services"
	"time"
)

// main is the application composition root.
// It wires the haversine provider into one in-memory optimizer and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Stops live only as long as the process.
	optimizer, err := services.NewRouteOptimizer(distance.NewHaversineDistanceProvider(), cfg.RouteSelection())
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(optimizer, cfg.MaxStops)

	log.Printf("Server listening addr=:%s selection=%s max_stops=%d", cfg.Port, cfg.RouteSelection(), cfg.MaxStops)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
