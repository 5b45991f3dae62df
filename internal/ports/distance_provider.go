package ports

import "round-trip-planner/internal/domain"

// Contract for scoring a single leg between two points.
type DistanceProvider interface {
	// Return the distance between two points in kilometers.
	DistanceKm(a, b domain.Point) float64
}
