package distance

import (
	"round-trip-planner/internal/domain"
	"round-trip-planner/internal/ports"
)

var _ ports.DistanceProvider = (*HaversineDistanceProvider)(nil)

// HaversineDistanceProvider implements DistanceProvider with great-circle
// distances on the mean Earth sphere. It holds no state and is safe for
// concurrent use.
type HaversineDistanceProvider struct{}

func NewHaversineDistanceProvider() *HaversineDistanceProvider {
	return &HaversineDistanceProvider{}
}

func (HaversineDistanceProvider) DistanceKm(a, b domain.Point) float64 {
	return a.DistanceTo(b)
}
