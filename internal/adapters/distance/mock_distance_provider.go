package distance

import (
	"round-trip-planner/internal/domain"
	"round-trip-planner/internal/ports"
)

var _ ports.DistanceProvider = (*MockDistanceProvider)(nil)

type MockPair struct {
	From, To domain.Point
	Km       float64
}

// MockDistanceProvider answers from a fixed table of directed pairs and
// counts every lookup. Pairs missing from the table fall back to the
// haversine distance, so tests only need to pin the legs they care about.
type MockDistanceProvider struct {
	m     map[[2]domain.Point]float64
	calls int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[[2]domain.Point]float64, len(pairs))
	for _, p := range pairs {
		m[[2]domain.Point{p.From, p.To}] = p.Km
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) DistanceKm(a, b domain.Point) float64 {
	p.calls++
	if km, ok := p.m[[2]domain.Point{a, b}]; ok {
		return km
	}
	return a.DistanceTo(b)
}

// Calls returns the number of DistanceKm lookups served so far.
func (p *MockDistanceProvider) Calls() int { return p.calls }

func (p *MockDistanceProvider) Reset() { p.calls = 0 }
