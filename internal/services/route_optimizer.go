package services

import (
	"errors"
	"fmt"
	"iter"
	"round-trip-planner/internal/domain"
	"round-trip-planner/internal/ports"
	"slices"
)

var ErrStopLimit = errors.New("stop limit reached")

// Placement reports where AddLocationWithLimit put a point.
// Index is 0 for home and the position within the stop list otherwise.
type Placement struct {
	Role  domain.Role
	Index int
	Point domain.Point
}

// RouteOptimizer owns the stop set and plans round trips by exhaustive search.
//
// The first point ever added becomes home and is never replaced. Every later
// point is appended to the stop list in insertion order; identical
// coordinates are kept as separate stops.
//
// BestRoute enumerates all n! orderings of the stops and scores each in O(n),
// so it is only practical for a handful of stops. There is no pruning or
// approximation.
//
// A RouteOptimizer is not safe for concurrent use. Hosts that share one across
// goroutines must serialize every call.
type RouteOptimizer struct {
	provider  ports.DistanceProvider
	selection domain.Selection

	home  *domain.Point
	stops []domain.Point
}

func NewRouteOptimizer(provider ports.DistanceProvider, selection domain.Selection) (*RouteOptimizer, error) {
	if provider == nil {
		return nil, errors.New("new route optimizer: distance provider must be non-nil")
	}
	if !selection.Valid() {
		return nil, fmt.Errorf("new route optimizer: selection %q: %w", selection, domain.ErrUnknownSelection)
	}

	return &RouteOptimizer{
		provider:  provider,
		selection: selection,
	}, nil
}

// AddLocation sets home on the first call and appends a stop afterwards.
// Coordinates are not range-checked.
func (o *RouteOptimizer) AddLocation(lon, lat float64) {
	o.add(domain.NewPoint(lon, lat))
}

// AddLocationWithLimit behaves like AddLocation but refuses to grow the stop
// list beyond maxStops. A maxStops of zero or less disables the ceiling.
// Home can always be set.
func (o *RouteOptimizer) AddLocationWithLimit(lon, lat float64, maxStops int) (Placement, error) {
	p := domain.NewPoint(lon, lat)
	if o.home != nil && maxStops > 0 && len(o.stops) >= maxStops {
		return Placement{}, fmt.Errorf("add location: %d stops already planned (max %d): %w", len(o.stops), maxStops, ErrStopLimit)
	}
	return o.add(p), nil
}

func (o *RouteOptimizer) add(p domain.Point) Placement {
	if o.home == nil {
		o.home = &p
		return Placement{Role: domain.RoleHome, Index: 0, Point: p}
	}

	o.stops = append(o.stops, p)
	return Placement{Role: domain.RoleStop, Index: len(o.stops) - 1, Point: p}
}

// Home returns the home point and whether it has been set.
func (o *RouteOptimizer) Home() (domain.Point, bool) {
	if o.home == nil {
		return domain.Point{}, false
	}
	return *o.home, true
}

// Stops returns a copy of the stop list in insertion order.
func (o *RouteOptimizer) Stops() []domain.Point {
	return slices.Clone(o.stops)
}

func (o *RouteOptimizer) StopCount() int { return len(o.stops) }

func (o *RouteOptimizer) Selection() domain.Selection { return o.selection }

// CandidateRoutes yields [home, permutation..., home] for every permutation
// of the stops, in enumeration order. It yields nothing while home is unset.
func (o *RouteOptimizer) CandidateRoutes() iter.Seq[domain.Route] {
	home, ok := o.Home()
	stops := o.Stops()

	return func(yield func(domain.Route) bool) {
		if !ok {
			return
		}
		for perm := range Permutations(stops) {
			route := make(domain.Route, 0, len(perm)+2)
			route = append(route, home)
			route = append(route, perm...)
			route = append(route, home)
			if !yield(route) {
				return
			}
		}
	}
}

// Score returns the total length of route in kilometers: the sum of the
// distances between consecutive points.
func (o *RouteOptimizer) Score(route domain.Route) float64 {
	total := 0.0
	for i := 0; i < route.Legs(); i++ {
		total += o.provider.DistanceKm(route[i], route[i+1])
	}
	return total
}

// BestRoute scores every candidate route and returns the one preferred by
// the configured selection. Ties go to the first candidate enumerated.
//
// It returns false only when no home point has been added. With home but no
// stops the single candidate [home, home] of length 0 is returned.
func (o *RouteOptimizer) BestRoute() (*domain.ScoredRoute, bool) {
	var best *domain.ScoredRoute

	for route := range o.CandidateRoutes() {
		total := o.Score(route)
		// The first candidate always seeds best, so non-finite scores still yield a route.
		if best == nil || o.selection.Prefers(total, best.TotalDistanceKm) {
			best = &domain.ScoredRoute{Route: route, TotalDistanceKm: total}
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}
