package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSelection = errors.New("unknown route selection")

// Route is an ordered sequence of points that starts and ends at home and
// visits every stop exactly once in between.
type Route []Point

// Coordinates returns the route as a list of [lon, lat] pairs (GeoJSON LineString order).
func (r Route) Coordinates() [][]float64 {
	out := make([][]float64, 0, len(r))
	for _, p := range r {
		out = append(out, p.CoordsToList())
	}
	return out
}

// Legs returns the number of consecutive point pairs in the route.
func (r Route) Legs() int {
	if len(r) < 2 {
		return 0
	}
	return len(r) - 1
}

// ScoredRoute pairs a Route with its total length in kilometers.
// It is derived planning data, produced fresh per query and never stored.
type ScoredRoute struct {
	Route           Route
	TotalDistanceKm float64
}

// Selection decides which candidate wins when comparing total lengths.
type Selection string

const (
	// SelectLongest keeps the candidate with the maximum total distance.
	// This reproduces the reference planner and is the default.
	SelectLongest Selection = "longest"
	// SelectShortest keeps the candidate with the minimum total distance.
	SelectShortest Selection = "shortest"
)

// ParseSelection maps a case-insensitive name to a Selection.
// An empty string yields the default.
func ParseSelection(s string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SelectLongest):
		return SelectLongest, nil
	case string(SelectShortest):
		return SelectShortest, nil
	default:
		return "", fmt.Errorf("parse selection %q: %w", s, ErrUnknownSelection)
	}
}

func (s Selection) Valid() bool {
	return s == SelectLongest || s == SelectShortest
}

// Prefers reports whether candidate strictly beats best. Strict comparison
// keeps the first-enumerated candidate on ties.
func (s Selection) Prefers(candidate, best float64) bool {
	if s == SelectShortest {
		return candidate < best
	}
	return candidate > best
}

// Role distinguishes the fixed home point from intermediate stops.
type Role string

const (
	RoleHome Role = "home"
	RoleStop Role = "stop"
)

// Roles labels each point of a round trip: the first and last are home.
func (r Route) Roles() []Role {
	out := make([]Role, len(r))
	for i := range r {
		if i == 0 || i == len(r)-1 {
			out[i] = RoleHome
			continue
		}
		out[i] = RoleStop
	}
	return out
}
