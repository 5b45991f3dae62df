package pointsfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"round-trip-planner/internal/domain"
	"round-trip-planner/internal/ports"
	"strings"
)

var _ ports.PointSource = (*JSONPointSource)(nil)

// PointSeed is one entry of a points file.
type PointSeed struct {
	Lng *float64 `json:"lng"`
	Lat *float64 `json:"lat"`
}

// JSONPointSource implements PointSource over a JSON file shaped as
// [{"lng": -0.18, "lat": 51.52}, ...]. Entries keep file order.
type JSONPointSource struct {
	Path string
}

func NewJSONPointSource(path string) *JSONPointSource {
	return &JSONPointSource{Path: path}
}

// Read and parse every point from the file.
func (s *JSONPointSource) LoadPoints(ctx context.Context) ([]domain.Point, error) {
	path := strings.TrimSpace(s.Path)
	if path == "" {
		return nil, errors.New("load points: path must not be empty")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load points: %w", err)
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load points: read %q: %w", path, err)
	}

	points, err := ParsePoints(bytes)
	if err != nil {
		return nil, fmt.Errorf("load points: %q: %w", path, err)
	}
	return points, nil
}

// ParsePoints decodes a JSON array of {"lng","lat"} objects.
func ParsePoints(data []byte) ([]domain.Point, error) {
	var seeds []PointSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	points := make([]domain.Point, 0, len(seeds))
	for i, item := range seeds {
		if item.Lng == nil || item.Lat == nil {
			return nil, fmt.Errorf("point at index %d: lng and lat are required", i)
		}
		points = append(points, domain.NewPoint(*item.Lng, *item.Lat))
	}

	return points, nil
}
