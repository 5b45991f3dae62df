package ports

import (
	"context"
	"round-trip-planner/internal/domain"
)

// Port: a boundary for reading a batch of points from outside the process.
// The first point returned is treated as home by the caller.
type PointSource interface {
	LoadPoints(ctx context.Context) ([]domain.Point, error)
}
