package usecases_port

import (
	"context"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

type ComputeRegionMetricsUseCase interface {
	Execute(ctx context.Context, polygon []domain.Point) (*domain.RegionMetrics, error)
}
