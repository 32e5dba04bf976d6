package usecases_port

import (
	"context"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

type GetFeaturedPropertiesUseCase interface {
	Execute(ctx context.Context, limit int) ([]domain.Property, error)
}
