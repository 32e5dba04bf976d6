package usecases_port

import (
	"context"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

type SearchPropertiesUseCase interface {
	Execute(ctx context.Context, page, limit int, filters domain.FilterCriteria, opts domain.SearchOptions) (*domain.PaginatedResult[domain.Property], error)
}
