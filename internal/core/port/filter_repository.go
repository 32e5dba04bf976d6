package port

import (
	"context"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

// FilterOptionsRepositoryPort serves the aggregate/option queries that
// back filter UIs. These are the expensive queries fronted by the TTL
// cache.
type FilterOptionsRepositoryPort interface {
	DistinctPropertyTypes(ctx context.Context, listingType string) ([]string, error)
	GetPriceRange(ctx context.Context, listingType string) (*domain.RangeResult, error)
}
