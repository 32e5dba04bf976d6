package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

// ListingStoragePort is the read-side query contract over the listings
// schema. Price and tenure predicates are intentionally absent from
// ListingQuery: they live in joined sub-records and are applied in
// memory by the search use case.
type ListingStoragePort interface {
	FindListings(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error)
	CountListings(ctx context.Context, q domain.ListingQuery) (int, error)

	// GetListingByID returns nil (not an error) when no row exists.
	GetListingByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)

	// FindListingIDs is the lightweight ID-only lookup used by the slug
	// resolver, both for the title-pattern phase and the bounded scan.
	FindListingIDs(ctx context.Context, q domain.ListingIDQuery) ([]uuid.UUID, error)
}
