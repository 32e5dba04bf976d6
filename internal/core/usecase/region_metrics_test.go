package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

func geoListing(lat, lng, price float64) domain.Listing {
	return domain.Listing{
		ID:          uuid.New(),
		IsActive:    true,
		ListingType: domain.ListingTypeSale,
		Latitude:    floatPtr(lat),
		Longitude:   floatPtr(lng),
		SaleDetails: &domain.SaleDetails{
			Price:        floatPtr(price),
			PricePerSqft: floatPtr(price / 1000),
		},
	}
}

func squarePolygon() []domain.Point {
	return []domain.Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 10},
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 0},
	}
}

func TestComputeRegionMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates only the listings inside the polygon", func(t *testing.T) {
		inside1 := geoListing(2, 2, 100000)
		inside2 := geoListing(8, 8, 300000)
		outside := geoListing(20, 20, 9000000)
		noCoords := domain.Listing{
			ID:          uuid.New(),
			ListingType: domain.ListingTypeSale,
			SaleDetails: &domain.SaleDetails{Price: floatPtr(50)},
		}

		storage := &stubListingStorage{
			findListings: func(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
				return []domain.Listing{inside1, inside2, outside, noCoords}, nil
			},
		}
		cache := newStubCache()
		uc := NewComputeRegionMetricsUseCase(storage, cache, time.Minute)

		metrics, err := uc.Execute(ctx, squarePolygon())

		require.NoError(t, err)
		assert.Equal(t, 2, metrics.Count)
		assert.InDelta(t, 200000, metrics.AvgPrice, 1e-9)
		assert.InDelta(t, 100000, metrics.MinPrice, 1e-9)
		assert.InDelta(t, 300000, metrics.MaxPrice, 1e-9)
		assert.InDelta(t, 200, metrics.AvgPricePerSqft, 1e-9)
		assert.Len(t, cache.sets, 1)
	})

	t.Run("repeat polygons hit the cache", func(t *testing.T) {
		storage := &stubListingStorage{
			findListings: func(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
				return []domain.Listing{geoListing(5, 5, 100000)}, nil
			},
		}
		uc := NewComputeRegionMetricsUseCase(storage, newStubCache(), time.Minute)

		first, err := uc.Execute(ctx, squarePolygon())
		require.NoError(t, err)
		second, err := uc.Execute(ctx, squarePolygon())
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, storage.findCalls, 1)
	})

	t.Run("same centroid and vertex count do not share a cache entry", func(t *testing.T) {
		// Both squares are centred on (5,5) with four vertices, but
		// only the outer one contains the listing at (2,2).
		outer := squarePolygon()
		inner := []domain.Point{
			{Lat: 4, Lng: 4},
			{Lat: 4, Lng: 6},
			{Lat: 6, Lng: 6},
			{Lat: 6, Lng: 4},
		}
		storage := &stubListingStorage{
			findListings: func(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
				return []domain.Listing{geoListing(2, 2, 100000)}, nil
			},
		}
		uc := NewComputeRegionMetricsUseCase(storage, newStubCache(), time.Minute)

		outerMetrics, err := uc.Execute(ctx, outer)
		require.NoError(t, err)
		innerMetrics, err := uc.Execute(ctx, inner)
		require.NoError(t, err)

		assert.Equal(t, 1, outerMetrics.Count)
		assert.Equal(t, 0, innerMetrics.Count)
		assert.Len(t, storage.findCalls, 2)
	})

	t.Run("degenerate polygon yields zero metrics without a fetch", func(t *testing.T) {
		storage := &stubListingStorage{}
		uc := NewComputeRegionMetricsUseCase(storage, newStubCache(), time.Minute)

		metrics, err := uc.Execute(ctx, []domain.Point{{Lat: 1, Lng: 1}})

		require.NoError(t, err)
		assert.Equal(t, 0, metrics.Count)
		assert.Empty(t, storage.findCalls)
	})

	t.Run("store failure serves empty metrics", func(t *testing.T) {
		storage := &stubListingStorage{
			findListings: func(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
				return nil, context.DeadlineExceeded
			},
		}
		cache := newStubCache()
		uc := NewComputeRegionMetricsUseCase(storage, cache, time.Minute)

		metrics, err := uc.Execute(ctx, squarePolygon())

		require.NoError(t, err)
		assert.Equal(t, 0, metrics.Count)
		// Failures are never cached.
		assert.Empty(t, cache.sets)
	})
}
