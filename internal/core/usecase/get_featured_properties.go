package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Kaneki016/superhomes-website-sub000/internal/contextkeys"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
)

// GetFeaturedPropertiesUseCase serves the newest active listings
// through the TTL cache, since the homepage hits this on every render.
type GetFeaturedPropertiesUseCase struct {
	storage port.ListingStoragePort
	cache   port.CachePort
	ttl     time.Duration
}

func NewGetFeaturedPropertiesUseCase(storage port.ListingStoragePort, cache port.CachePort, ttl time.Duration) *GetFeaturedPropertiesUseCase {
	return &GetFeaturedPropertiesUseCase{storage: storage, cache: cache, ttl: ttl}
}

func (uc *GetFeaturedPropertiesUseCase) Execute(ctx context.Context, limit int) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFeaturedProperties",
		"limit":    limit,
	})

	if limit < 1 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("featured_properties_%d", limit)
	if cached, ok := uc.cache.Get(cacheKey); ok {
		if props, ok := cached.([]domain.Property); ok {
			ucLogger.Debug("Served from cache", port.Fields{"cache_key": cacheKey})
			return props, nil
		}
	}

	listings, err := uc.storage.FindListings(ctx, domain.ListingQuery{Limit: limit})
	if err != nil {
		ucLogger.Error("Storage returned an error, serving empty result", err, nil)
		return []domain.Property{}, nil
	}

	props := make([]domain.Property, 0, len(listings))
	for _, l := range listings {
		props = append(props, domain.UnifyListing(l))
	}

	uc.cache.Set(cacheKey, props, uc.ttl)
	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(props)})
	return props, nil
}
