package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Kaneki016/superhomes-website-sub000/internal/contextkeys"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
)

// GetFilterOptionsUseCase assembles the option lists behind the search
// filters. The distinct/range queries are expensive aggregations, so
// results sit in the TTL cache.
type GetFilterOptionsUseCase struct {
	repo  port.FilterOptionsRepositoryPort
	cache port.CachePort
	ttl   time.Duration
}

func NewGetFilterOptionsUseCase(repo port.FilterOptionsRepositoryPort, cache port.CachePort, ttl time.Duration) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{repo: repo, cache: cache, ttl: ttl}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context, listingType string) (*domain.FilterOptionsResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":     "GetFilterOptions",
		"listing_type": listingType,
	})
	ucLogger.Info("Use case started", nil)

	cacheKey := fmt.Sprintf("distinct_property_types_%s", listingType)
	if cached, ok := uc.cache.Get(cacheKey); ok {
		if result, ok := cached.(*domain.FilterOptionsResult); ok {
			ucLogger.Debug("Served from cache", port.Fields{"cache_key": cacheKey})
			return result, nil
		}
	}

	result := &domain.FilterOptionsResult{PropertyTypes: []string{}}

	types, err := uc.repo.DistinctPropertyTypes(ctx, listingType)
	if err != nil {
		ucLogger.Error("Failed to get distinct property types", err, nil)
	} else {
		result.PropertyTypes = types
	}

	priceRange, err := uc.repo.GetPriceRange(ctx, listingType)
	if err != nil {
		ucLogger.Error("Failed to get price range", err, nil)
	} else {
		result.PriceMin = priceRange.Min
		result.PriceMax = priceRange.Max
	}

	uc.cache.Set(cacheKey, result, uc.ttl)
	ucLogger.Info("Use case finished successfully", port.Fields{
		"property_types": len(result.PropertyTypes),
	})
	return result, nil
}
