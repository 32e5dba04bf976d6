package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/mmcloughlin/geohash"

	"github.com/Kaneki016/superhomes-website-sub000/internal/constants"
	"github.com/Kaneki016/superhomes-website-sub000/internal/contextkeys"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
)

// regionKeyPrecision gives roughly 5 m vertex resolution; redraws that
// differ by less than that share a cache entry.
const regionKeyPrecision = 9

// ComputeRegionMetricsUseCase restricts the listing set to a user-drawn
// polygon and recomputes the aggregate metrics over exactly that
// subset. Results are cached per polygon because map redraws repeat the
// same polygon frequently.
type ComputeRegionMetricsUseCase struct {
	storage port.ListingStoragePort
	cache   port.CachePort
	ttl     time.Duration
}

func NewComputeRegionMetricsUseCase(storage port.ListingStoragePort, cache port.CachePort, ttl time.Duration) *ComputeRegionMetricsUseCase {
	return &ComputeRegionMetricsUseCase{storage: storage, cache: cache, ttl: ttl}
}

func (uc *ComputeRegionMetricsUseCase) Execute(ctx context.Context, polygon []domain.Point) (*domain.RegionMetrics, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ComputeRegionMetrics",
		"vertices": len(polygon),
	})
	ucLogger.Info("Use case started", nil)

	if len(polygon) < 3 {
		ucLogger.Warn("Polygon has fewer than 3 vertices", nil)
		return &domain.RegionMetrics{}, nil
	}

	cacheKey := regionCacheKey(polygon)
	if cached, ok := uc.cache.Get(cacheKey); ok {
		if metrics, ok := cached.(*domain.RegionMetrics); ok {
			ucLogger.Debug("Served from cache", port.Fields{"cache_key": cacheKey})
			return metrics, nil
		}
	}

	listings, err := uc.storage.FindListings(ctx, domain.ListingQuery{Limit: constants.MaxCandidateRows})
	if err != nil {
		ucLogger.Error("Storage returned an error, serving empty metrics", err, nil)
		return &domain.RegionMetrics{}, nil
	}

	metrics := computeMetrics(listings, polygon)

	uc.cache.Set(cacheKey, metrics, uc.ttl)
	ucLogger.Info("Use case finished successfully", port.Fields{"inside_count": metrics.Count})
	return metrics, nil
}

// regionCacheKey folds every vertex into the key, so distinct regions
// that happen to share a centroid and vertex count never collide. The
// centroid geohash prefix keeps the key readable in logs.
func regionCacheKey(polygon []domain.Point) string {
	h := fnv.New64a()
	for _, p := range polygon {
		h.Write([]byte(geohash.EncodeWithPrecision(p.Lat, p.Lng, regionKeyPrecision)))
	}
	centroid := domain.Centroid(polygon)
	return fmt.Sprintf("region_metrics_%s_%d_%x",
		geohash.EncodeWithPrecision(centroid.Lat, centroid.Lng, regionKeyPrecision),
		len(polygon),
		h.Sum64(),
	)
}

// computeMetrics aggregates over the listings inside the polygon only;
// rows without coordinates can never match a drawn region.
func computeMetrics(listings []domain.Listing, polygon []domain.Point) *domain.RegionMetrics {
	metrics := &domain.RegionMetrics{}

	var priceSum, sqftSum float64
	var priceCount, sqftCount int

	for _, l := range listings {
		if l.Latitude == nil || l.Longitude == nil {
			continue
		}
		if !domain.PointInPolygon(domain.Point{Lat: *l.Latitude, Lng: *l.Longitude}, polygon) {
			continue
		}

		metrics.Count++

		p := domain.UnifyListing(l)
		if p.Price != nil {
			priceSum += *p.Price
			priceCount++
			if metrics.MinPrice == 0 || *p.Price < metrics.MinPrice {
				metrics.MinPrice = *p.Price
			}
			if *p.Price > metrics.MaxPrice {
				metrics.MaxPrice = *p.Price
			}
		}
		if p.PricePerSqft != nil {
			sqftSum += *p.PricePerSqft
			sqftCount++
		}
	}

	if priceCount > 0 {
		metrics.AvgPrice = priceSum / float64(priceCount)
	}
	if sqftCount > 0 {
		metrics.AvgPricePerSqft = sqftSum / float64(sqftCount)
	}
	return metrics
}
