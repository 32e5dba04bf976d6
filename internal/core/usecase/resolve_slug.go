package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Kaneki016/superhomes-website-sub000/internal/constants"
	"github.com/Kaneki016/superhomes-website-sub000/internal/contextkeys"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
)

// ResolveSlugUseCase maps an SEO slug back to its canonical property in
// two phases: a narrow title-pattern match first, then a bounded
// short-ID scan when the title has drifted since the slug was minted.
type ResolveSlugUseCase struct {
	storage port.ListingStoragePort
}

func NewResolveSlugUseCase(storage port.ListingStoragePort) *ResolveSlugUseCase {
	return &ResolveSlugUseCase{storage: storage}
}

func (uc *ResolveSlugUseCase) Execute(ctx context.Context, slug string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ResolveSlug",
		"slug":     slug,
	})
	ucLogger.Info("Use case started", nil)

	info := domain.ParseSlug(slug)
	if info.ShortID == "" {
		ucLogger.Warn("Slug carries no usable short code", nil)
		return nil, nil
	}

	// Phase 1: conjunctive title pattern narrows candidates cheaply.
	if len(info.TitleTokens) > 0 {
		ids, err := uc.storage.FindListingIDs(ctx, domain.ListingIDQuery{
			TitleTokens: info.TitleTokens,
			Limit:       constants.SlugCandidateLimit,
		})
		if err != nil {
			// Fall through to the scan; the error stays contained.
			ucLogger.Error("Title-pattern candidate query failed", err, nil)
		} else if id, ok := matchShortID(ids, info.ShortID); ok {
			ucLogger.Info("Slug resolved via title pattern", port.Fields{"property_id": id})
			return uc.fetch(ctx, id, ucLogger)
		}
	}

	// Phase 2: bounded full short-ID scan. Linear worst case, accepted
	// so that title edits never orphan slugs already in circulation.
	for page := 0; page < constants.SlugScanMaxPages; page++ {
		ids, err := uc.storage.FindListingIDs(ctx, domain.ListingIDQuery{
			Limit:  constants.SlugScanPageSize,
			Offset: page * constants.SlugScanPageSize,
		})
		if err != nil {
			ucLogger.Error("Short-ID scan page failed", err, port.Fields{"scan_page": page})
			return nil, nil
		}

		if id, ok := matchShortID(ids, info.ShortID); ok {
			ucLogger.Info("Slug resolved via short-ID scan", port.Fields{
				"property_id": id,
				"scan_page":   page,
			})
			return uc.fetch(ctx, id, ucLogger)
		}

		if len(ids) < constants.SlugScanPageSize {
			break
		}
	}

	ucLogger.Warn("Slug resolved to nothing", nil)
	return nil, nil
}

func (uc *ResolveSlugUseCase) fetch(ctx context.Context, id uuid.UUID, logger port.LoggerPort) (*domain.Property, error) {
	listing, err := uc.storage.GetListingByID(ctx, id)
	if err != nil {
		logger.Error("Storage returned an error", err, nil)
		return nil, nil
	}
	if listing == nil {
		return nil, nil
	}
	property := domain.UnifyListing(*listing)
	return &property, nil
}

func matchShortID(ids []uuid.UUID, shortID string) (uuid.UUID, bool) {
	for _, id := range ids {
		if strings.HasSuffix(strings.ToLower(id.String()), shortID) {
			return id, true
		}
	}
	return uuid.UUID{}, false
}
