package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/Kaneki016/superhomes-website-sub000/internal/contextkeys"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
)

type GetPropertyByIDUseCase struct {
	storage port.ListingStoragePort
}

func NewGetPropertyByIDUseCase(storage port.ListingStoragePort) *GetPropertyByIDUseCase {
	return &GetPropertyByIDUseCase{storage: storage}
}

// Execute fetches one listing and unifies it. Not-found is nil, not an
// error.
func (uc *GetPropertyByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyByID",
		"property_id": id,
	})

	ucLogger.Debug("Use case started", nil)

	listing, err := uc.storage.GetListingByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, nil
	}
	if listing == nil {
		ucLogger.Debug("Property not found", nil)
		return nil, nil
	}

	property := domain.UnifyListing(*listing)
	ucLogger.Info("Use case finished successfully", nil)
	return &property, nil
}
