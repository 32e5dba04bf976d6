package usecases_port

import (
	"context"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context, listingType string) (*domain.FilterOptionsResult, error)
}
