package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

type GetPropertyByIDUseCase interface {
	// Execute returns nil when no listing with the ID exists.
	Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}
