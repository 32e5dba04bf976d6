package usecases_port

import (
	"context"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

type ResolveSlugUseCase interface {
	// Execute returns nil when the slug resolves to nothing.
	Execute(ctx context.Context, slug string) (*domain.Property, error)
}
