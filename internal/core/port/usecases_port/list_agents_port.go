package usecases_port

import (
	"context"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

type ListAgentsUseCase interface {
	// Execute pages the agent directory; state == "" means all states.
	Execute(ctx context.Context, page, limit int, state string) (*domain.PaginatedResult[domain.Agent], error)
}
