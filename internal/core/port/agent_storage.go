package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

// AgentStoragePort serves the agent directory. Bulk in-set fetches do
// not promise any ordering; callers re-project through their own
// ordered ID list.
type AgentStoragePort interface {
	// FindActiveListingContacts returns one row per active
	// listing-to-contact association, optionally narrowed to a state.
	FindActiveListingContacts(ctx context.Context, state string) ([]domain.AgentListingRow, error)

	FindAgentsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Agent, error)

	// FindAgentsAlphabetical pages agents by name, excluding the given
	// IDs when the list is non-empty.
	FindAgentsAlphabetical(ctx context.Context, limit, offset int, excludeIDs []uuid.UUID) ([]domain.Agent, error)

	CountAgents(ctx context.Context) (int, error)
}
