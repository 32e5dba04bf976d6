package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

func listingRows(contactID uuid.UUID, listingType, state string, n int) []domain.AgentListingRow {
	rows := make([]domain.AgentListingRow, n)
	for i := range rows {
		rows[i] = domain.AgentListingRow{
			ContactID:   contactID,
			ListingID:   uuid.New(),
			ListingType: listingType,
			State:       state,
		}
	}
	return rows
}

func agentsByID(agents ...domain.Agent) func(ctx context.Context, ids []uuid.UUID) ([]domain.Agent, error) {
	return func(ctx context.Context, ids []uuid.UUID) ([]domain.Agent, error) {
		byID := make(map[uuid.UUID]domain.Agent)
		for _, a := range agents {
			byID[a.ID] = a
		}
		out := make([]domain.Agent, 0, len(ids))
		// Deliberately reversed: the use case must restore its own order.
		for i := len(ids) - 1; i >= 0; i-- {
			if a, ok := byID[ids[i]]; ok {
				out = append(out, a)
			}
		}
		return out, nil
	}
}

func TestListAgents_Ranking(t *testing.T) {
	ctx := context.Background()

	priorityAgent := domain.Agent{ID: uuid.New(), Name: "Priority Presence"}
	busyAgent := domain.Agent{ID: uuid.New(), Name: "Busy Elsewhere"}

	// Two listings in a priority state vs five outside any.
	rows := append(
		listingRows(priorityAgent.ID, domain.ListingTypeSale, "Selangor", 2),
		listingRows(busyAgent.ID, domain.ListingTypeRent, "Sabah", 5)...,
	)

	storage := &stubAgentStorage{
		findActiveListingContacts: func(ctx context.Context, state string) ([]domain.AgentListingRow, error) {
			return rows, nil
		},
		findAgentsByIDs: agentsByID(priorityAgent, busyAgent),
		countAgents:     func(ctx context.Context) (int, error) { return 2, nil },
	}
	uc := NewListAgentsUseCase(storage, testPriorityStates)

	result, err := uc.Execute(ctx, 1, 20, "")

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	// Priority-state presence beats raw volume.
	assert.Equal(t, priorityAgent.ID, result.Items[0].ID)
	assert.Equal(t, busyAgent.ID, result.Items[1].ID)
	assert.Equal(t, 2, result.Items[0].ListingsForSaleCount)
	assert.Equal(t, 0, result.Items[0].ListingsForRentCount)
	assert.Equal(t, 5, result.Items[1].ListingsForRentCount)
	assert.Equal(t, 2, result.TotalCount)
	assert.False(t, result.HasMore)
}

func TestListAgents_AlphabeticalFill(t *testing.T) {
	ctx := context.Background()

	active := domain.Agent{ID: uuid.New(), Name: "Active Agent"}
	idleA := domain.Agent{ID: uuid.New(), Name: "Aaron Idle"}
	idleB := domain.Agent{ID: uuid.New(), Name: "Beth Idle"}

	var fallbackLimit, fallbackOffset int
	var fallbackExclude []uuid.UUID

	storage := &stubAgentStorage{
		findActiveListingContacts: func(ctx context.Context, state string) ([]domain.AgentListingRow, error) {
			return listingRows(active.ID, domain.ListingTypeSale, "Penang", 1), nil
		},
		findAgentsByIDs: agentsByID(active),
		findAgentsAlphabetical: func(ctx context.Context, limit, offset int, excludeIDs []uuid.UUID) ([]domain.Agent, error) {
			fallbackLimit, fallbackOffset, fallbackExclude = limit, offset, excludeIDs
			return []domain.Agent{idleA, idleB}, nil
		},
		countAgents: func(ctx context.Context) (int, error) { return 3, nil },
	}
	uc := NewListAgentsUseCase(storage, testPriorityStates)

	result, err := uc.Execute(ctx, 1, 3, "")

	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, active.ID, result.Items[0].ID)
	assert.Equal(t, idleA.ID, result.Items[1].ID)
	assert.Equal(t, idleB.ID, result.Items[2].ID)

	// The fill excludes the ranked set and starts at its end.
	assert.Equal(t, 2, fallbackLimit)
	assert.Equal(t, 0, fallbackOffset)
	assert.Equal(t, []uuid.UUID{active.ID}, fallbackExclude)
	assert.Equal(t, 3, result.TotalCount)
}

func TestListAgents_PageBeyondRankedSet(t *testing.T) {
	ctx := context.Background()

	active := domain.Agent{ID: uuid.New(), Name: "Only Active"}

	var fallbackOffset int
	storage := &stubAgentStorage{
		findActiveListingContacts: func(ctx context.Context, state string) ([]domain.AgentListingRow, error) {
			return listingRows(active.ID, domain.ListingTypeSale, "Johor", 1), nil
		},
		findAgentsAlphabetical: func(ctx context.Context, limit, offset int, excludeIDs []uuid.UUID) ([]domain.Agent, error) {
			fallbackOffset = offset
			return []domain.Agent{}, nil
		},
		countAgents: func(ctx context.Context) (int, error) { return 1, nil },
	}
	uc := NewListAgentsUseCase(storage, testPriorityStates)

	result, err := uc.Execute(ctx, 2, 10, "")

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	// Page 2 starts at from=10; 1 ranked agent consumed one fallback slot
	// on page 1, so the fallback continues at offset 9.
	assert.Equal(t, 9, fallbackOffset)
}

func TestListAgents_StateFilterRanksByVolume(t *testing.T) {
	ctx := context.Background()

	small := domain.Agent{ID: uuid.New(), Name: "Small"}
	big := domain.Agent{ID: uuid.New(), Name: "Big"}

	rows := append(
		listingRows(small.ID, domain.ListingTypeSale, "Penang", 1),
		listingRows(big.ID, domain.ListingTypeSale, "Penang", 4)...,
	)

	storage := &stubAgentStorage{
		findActiveListingContacts: func(ctx context.Context, state string) ([]domain.AgentListingRow, error) {
			assert.Equal(t, "Penang", state)
			return rows, nil
		},
		findAgentsByIDs: agentsByID(small, big),
	}
	uc := NewListAgentsUseCase(storage, testPriorityStates)

	result, err := uc.Execute(ctx, 1, 20, "Penang")

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, big.ID, result.Items[0].ID)
	assert.Equal(t, small.ID, result.Items[1].ID)
	assert.Equal(t, 2, result.TotalCount)
}

func TestListAgents_DegradedModes(t *testing.T) {
	ctx := context.Background()

	t.Run("association failure falls back to alphabetical paging", func(t *testing.T) {
		alpha := domain.Agent{ID: uuid.New(), Name: "Alpha"}
		storage := &stubAgentStorage{
			findActiveListingContacts: func(ctx context.Context, state string) ([]domain.AgentListingRow, error) {
				return nil, errors.New("join exploded")
			},
			findAgentsAlphabetical: func(ctx context.Context, limit, offset int, excludeIDs []uuid.UUID) ([]domain.Agent, error) {
				assert.Nil(t, excludeIDs)
				return []domain.Agent{alpha}, nil
			},
			countAgents: func(ctx context.Context) (int, error) { return 1, nil },
		}
		uc := NewListAgentsUseCase(storage, testPriorityStates)

		result, err := uc.Execute(ctx, 1, 20, "")

		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, alpha.ID, result.Items[0].ID)
		// Stats are unavailable in degraded mode.
		assert.Equal(t, 0, result.Items[0].ListingsForSaleCount)
	})

	t.Run("count failure estimates the total from the page", func(t *testing.T) {
		agent := domain.Agent{ID: uuid.New(), Name: "Agent"}
		storage := &stubAgentStorage{
			findActiveListingContacts: func(ctx context.Context, state string) ([]domain.AgentListingRow, error) {
				return listingRows(agent.ID, domain.ListingTypeSale, "Johor", 1), nil
			},
			findAgentsByIDs: agentsByID(agent),
			countAgents: func(ctx context.Context) (int, error) {
				return 0, errors.New("count failed")
			},
		}
		uc := NewListAgentsUseCase(storage, testPriorityStates)

		result, err := uc.Execute(ctx, 1, 20, "")

		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalCount)
		assert.False(t, result.HasMore)
	})
}
