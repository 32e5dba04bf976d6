package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Kaneki016/superhomes-website-sub000/internal/contextkeys"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
)

// ListAgentsUseCase ranks agents by live listing statistics and pages
// the directory. Counters are aggregated per request; nothing here is
// stored.
type ListAgentsUseCase struct {
	storage        port.AgentStoragePort
	priorityStates []string
}

func NewListAgentsUseCase(storage port.AgentStoragePort, priorityStates []string) *ListAgentsUseCase {
	return &ListAgentsUseCase{storage: storage, priorityStates: priorityStates}
}

type agentStats struct {
	sale          int
	rent          int
	total         int
	priorityCount int
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context, page, limit int, state string) (*domain.PaginatedResult[domain.Agent], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListAgents",
		"page":     page,
		"limit":    limit,
		"state":    state,
	})
	ucLogger.Info("Use case started", nil)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	rows, err := uc.storage.FindActiveListingContacts(ctx, state)
	if err != nil {
		// Degraded mode: plain alphabetical pagination without stats.
		ucLogger.Error("Listing association query failed, falling back to alphabetical", err, nil)
		return uc.alphabeticalFallback(ctx, page, limit, ucLogger)
	}

	stats := uc.aggregate(rows)

	var result *domain.PaginatedResult[domain.Agent]
	if state != "" {
		result, err = uc.pageByState(ctx, page, limit, stats)
	} else {
		result, err = uc.pageAll(ctx, page, limit, stats, ucLogger)
	}
	if err != nil {
		ucLogger.Error("Storage returned an error, serving degraded result", err, nil)
		return emptyPage[domain.Agent](), nil
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Items),
	})
	return result, nil
}

func (uc *ListAgentsUseCase) aggregate(rows []domain.AgentListingRow) map[uuid.UUID]*agentStats {
	isPriority := func(state string) bool {
		for _, s := range uc.priorityStates {
			if s == state {
				return true
			}
		}
		return false
	}

	stats := make(map[uuid.UUID]*agentStats)
	for _, row := range rows {
		st := stats[row.ContactID]
		if st == nil {
			st = &agentStats{}
			stats[row.ContactID] = st
		}
		switch row.ListingType {
		case domain.ListingTypeSale:
			st.sale++
		case domain.ListingTypeRent:
			st.rent++
		}
		st.total++
		if isPriority(row.State) {
			st.priorityCount++
		}
	}
	return stats
}

// pageByState paginates the total-descending ID list, then fetches the
// page's agents and re-projects them through the ordered IDs (the
// in-set fetch does not preserve order).
func (uc *ListAgentsUseCase) pageByState(ctx context.Context, page, limit int, stats map[uuid.UUID]*agentStats) (*domain.PaginatedResult[domain.Agent], error) {
	ids := sortedIDs(stats, func(a, b *agentStats) bool { return a.total > b.total })
	totalCount := len(ids)

	from := (page - 1) * limit
	if from > totalCount {
		from = totalCount
	}
	to := from + limit
	if to > totalCount {
		to = totalCount
	}
	pageIDs := ids[from:to]

	agents, err := uc.fetchOrdered(ctx, pageIDs, stats)
	if err != nil {
		return nil, err
	}

	return &domain.PaginatedResult[domain.Agent]{
		Items:      agents,
		TotalCount: totalCount,
		HasMore:    page*limit < totalCount,
	}, nil
}

// pageAll blends the performance-ranked subset of active agents with an
// alphabetical fallback of agents that have no active listings at all,
// keeping every agent on exactly one page across the sequence.
func (uc *ListAgentsUseCase) pageAll(ctx context.Context, page, limit int, stats map[uuid.UUID]*agentStats, logger port.LoggerPort) (*domain.PaginatedResult[domain.Agent], error) {
	rankedIDs := sortedIDs(stats, func(a, b *agentStats) bool {
		if (a.priorityCount > 0) != (b.priorityCount > 0) {
			return a.priorityCount > 0
		}
		if a.priorityCount != b.priorityCount {
			return a.priorityCount > b.priorityCount
		}
		return a.total > b.total
	})
	totalActive := len(rankedIDs)

	from := (page - 1) * limit
	to := from + limit

	var pageIDs []uuid.UUID
	if from < totalActive {
		end := to
		if end > totalActive {
			end = totalActive
		}
		pageIDs = rankedIDs[from:end]
	}

	agents, err := uc.fetchOrdered(ctx, pageIDs, stats)
	if err != nil {
		return nil, err
	}

	// Remaining slots are filled by agents without active listings,
	// alphabetically, offset past the ranked subset.
	if need := limit - len(agents); need > 0 {
		offset := from - totalActive
		if offset < 0 {
			offset = 0
		}
		fallback, err := uc.storage.FindAgentsAlphabetical(ctx, need, offset, rankedIDs)
		if err != nil {
			return nil, err
		}
		agents = append(agents, fallback...)
	}

	totalCount, err := uc.storage.CountAgents(ctx)
	if err != nil {
		logger.Error("Agent count query failed", err, nil)
		totalCount = from + len(agents)
	}

	return &domain.PaginatedResult[domain.Agent]{
		Items:      agents,
		TotalCount: totalCount,
		HasMore:    page*limit < totalCount,
	}, nil
}

func (uc *ListAgentsUseCase) alphabeticalFallback(ctx context.Context, page, limit int, logger port.LoggerPort) (*domain.PaginatedResult[domain.Agent], error) {
	agents, err := uc.storage.FindAgentsAlphabetical(ctx, limit, (page-1)*limit, nil)
	if err != nil {
		logger.Error("Alphabetical fallback failed", err, nil)
		return emptyPage[domain.Agent](), nil
	}

	totalCount, err := uc.storage.CountAgents(ctx)
	if err != nil {
		logger.Error("Agent count query failed", err, nil)
		totalCount = (page-1)*limit + len(agents)
	}

	return &domain.PaginatedResult[domain.Agent]{
		Items:      agents,
		TotalCount: totalCount,
		HasMore:    page*limit < totalCount,
	}, nil
}

// fetchOrdered bulk-fetches the page's agents and re-applies the ID
// order, attaching the per-request counters.
func (uc *ListAgentsUseCase) fetchOrdered(ctx context.Context, ids []uuid.UUID, stats map[uuid.UUID]*agentStats) ([]domain.Agent, error) {
	if len(ids) == 0 {
		return []domain.Agent{}, nil
	}

	fetched, err := uc.storage.FindAgentsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]domain.Agent, len(fetched))
	for _, a := range fetched {
		byID[a.ID] = a
	}

	ordered := make([]domain.Agent, 0, len(ids))
	for _, id := range ids {
		agent, ok := byID[id]
		if !ok {
			continue
		}
		if st := stats[id]; st != nil {
			agent.ListingsForSaleCount = st.sale
			agent.ListingsForRentCount = st.rent
		}
		ordered = append(ordered, agent)
	}
	return ordered, nil
}

// sortedIDs orders the aggregated agent IDs by the given comparison,
// ties broken by ID string for a stable pagination sequence.
func sortedIDs(stats map[uuid.UUID]*agentStats, less func(a, b *agentStats) bool) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := stats[ids[i]], stats[ids[j]]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return ids[i].String() < ids[j].String()
	})
	return ids
}
