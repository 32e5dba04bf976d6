package usecase

import (
	"context"
	"sort"

	"github.com/Kaneki016/superhomes-website-sub000/internal/contextkeys"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
)

// SearchPropertiesUseCase orchestrates paginated property search. The
// filter/pagination strategy is picked from an ordered list: the first
// strategy whose canHandle accepts the filters executes, so the
// precedence rules (multi-word location, then in-memory post-filter,
// then plain pushdown) live in one place.
type SearchPropertiesUseCase struct {
	storage        port.ListingStoragePort
	priorityStates []string
	strategies     []searchStrategy
}

func NewSearchPropertiesUseCase(storage port.ListingStoragePort, priorityStates []string) *SearchPropertiesUseCase {
	uc := &SearchPropertiesUseCase{
		storage:        storage,
		priorityStates: priorityStates,
	}
	uc.strategies = []searchStrategy{
		&multiWordLocationStrategy{uc: uc},
		&postFilterStrategy{uc: uc},
		&pushdownStrategy{uc: uc},
	}
	return uc
}

func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, page, limit int, filters domain.FilterCriteria, opts domain.SearchOptions) (*domain.PaginatedResult[domain.Property], error) {
	logger := contextkeys.LoggerFromContext(ctx)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	for _, st := range uc.strategies {
		if !st.canHandle(filters) {
			continue
		}

		ucLogger := logger.WithFields(port.Fields{
			"use_case": "SearchProperties",
			"strategy": st.name(),
			"page":     page,
			"limit":    limit,
		})
		ucLogger.Info("Use case started", nil)

		result, err := st.execute(ctx, page, limit, filters, opts)
		if err != nil {
			// Store failures never escape the search surface.
			ucLogger.Error("Storage returned an error, serving degraded result", err, nil)
			return emptyPage[domain.Property](), nil
		}

		ucLogger.Info("Use case finished successfully", port.Fields{
			"total_found":   result.TotalCount,
			"items_on_page": len(result.Items),
		})
		return result, nil
	}

	// The pushdown strategy accepts everything; this is unreachable.
	return emptyPage[domain.Property](), nil
}

func emptyPage[T any]() *domain.PaginatedResult[T] {
	return &domain.PaginatedResult[T]{Items: []T{}, TotalCount: 0, HasMore: false}
}

// paginateResult derives the page slice and counts from an effective
// (already filtered) set. TotalCount is the post-filter cardinality,
// never the raw fetch size.
func paginateResult[T any](items []T, page, limit int) *domain.PaginatedResult[T] {
	total := len(items)

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &domain.PaginatedResult[T]{
		Items:      items[start:end],
		TotalCount: total,
		HasMore:    page*limit < total,
	}
}

// sortProperties orders newest-first; with prioritizeStates active and
// no explicit state filter, priority-state rows sort ahead, ties broken
// by recency.
func (uc *SearchPropertiesUseCase) sortProperties(props []domain.Property, filters domain.FilterCriteria, opts domain.SearchOptions) {
	prioritize := opts.PrioritizeStates && filters.State == ""

	isPriority := func(state string) bool {
		for _, s := range uc.priorityStates {
			if s == state {
				return true
			}
		}
		return false
	}

	sort.SliceStable(props, func(i, j int) bool {
		if prioritize {
			pi, pj := isPriority(props[i].State), isPriority(props[j].State)
			if pi != pj {
				return pi
			}
		}
		return props[i].CreatedAt.After(props[j].CreatedAt)
	})
}

// matchesPostFilters applies the predicates the query layer cannot
// evaluate: price bounds and tenure.
func matchesPostFilters(p domain.Property, filters domain.FilterCriteria) bool {
	if filters.MinPrice != nil && (p.Price == nil || *p.Price < *filters.MinPrice) {
		return false
	}
	if filters.MaxPrice != nil && (p.Price == nil || *p.Price > *filters.MaxPrice) {
		return false
	}
	if filters.Tenure != "" && (p.Tenure == nil || *p.Tenure != filters.Tenure) {
		return false
	}
	return true
}
