package usecase

import (
	"context"
	"strings"

	"github.com/Kaneki016/superhomes-website-sub000/internal/constants"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

// searchStrategy is one filter/pagination plan. Strategies are tried in
// order; the first canHandle winner executes.
type searchStrategy interface {
	name() string
	canHandle(filters domain.FilterCriteria) bool
	execute(ctx context.Context, page, limit int, filters domain.FilterCriteria, opts domain.SearchOptions) (*domain.PaginatedResult[domain.Property], error)
}

// locationTokens extracts the significant tokens of the free-text
// location filter (stop-words and single characters dropped).
func locationTokens(filters domain.FilterCriteria) []string {
	return domain.Tokenize(filters.Location, 2)
}

// baseQuery pushes down everything the store can evaluate.
func baseQuery(filters domain.FilterCriteria) domain.ListingQuery {
	return domain.ListingQuery{
		State:        filters.State,
		ListingType:  filters.ListingType,
		PropertyType: filters.PropertyType,
		Bedrooms:     filters.Bedrooms,
	}
}

// multiWordLocationStrategy handles free-text locations with at least
// two significant tokens. The store predicate cannot express "all
// tokens across multiple columns", so the first token prunes cheaply
// server-side (widest net, bounded) and the remaining tokens are
// verified in memory against the concatenated text fields.
type multiWordLocationStrategy struct {
	uc *SearchPropertiesUseCase
}

func (s *multiWordLocationStrategy) name() string { return "multi_word_location" }

func (s *multiWordLocationStrategy) canHandle(filters domain.FilterCriteria) bool {
	return len(locationTokens(filters)) >= 2
}

func (s *multiWordLocationStrategy) execute(ctx context.Context, page, limit int, filters domain.FilterCriteria, opts domain.SearchOptions) (*domain.PaginatedResult[domain.Property], error) {
	tokens := locationTokens(filters)

	q := baseQuery(filters)
	q.LocationToken = tokens[0]
	q.Limit = constants.MaxCandidateRows

	listings, err := s.uc.storage.FindListings(ctx, q)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Property, 0, len(listings))
	for _, l := range listings {
		p := domain.UnifyListing(l)
		haystack := strings.Join([]string{p.Title, p.PropertyName, p.Address, p.State, p.PropertyType}, " ")
		if !domain.MatchesAllTokens(haystack, tokens) {
			continue
		}
		if !matchesPostFilters(p, filters) {
			continue
		}
		matched = append(matched, p)
	}

	s.uc.sortProperties(matched, filters, opts)
	return paginateResult(matched, page, limit), nil
}

// postFilterStrategy handles price/tenure filters without a multi-word
// location: the full bounded candidate set is fetched with every other
// filter pushed down, then price/tenure are applied as an in-memory
// predicate.
type postFilterStrategy struct {
	uc *SearchPropertiesUseCase
}

func (s *postFilterStrategy) name() string { return "in_memory_post_filter" }

func (s *postFilterStrategy) canHandle(filters domain.FilterCriteria) bool {
	return filters.HasPostFilter()
}

func (s *postFilterStrategy) execute(ctx context.Context, page, limit int, filters domain.FilterCriteria, opts domain.SearchOptions) (*domain.PaginatedResult[domain.Property], error) {
	q := baseQuery(filters)
	if tokens := locationTokens(filters); len(tokens) == 1 {
		q.LocationToken = tokens[0]
	}
	q.Limit = constants.MaxCandidateRows

	listings, err := s.uc.storage.FindListings(ctx, q)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Property, 0, len(listings))
	for _, l := range listings {
		p := domain.UnifyListing(l)
		if matchesPostFilters(p, filters) {
			matched = append(matched, p)
		}
	}

	s.uc.sortProperties(matched, filters, opts)
	return paginateResult(matched, page, limit), nil
}

// pushdownStrategy is the cheap, scalable path: every filter goes to
// the store, the count query provides TotalCount and only one page of
// rows is fetched.
type pushdownStrategy struct {
	uc *SearchPropertiesUseCase
}

func (s *pushdownStrategy) name() string { return "pushdown" }

func (s *pushdownStrategy) canHandle(domain.FilterCriteria) bool { return true }

func (s *pushdownStrategy) execute(ctx context.Context, page, limit int, filters domain.FilterCriteria, opts domain.SearchOptions) (*domain.PaginatedResult[domain.Property], error) {
	q := baseQuery(filters)
	if tokens := locationTokens(filters); len(tokens) == 1 {
		q.LocationToken = tokens[0]
	}
	if opts.PrioritizeStates && filters.State == "" {
		q.PriorityStates = s.uc.priorityStates
	}

	totalCount, err := s.uc.storage.CountListings(ctx, q)
	if err != nil {
		return nil, err
	}
	if totalCount == 0 {
		return emptyPage[domain.Property](), nil
	}

	q.Limit = limit
	q.Offset = (page - 1) * limit

	listings, err := s.uc.storage.FindListings(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Property, 0, len(listings))
	for _, l := range listings {
		items = append(items, domain.UnifyListing(l))
	}

	return &domain.PaginatedResult[domain.Property]{
		Items:      items,
		TotalCount: totalCount,
		HasMore:    page*limit < totalCount,
	}, nil
}
