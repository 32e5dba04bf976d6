package domain

import "github.com/google/uuid"

// FilterCriteria - caller-facing filter shape. Zero values mean "no constraint".
type FilterCriteria struct {
	Location     string
	PropertyType string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	State        string
	ListingType  string
	Tenure       string
}

// HasPostFilter reports whether the criteria contain fields the query
// layer cannot push down (price lives in the joined detail sub-records).
func (f FilterCriteria) HasPostFilter() bool {
	return f.MinPrice != nil || f.MaxPrice != nil || f.Tenure != ""
}

// SearchOptions tweak ordering, not the matched set.
type SearchOptions struct {
	PrioritizeStates bool
}

// PaginatedResult - standard shape for paginated responses.
// Invariant: HasMore == page*limit < TotalCount, and TotalCount always
// reflects the same filter set that produced Items.
type PaginatedResult[T any] struct {
	Items      []T
	TotalCount int
	HasMore    bool
}

// ListingQuery is what the storage layer can actually evaluate
// server-side. Deliberately no price or tenure fields: those live in
// joined sub-records and are applied in memory by the orchestrator.
type ListingQuery struct {
	State         string
	ListingType   string
	PropertyType  string
	Bedrooms      *int
	LocationToken string // single ILIKE token across title/address/state/property_type

	PriorityStates []string // non-empty: matching states sort first

	Limit  int
	Offset int
}

// ListingIDQuery narrows the lightweight ID-only lookups used by the
// slug resolver.
type ListingIDQuery struct {
	TitleTokens []string // conjunctive ILIKE patterns against the title
	Limit       int
	Offset      int
}

// FilterOptionsResult aggregates the option lists served to filter UIs.
type FilterOptionsResult struct {
	PropertyTypes []string
	PriceMin      float64
	PriceMax      float64
}

// RangeResult is a min/max pair from an aggregate query.
type RangeResult struct {
	Min float64
	Max float64
}

// AgentListingRow is one active listing-to-contact association, the
// input for per-request agent counters.
type AgentListingRow struct {
	ContactID   uuid.UUID
	ListingID   uuid.UUID
	ListingType string
	State       string
}
