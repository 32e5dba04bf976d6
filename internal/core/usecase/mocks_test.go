package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

// stubListingStorage implements port.ListingStoragePort with per-method
// hooks so each test wires only what it exercises.
type stubListingStorage struct {
	findListings   func(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error)
	countListings  func(ctx context.Context, q domain.ListingQuery) (int, error)
	getListingByID func(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	findListingIDs func(ctx context.Context, q domain.ListingIDQuery) ([]uuid.UUID, error)

	findCalls  []domain.ListingQuery
	countCalls []domain.ListingQuery
	idCalls    []domain.ListingIDQuery
}

func (s *stubListingStorage) FindListings(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
	s.findCalls = append(s.findCalls, q)
	if s.findListings == nil {
		return []domain.Listing{}, nil
	}
	return s.findListings(ctx, q)
}

func (s *stubListingStorage) CountListings(ctx context.Context, q domain.ListingQuery) (int, error) {
	s.countCalls = append(s.countCalls, q)
	if s.countListings == nil {
		return 0, nil
	}
	return s.countListings(ctx, q)
}

func (s *stubListingStorage) GetListingByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	if s.getListingByID == nil {
		return nil, nil
	}
	return s.getListingByID(ctx, id)
}

func (s *stubListingStorage) FindListingIDs(ctx context.Context, q domain.ListingIDQuery) ([]uuid.UUID, error) {
	s.idCalls = append(s.idCalls, q)
	if s.findListingIDs == nil {
		return []uuid.UUID{}, nil
	}
	return s.findListingIDs(ctx, q)
}

type stubAgentStorage struct {
	findActiveListingContacts func(ctx context.Context, state string) ([]domain.AgentListingRow, error)
	findAgentsByIDs           func(ctx context.Context, ids []uuid.UUID) ([]domain.Agent, error)
	findAgentsAlphabetical    func(ctx context.Context, limit, offset int, excludeIDs []uuid.UUID) ([]domain.Agent, error)
	countAgents               func(ctx context.Context) (int, error)
}

func (s *stubAgentStorage) FindActiveListingContacts(ctx context.Context, state string) ([]domain.AgentListingRow, error) {
	if s.findActiveListingContacts == nil {
		return []domain.AgentListingRow{}, nil
	}
	return s.findActiveListingContacts(ctx, state)
}

func (s *stubAgentStorage) FindAgentsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Agent, error) {
	if s.findAgentsByIDs == nil {
		return []domain.Agent{}, nil
	}
	return s.findAgentsByIDs(ctx, ids)
}

func (s *stubAgentStorage) FindAgentsAlphabetical(ctx context.Context, limit, offset int, excludeIDs []uuid.UUID) ([]domain.Agent, error) {
	if s.findAgentsAlphabetical == nil {
		return []domain.Agent{}, nil
	}
	return s.findAgentsAlphabetical(ctx, limit, offset, excludeIDs)
}

func (s *stubAgentStorage) CountAgents(ctx context.Context) (int, error) {
	if s.countAgents == nil {
		return 0, nil
	}
	return s.countAgents(ctx)
}

type stubFilterRepo struct {
	distinctPropertyTypes func(ctx context.Context, listingType string) ([]string, error)
	getPriceRange         func(ctx context.Context, listingType string) (*domain.RangeResult, error)
}

func (s *stubFilterRepo) DistinctPropertyTypes(ctx context.Context, listingType string) ([]string, error) {
	if s.distinctPropertyTypes == nil {
		return []string{}, nil
	}
	return s.distinctPropertyTypes(ctx, listingType)
}

func (s *stubFilterRepo) GetPriceRange(ctx context.Context, listingType string) (*domain.RangeResult, error) {
	if s.getPriceRange == nil {
		return &domain.RangeResult{}, nil
	}
	return s.getPriceRange(ctx, listingType)
}

// stubCache records Set calls and serves a fixed map on Get.
type stubCache struct {
	values map[string]interface{}
	sets   map[string]interface{}
}

func newStubCache() *stubCache {
	return &stubCache{
		values: make(map[string]interface{}),
		sets:   make(map[string]interface{}),
	}
}

func (c *stubCache) Get(key string) (interface{}, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *stubCache) Set(key string, value interface{}, ttl time.Duration) {
	c.sets[key] = value
	c.values[key] = value
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
