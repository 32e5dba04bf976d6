package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kaneki016/superhomes-website-sub000/internal/contextkeys"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
)

type AgentStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewAgentStorageAdapter(pool *pgxpool.Pool) (*AgentStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &AgentStorageAdapter{pool: pool}, nil
}

// FindActiveListingContacts returns one row per active
// listing-to-contact association; the ranking use case aggregates the
// counters from these.
func (a *AgentStorageAdapter) FindActiveListingContacts(ctx context.Context, state string) ([]domain.AgentListingRow, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "AgentStorageAdapter",
		"method":    "FindActiveListingContacts",
		"state":     state,
	})

	query := `
		SELECT lc.contact_id, l.id, l.listing_type, l.state
		FROM listings l
		JOIN listing_contacts lc ON lc.listing_id = l.id
		WHERE l.is_active = true`
	args := make([]interface{}, 0, 1)
	if state != "" {
		args = append(args, state)
		query += " AND l.state = $1"
	}

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query listing contacts", err, nil)
		return nil, fmt.Errorf("failed to query active listing contacts: %w", err)
	}
	defer rows.Close()

	assocs := make([]domain.AgentListingRow, 0)
	for rows.Next() {
		var row domain.AgentListingRow
		if err := rows.Scan(&row.ContactID, &row.ListingID, &row.ListingType, &row.State); err != nil {
			return nil, fmt.Errorf("failed to scan listing contact row: %w", err)
		}
		assocs = append(assocs, row)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during listing contacts rows iteration", err, nil)
		return nil, err
	}

	repoLogger.Debug("Successfully found listing contacts", port.Fields{"count": len(assocs)})
	return assocs, nil
}

// FindAgentsByIDs bulk-fetches agents. Result order is whatever the
// store returns; callers re-project through their own ID list.
func (a *AgentStorageAdapter) FindAgentsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Agent, error) {
	if len(ids) == 0 {
		return []domain.Agent{}, nil
	}

	query := `
		SELECT id, name, email, phone, agency_name
		FROM contacts
		WHERE id = ANY($1)`

	rows, err := a.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents by ids: %w", err)
	}
	defer rows.Close()

	agents := make([]domain.Agent, 0, len(ids))
	for rows.Next() {
		var agent domain.Agent
		if err := rows.Scan(&agent.ID, &agent.Name, &agent.Email, &agent.Phone, &agent.AgencyName); err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, agent)
	}
	return agents, rows.Err()
}

// FindAgentsAlphabetical pages agents ordered by name, optionally
// excluding an ID set (the already-ranked agents).
func (a *AgentStorageAdapter) FindAgentsAlphabetical(ctx context.Context, limit, offset int, excludeIDs []uuid.UUID) ([]domain.Agent, error) {
	query := `
		SELECT id, name, email, phone, agency_name
		FROM contacts
		WHERE NOT (id = ANY($1))
		ORDER BY name ASC, id ASC
		LIMIT $2 OFFSET $3`

	if excludeIDs == nil {
		excludeIDs = []uuid.UUID{}
	}

	rows, err := a.pool.Query(ctx, query, excludeIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents alphabetically: %w", err)
	}
	defer rows.Close()

	agents := make([]domain.Agent, 0, limit)
	for rows.Next() {
		var agent domain.Agent
		if err := rows.Scan(&agent.ID, &agent.Name, &agent.Email, &agent.Phone, &agent.AgencyName); err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, agent)
	}
	return agents, rows.Err()
}

func (a *AgentStorageAdapter) CountAgents(ctx context.Context) (int, error) {
	var count int64
	if err := a.pool.QueryRow(ctx, "SELECT COUNT(*) FROM contacts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count agents: %w", err)
	}
	return int(count), nil
}
