package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kaneki016/superhomes-website-sub000/internal/contextkeys"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
)

// listingSelectColumns is shared by every query that materializes full
// listing rows: core fields plus the three LEFT JOINed detail
// sub-records. The detail listing_id columns double as presence
// markers.
const listingSelectColumns = `
	l.id, l.title, l.address, l.state, l.property_type, l.bedrooms,
	l.latitude, l.longitude, l.images, l.is_active, l.listing_type,
	l.created_at, l.updated_at,
	sd.listing_id, sd.price, sd.price_per_sqft, sd.tenure, sd.built_year,
	rd.listing_id, rd.monthly_rent, rd.tenure,
	pd.listing_id, pd.price_text, pd.built_year`

const listingFromClause = `
	FROM listings l
	LEFT JOIN listing_sale_details sd ON sd.listing_id = l.id
	LEFT JOIN listing_rent_details rd ON rd.listing_id = l.id
	LEFT JOIN listing_project_details pd ON pd.listing_id = l.id`

type ListingStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewListingStorageAdapter(pool *pgxpool.Pool) (*ListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ListingStorageAdapter{pool: pool}, nil
}

func (a *ListingStorageAdapter) FindListings(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ListingStorageAdapter",
		"method":    "FindListings",
		"limit":     q.Limit,
		"offset":    q.Offset,
	})

	whereClause, args := applyListingFilters(q)
	order, args := orderClause(q, args)

	var query strings.Builder
	query.WriteString("SELECT ")
	query.WriteString(listingSelectColumns)
	query.WriteString(listingFromClause)
	query.WriteString(" ")
	query.WriteString(whereClause)
	query.WriteString(" ")
	query.WriteString(order)

	args = append(args, q.Limit, q.Offset)
	query.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	rows, err := a.pool.Query(ctx, query.String(), args...)
	if err != nil {
		repoLogger.Error("Failed to query listings", err, nil)
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0, q.Limit)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during listings rows iteration", err, nil)
		return nil, err
	}

	if err := a.attachContacts(ctx, listings); err != nil {
		repoLogger.Error("Failed to attach contacts", err, nil)
		return nil, err
	}

	repoLogger.Debug("Successfully found listings", port.Fields{"count": len(listings)})
	return listings, nil
}

func (a *ListingStorageAdapter) CountListings(ctx context.Context, q domain.ListingQuery) (int, error) {
	whereClause, args := applyListingFilters(q)

	query := fmt.Sprintf("SELECT COUNT(*) FROM listings l %s", whereClause)

	var count int64
	if err := a.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return int(count), nil
}

// GetListingByID returns nil when no row exists.
func (a *ListingStorageAdapter) GetListingByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ListingStorageAdapter",
		"method":     "GetListingByID",
		"listing_id": id,
	})

	query := "SELECT " + listingSelectColumns + listingFromClause + " WHERE l.id = $1"

	rows, err := a.pool.Query(ctx, query, id)
	if err != nil {
		repoLogger.Error("Failed to query listing by id", err, nil)
		return nil, fmt.Errorf("failed to query listing by id: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		repoLogger.Debug("Listing not found", nil)
		return nil, nil
	}

	listing, err := scanListing(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan listing: %w", err)
	}
	rows.Close()

	page := []domain.Listing{listing}
	if err := a.attachContacts(ctx, page); err != nil {
		repoLogger.Error("Failed to attach contacts", err, nil)
		return nil, err
	}

	return &page[0], nil
}

// FindListingIDs is the lightweight ID-only lookup for the slug
// resolver: either a conjunctive title-pattern fetch or a plain stable
// page of the full ID space.
func (a *ListingStorageAdapter) FindListingIDs(ctx context.Context, q domain.ListingIDQuery) ([]uuid.UUID, error) {
	conditions := []string{"l.is_active = true"}
	args := make([]interface{}, 0, len(q.TitleTokens)+2)

	for _, tok := range q.TitleTokens {
		args = append(args, "%"+tok+"%")
		conditions = append(conditions, fmt.Sprintf("l.title ILIKE $%d", len(args)))
	}

	args = append(args, q.Limit, q.Offset)
	query := fmt.Sprintf(
		"SELECT l.id FROM listings l WHERE %s ORDER BY l.id ASC LIMIT $%d OFFSET $%d",
		strings.Join(conditions, " AND "), len(args)-1, len(args),
	)

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listing ids: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, q.Limit)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan listing id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanListing(rows pgx.Rows) (domain.Listing, error) {
	var l domain.Listing
	var saleID, rentID, projectID *uuid.UUID
	var sale domain.SaleDetails
	var rent domain.RentDetails
	var project domain.ProjectDetails

	err := rows.Scan(
		&l.ID, &l.Title, &l.Address, &l.State, &l.PropertyType, &l.Bedrooms,
		&l.Latitude, &l.Longitude, &l.Images, &l.IsActive, &l.ListingType,
		&l.CreatedAt, &l.UpdatedAt,
		&saleID, &sale.Price, &sale.PricePerSqft, &sale.Tenure, &sale.BuiltYear,
		&rentID, &rent.MonthlyRent, &rent.Tenure,
		&projectID, &project.PriceText, &project.BuiltYear,
	)
	if err != nil {
		return domain.Listing{}, err
	}

	if saleID != nil {
		l.SaleDetails = &sale
	}
	if rentID != nil {
		l.RentDetails = &rent
	}
	if projectID != nil {
		l.ProjectDetails = &project
	}
	return l, nil
}

// attachContacts bulk-loads the contact links for one page of listings.
// Position order matters: the first link becomes the legacy agent_id.
func (a *ListingStorageAdapter) attachContacts(ctx context.Context, listings []domain.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(listings))
	index := make(map[uuid.UUID]int, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
		index[l.ID] = i
	}

	query := `
		SELECT lc.listing_id, c.id, c.name, c.email, c.phone, c.agency_name
		FROM listing_contacts lc
		JOIN contacts c ON c.id = lc.contact_id
		WHERE lc.listing_id = ANY($1)
		ORDER BY lc.listing_id, lc.position ASC`

	rows, err := a.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query listing contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var listingID uuid.UUID
		var c domain.Contact
		if err := rows.Scan(&listingID, &c.ID, &c.Name, &c.Email, &c.Phone, &c.AgencyName); err != nil {
			return fmt.Errorf("failed to scan listing contact: %w", err)
		}
		if i, ok := index[listingID]; ok {
			listings[i].Contacts = append(listings[i].Contacts, c)
		}
	}
	return rows.Err()
}
