package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

// FilterRepository serves the aggregate queries behind filter UIs.
// These are the expensive scans the TTL cache exists for.
type FilterRepository struct {
	pool *pgxpool.Pool
}

func NewFilterRepository(pool *pgxpool.Pool) (*FilterRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FilterRepository{pool: pool}, nil
}

// DistinctPropertyTypes lists the property types currently present on
// active listings, optionally narrowed to a listing type.
func (a *FilterRepository) DistinctPropertyTypes(ctx context.Context, listingType string) ([]string, error) {
	query := `
		SELECT DISTINCT property_type
		FROM listings
		WHERE is_active = true AND property_type IS NOT NULL AND property_type != ''`
	args := make([]interface{}, 0, 1)
	if listingType != "" {
		args = append(args, listingType)
		query += " AND listing_type = $1"
	}
	query += " ORDER BY property_type ASC"

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct property types: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err == nil {
			types = append(types, t)
		}
	}
	return types, rows.Err()
}

// GetPriceRange reports the min and max price of active listings. For
// the rent listing type the monthly rent is the price; everything else
// ranges over the sale price.
func (a *FilterRepository) GetPriceRange(ctx context.Context, listingType string) (*domain.RangeResult, error) {
	var query string
	args := make([]interface{}, 0, 1)

	if listingType == domain.ListingTypeRent {
		query = `
			SELECT COALESCE(MIN(rd.monthly_rent), 0), COALESCE(MAX(rd.monthly_rent), 0)
			FROM listings l
			JOIN listing_rent_details rd ON rd.listing_id = l.id
			WHERE l.is_active = true`
	} else {
		query = `
			SELECT COALESCE(MIN(sd.price), 0), COALESCE(MAX(sd.price), 0)
			FROM listings l
			JOIN listing_sale_details sd ON sd.listing_id = l.id
			WHERE l.is_active = true`
		if listingType != "" {
			args = append(args, listingType)
			query += " AND l.listing_type = $1"
		}
	}

	var res domain.RangeResult
	if err := a.pool.QueryRow(ctx, query, args...).Scan(&res.Min, &res.Max); err != nil {
		return nil, fmt.Errorf("failed to get price range: %w", err)
	}
	return &res, nil
}
