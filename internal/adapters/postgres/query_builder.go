package postgres

import (
	"fmt"
	"strings"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: []string{"l.is_active = true"},
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyListingFilters translates the server-evaluable part of a listing
// query into a WHERE clause. Price and tenure never appear here: the
// query layer cannot range-filter joined sub-records cheaply, so those
// predicates stay in memory with the orchestrator.
func applyListingFilters(q domain.ListingQuery) (string, []interface{}) {
	qb := newQueryBuilder()

	if q.State != "" {
		qb.addCondition("%s = $%d", "l.state", q.State)
	}
	if q.ListingType != "" {
		qb.addCondition("%s = $%d", "l.listing_type", q.ListingType)
	}
	if q.PropertyType != "" {
		qb.addCondition("%s = $%d", "l.property_type", q.PropertyType)
	}
	if q.Bedrooms != nil {
		qb.addCondition("%s = $%d", "l.bedrooms", *q.Bedrooms)
	}

	// Single-token location match across the concatenated text columns.
	if q.LocationToken != "" {
		qb.addCondition("%s ILIKE $%d",
			"CONCAT_WS(' ', l.title, l.address, l.state, l.property_type)",
			"%"+q.LocationToken+"%")
	}

	return qb.build()
}

// orderClause builds the ORDER BY for a listing query. With priority
// states set, matching rows sort first; ties always break by recency
// then id for a stable pagination sequence.
func orderClause(q domain.ListingQuery, args []interface{}) (string, []interface{}) {
	if len(q.PriorityStates) > 0 {
		args = append(args, q.PriorityStates)
		return fmt.Sprintf("ORDER BY (l.state = ANY($%d)) DESC, l.created_at DESC, l.id ASC", len(args)), args
	}
	return "ORDER BY l.created_at DESC, l.id ASC", args
}
