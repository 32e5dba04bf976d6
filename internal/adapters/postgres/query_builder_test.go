package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

func TestApplyListingFilters(t *testing.T) {
	t.Run("no filters still pins active rows", func(t *testing.T) {
		where, args := applyListingFilters(domain.ListingQuery{})

		assert.Equal(t, "WHERE l.is_active = true", where)
		assert.Empty(t, args)
	})

	t.Run("all pushdown filters number their args in order", func(t *testing.T) {
		bedrooms := 3
		where, args := applyListingFilters(domain.ListingQuery{
			State:         "Selangor",
			ListingType:   "sale",
			PropertyType:  "Condo",
			Bedrooms:      &bedrooms,
			LocationToken: "kiara",
		})

		assert.Equal(t,
			"WHERE l.is_active = true"+
				" AND l.state = $1"+
				" AND l.listing_type = $2"+
				" AND l.property_type = $3"+
				" AND l.bedrooms = $4"+
				" AND CONCAT_WS(' ', l.title, l.address, l.state, l.property_type) ILIKE $5",
			where)
		assert.Equal(t, []interface{}{"Selangor", "sale", "Condo", 3, "%kiara%"}, args)
	})

	t.Run("location token is wrapped for substring match", func(t *testing.T) {
		_, args := applyListingFilters(domain.ListingQuery{LocationToken: "ampang"})
		assert.Equal(t, []interface{}{"%ampang%"}, args)
	})
}

func TestOrderClause(t *testing.T) {
	t.Run("default order is recency then id", func(t *testing.T) {
		clause, args := orderClause(domain.ListingQuery{}, nil)

		assert.Equal(t, "ORDER BY l.created_at DESC, l.id ASC", clause)
		assert.Empty(t, args)
	})

	t.Run("priority states prepend the state rank", func(t *testing.T) {
		states := []string{"Kuala Lumpur", "Selangor"}
		clause, args := orderClause(domain.ListingQuery{PriorityStates: states}, []interface{}{"existing"})

		assert.Equal(t, "ORDER BY (l.state = ANY($2)) DESC, l.created_at DESC, l.id ASC", clause)
		assert.Equal(t, []interface{}{"existing", states}, args)
	})
}
