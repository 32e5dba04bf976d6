package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSlug(t *testing.T) {
	id := uuid.MustParse("5f0c2d2e-98f3-4a1c-9a3a-1db56cabc123")

	t.Run("sale slug with agent", func(t *testing.T) {
		p := Property{
			ID:          id,
			Title:       "Cozy Condo in Mont Kiara",
			ListingType: ListingTypeSale,
			Contacts:    []Contact{{ID: uuid.New(), Name: "Jane Tan"}},
		}

		slug := MakeSlug(p)

		assert.Equal(t, "cozy-condo-in-mont-kiara-for-sale-by-jane-tan-6cabc123", slug)
		assert.True(t, strings.HasSuffix(slug, ShortID(id.String())))
	})

	t.Run("rent slug without agent", func(t *testing.T) {
		p := Property{
			ID:          id,
			Title:       "Studio Unit",
			ListingType: ListingTypeRent,
		}

		slug := MakeSlug(p)

		assert.Equal(t, "studio-unit-for-rent-"+ShortID(id.String()), slug)
	})

	t.Run("diacritics are stripped", func(t *testing.T) {
		p := Property{
			ID:          id,
			Title:       "Résidence Céline",
			ListingType: ListingTypeSale,
		}

		slug := MakeSlug(p)

		assert.Equal(t, "residence-celine-for-sale-"+ShortID(id.String()), slug)
	})
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "6cabc123", ShortID("5f0c2d2e-98f3-4a1c-9a3a-1db56cabc123"))
	assert.Equal(t, "abc", ShortID("ABC"))
}

func TestParseSlug(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		id := uuid.New()
		p := Property{ID: id, Title: "Sunny Terrace House", ListingType: ListingTypeSale}

		info := ParseSlug(MakeSlug(p))

		assert.Equal(t, ShortID(id.String()), info.ShortID)
		assert.Equal(t, []string{"sunny", "terrace", "house"}, info.TitleTokens)
	})

	t.Run("short tokens and stop words dropped", func(t *testing.T) {
		info := ParseSlug("home-in-kl-for-rent-abcd1234")

		assert.Equal(t, "abcd1234", info.ShortID)
		// "in" is a stop word, "kl" is below the minimum length.
		assert.Equal(t, []string{"home"}, info.TitleTokens)
	})

	t.Run("missing short code", func(t *testing.T) {
		info := ParseSlug("just-a-title-for-sale")
		assert.Empty(t, info.ShortID)
	})

	t.Run("empty slug", func(t *testing.T) {
		info := ParseSlug("   ")
		assert.Empty(t, info.ShortID)
		assert.Empty(t, info.TitleTokens)
	})

	t.Run("no marker yields no title tokens", func(t *testing.T) {
		info := ParseSlug("some-random-path-abcd1234")
		require.Equal(t, "abcd1234", info.ShortID)
		assert.Empty(t, info.TitleTokens)
	})
}
