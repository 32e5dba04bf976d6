package domain

import "strings"

// ShortIDLength is the number of trailing identifier characters encoded
// in a slug.
const ShortIDLength = 8

const (
	markerForSale = "-for-sale"
	markerForRent = "-for-rent"
)

// SlugInfo is the parsed form of an incoming SEO slug.
type SlugInfo struct {
	TitleTokens []string
	ShortID     string
}

// MakeSlug builds the canonical SEO slug for a property:
// {titleSlug}-for-{sale|rent}[-by-{agentSlug}]-{8charShortId}.
func MakeSlug(p Property) string {
	var b strings.Builder
	b.WriteString(slugify(p.Title))

	if p.ListingType == ListingTypeRent {
		b.WriteString(markerForRent)
	} else {
		b.WriteString(markerForSale)
	}

	if len(p.Contacts) > 0 {
		if agent := slugify(p.Contacts[0].Name); agent != "" {
			b.WriteString("-by-")
			b.WriteString(agent)
		}
	}

	b.WriteByte('-')
	b.WriteString(ShortID(p.ID.String()))
	return b.String()
}

// ShortID derives the short code from a canonical identifier: its last
// 8 characters, lowercased.
func ShortID(id string) string {
	if len(id) <= ShortIDLength {
		return strings.ToLower(id)
	}
	return strings.ToLower(id[len(id)-ShortIDLength:])
}

// ParseSlug extracts the presumed title tokens and the trailing short
// code from a slug. A missing or malformed short code yields an empty
// ShortID; the caller decides whether that is resolvable.
func ParseSlug(slug string) SlugInfo {
	info := SlugInfo{}

	lowered := strings.ToLower(strings.TrimSpace(slug))
	if lowered == "" {
		return info
	}

	if i := strings.LastIndex(lowered, "-"); i >= 0 && len(lowered)-i-1 == ShortIDLength {
		info.ShortID = lowered[i+1:]
	}

	marker := strings.Index(lowered, markerForSale)
	if marker < 0 {
		marker = strings.Index(lowered, markerForRent)
	}
	if marker > 0 {
		// Tokens shorter than 3 characters carry no signal for a
		// conjunctive title match.
		info.TitleTokens = Tokenize(lowered[:marker], 3)
	}
	return info
}
