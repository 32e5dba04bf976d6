package domain

import (
	"strconv"
	"strings"
)

// UnifyListing converts one raw joined row into the unified Property
// view. Pure and total: malformed price strings become nil, never an
// error.
func UnifyListing(l Listing) Property {
	p := Property{
		ID:           l.ID,
		Title:        l.Title,
		PropertyName: l.Title,
		Address:      l.Address,
		State:        l.State,
		PropertyType: l.PropertyType,
		Bedrooms:     l.Bedrooms,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		Images:       l.Images,
		IsActive:     l.IsActive,
		ListingType:  l.ListingType,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
		Contacts:     l.Contacts,
	}

	if len(l.Contacts) > 0 {
		agentID := l.Contacts[0].ID
		p.AgentID = &agentID
	}

	// The discriminant picks the preferred sub-record; if it is absent
	// or carries no price, the remaining kinds are tried in a fixed
	// order (sale -> rent -> project) before Price stays nil.
	for _, kind := range fallbackOrder(l.ListingType) {
		if applyDetails(&p, l, kind) {
			return p
		}
	}
	return p
}

func fallbackOrder(listingType string) []string {
	order := []string{ListingTypeSale, ListingTypeRent, ListingTypeProject}
	switch listingType {
	case ListingTypeRent:
		return []string{ListingTypeRent, ListingTypeSale, ListingTypeProject}
	case ListingTypeProject:
		return []string{ListingTypeProject, ListingTypeSale, ListingTypeRent}
	default:
		return order
	}
}

// applyDetails populates the price-bearing fields from one sub-record
// kind. Returns true when a price was extracted, stopping the chain.
func applyDetails(p *Property, l Listing, kind string) bool {
	switch kind {
	case ListingTypeSale:
		d := l.SaleDetails
		if d == nil || d.Price == nil {
			return false
		}
		p.Price = d.Price
		p.PricePerSqft = d.PricePerSqft
		p.Tenure = d.Tenure
		p.BuiltYear = d.BuiltYear
		return true

	case ListingTypeRent:
		d := l.RentDetails
		if d == nil || d.MonthlyRent == nil {
			return false
		}
		p.Price = d.MonthlyRent
		p.MonthlyRent = d.MonthlyRent
		p.Tenure = d.Tenure
		return true

	case ListingTypeProject:
		d := l.ProjectDetails
		if d == nil || d.PriceText == nil {
			return false
		}
		price := CoercePrice(*d.PriceText)
		if price == nil {
			return false
		}
		p.Price = price
		p.BuiltYear = d.BuiltYear
		return true
	}
	return false
}

// CoercePrice extracts a number from a free-form price string by
// stripping every rune except digits and dots. Invalid parses yield
// nil.
func CoercePrice(raw string) *float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return nil
	}
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &val
}
