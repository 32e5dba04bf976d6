package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing type discriminants as stored in listings.listing_type.
const (
	ListingTypeSale    = "sale"
	ListingTypeRent    = "rent"
	ListingTypeProject = "project"
)

// Listing is a raw joined row: the core listings record plus at most one
// detail sub-record per type and the linked contacts.
type Listing struct {
	ID           uuid.UUID
	Title        string
	Address      string
	State        string
	PropertyType string
	Bedrooms     *int
	Latitude     *float64
	Longitude    *float64
	Images       []string
	IsActive     bool
	ListingType  string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	SaleDetails    *SaleDetails
	RentDetails    *RentDetails
	ProjectDetails *ProjectDetails

	Contacts []Contact
}

type SaleDetails struct {
	Price        *float64
	PricePerSqft *float64
	Tenure       *string
	BuiltYear    *int
}

type RentDetails struct {
	MonthlyRent *float64
	Tenure      *string
}

// ProjectDetails carries the developer-supplied price as free-form text
// ("RM 450,000 onwards"); coercion to a number happens in UnifyListing.
type ProjectDetails struct {
	PriceText *string
	BuiltYear *int
}

type Contact struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Phone      string
	AgencyName string
}
