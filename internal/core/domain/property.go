package domain

import (
	"time"

	"github.com/google/uuid"
)

// Property is the unified search view over a Listing regardless of its
// type. Exactly one detail sub-record determines Price; the remaining
// type-specific fields stay nil when the source record lacks them.
type Property struct {
	ID           uuid.UUID
	Title        string
	PropertyName string // legacy alias, mirrors Title
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

	Price        *float64
	PricePerSqft *float64
	Tenure       *string
	MonthlyRent  *float64
	BuiltYear    *int

	Contacts []Contact
	AgentID  *uuid.UUID // legacy alias, first contact
}
