package domain

import "github.com/google/uuid"

// Agent is a contact enriched with per-request listing counters.
// The counters are never stored; they are recomputed from live
// associations on every request.
type Agent struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Phone      string
	AgencyName string

	ListingsForSaleCount int
	ListingsForRentCount int
}
