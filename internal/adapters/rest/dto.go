package rest

import (
	"time"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
)

// PropertyResponse is the API shape of a unified property.
type PropertyResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	PropertyName string            `json:"propertyName"`
	Address      string            `json:"address"`
	State        string            `json:"state"`
	PropertyType string            `json:"propertyType"`
	Bedrooms     *int              `json:"bedrooms,omitempty"`
	Latitude     *float64          `json:"latitude,omitempty"`
	Longitude    *float64          `json:"longitude,omitempty"`
	Images       []string          `json:"images"`
	ListingType  string            `json:"listingType"`
	Price        *float64          `json:"price,omitempty"`
	PricePerSqft *float64          `json:"pricePerSqft,omitempty"`
	Tenure       *string           `json:"tenure,omitempty"`
	MonthlyRent  *float64          `json:"monthlyRent,omitempty"`
	BuiltYear    *int              `json:"builtYear,omitempty"`
	Slug         string            `json:"slug"`
	Contacts     []ContactResponse `json:"contacts"`
	AgentID      *string           `json:"agentId,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type ContactResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	AgencyName string `json:"agencyName"`
}

type AgentResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	AgencyName           string `json:"agencyName"`
	ListingsForSaleCount int    `json:"listingsForSaleCount"`
	ListingsForRentCount int    `json:"listingsForRentCount"`
}

// PaginatedResponse wraps a page of items with its pagination metadata.
type PaginatedResponse[T any] struct {
	Items      []T  `json:"items"`
	TotalCount int  `json:"totalCount"`
	HasMore    bool `json:"hasMore"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
}

type FilterOptionsResponse struct {
	PropertyTypes []string `json:"propertyTypes"`
	PriceMin      float64  `json:"priceMin"`
	PriceMax      float64  `json:"priceMax"`
}

type PointRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RegionMetricsRequest struct {
	Polygon []PointRequest `json:"polygon"`
}

type RegionMetricsResponse struct {
	Count           int     `json:"count"`
	AvgPrice        float64 `json:"avgPrice"`
	AvgPricePerSqft float64 `json:"avgPricePerSqft"`
	MinPrice        float64 `json:"minPrice"`
	MaxPrice        float64 `json:"maxPrice"`
}

func toContactResponses(contacts []domain.Contact) []ContactResponse {
	out := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		out[i] = ContactResponse{
			ID:         c.ID.String(),
			Name:       c.Name,
			Email:      c.Email,
			Phone:      c.Phone,
			AgencyName: c.AgencyName,
		}
	}
	return out
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:           p.ID.String(),
		Title:        p.Title,
		PropertyName: p.PropertyName,
		Address:      p.Address,
		State:        p.State,
		PropertyType: p.PropertyType,
		Bedrooms:     p.Bedrooms,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Images:       p.Images,
		ListingType:  p.ListingType,
		Price:        p.Price,
		PricePerSqft: p.PricePerSqft,
		Tenure:       p.Tenure,
		MonthlyRent:  p.MonthlyRent,
		BuiltYear:    p.BuiltYear,
		Contacts:     toContactResponses(p.Contacts),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if p.AgentID != nil {
		agentID := p.AgentID.String()
		resp.AgentID = &agentID
	}
	resp.Slug = domain.MakeSlug(p)
	return resp
}

func toPropertyResponses(properties []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		out[i] = toPropertyResponse(p)
	}
	return out
}

func toAgentResponses(agents []domain.Agent) []AgentResponse {
	out := make([]AgentResponse, len(agents))
	for i, a := range agents {
		out[i] = AgentResponse{
			ID:                   a.ID.String(),
			Name:                 a.Name,
			Email:                a.Email,
			Phone:                a.Phone,
			AgencyName:           a.AgencyName,
			ListingsForSaleCount: a.ListingsForSaleCount,
			ListingsForRentCount: a.ListingsForRentCount,
		}
	}
	return out
}
