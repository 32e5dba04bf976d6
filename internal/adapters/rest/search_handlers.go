package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port/usecases_port"
)

type PropertyHandlers struct {
	searchPropertiesUC      usecases_port.SearchPropertiesUseCase
	getPropertyByIDUC       usecases_port.GetPropertyByIDUseCase
	resolveSlugUC           usecases_port.ResolveSlugUseCase
	getFeaturedPropertiesUC usecases_port.GetFeaturedPropertiesUseCase
}

func NewPropertyHandlers(searchPropertiesUC usecases_port.SearchPropertiesUseCase,
	getPropertyByIDUC usecases_port.GetPropertyByIDUseCase,
	resolveSlugUC usecases_port.ResolveSlugUseCase,
	getFeaturedPropertiesUC usecases_port.GetFeaturedPropertiesUseCase) *PropertyHandlers {
	return &PropertyHandlers{
		searchPropertiesUC:      searchPropertiesUC,
		getPropertyByIDUC:       getPropertyByIDUC,
		resolveSlugUC:           resolveSlugUC,
		getFeaturedPropertiesUC: getFeaturedPropertiesUC,
	}
}

func (h *PropertyHandlers) SearchProperties(w http.ResponseWriter, r *http.Request) {
	page, err := GetPageOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "SearchProperties: invalid page value")
		return
	}

	limit, err := GetLimitOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "SearchProperties: invalid limit value")
		return
	}

	minPrice, err := GetOptionalFloat(r, "minPrice")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "SearchProperties: invalid minPrice value")
		return
	}

	maxPrice, err := GetOptionalFloat(r, "maxPrice")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "SearchProperties: invalid maxPrice value")
		return
	}

	bedrooms, err := GetOptionalInt(r, "bedrooms")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "SearchProperties: invalid bedrooms value")
		return
	}

	filters := domain.FilterCriteria{
		Location:     r.URL.Query().Get("location"),
		PropertyType: r.URL.Query().Get("propertyType"),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Bedrooms:     bedrooms,
		State:        r.URL.Query().Get("state"),
		ListingType:  r.URL.Query().Get("listingType"),
		Tenure:       r.URL.Query().Get("tenure"),
	}

	// Priority-state ordering is opt-in; the default is newest first.
	opts := domain.SearchOptions{}
	if raw := r.URL.Query().Get("prioritizeStates"); raw != "" {
		prioritize, err := strconv.ParseBool(raw)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "SearchProperties: invalid prioritizeStates value")
			return
		}
		opts.PrioritizeStates = prioritize
	}

	result, err := h.searchPropertiesUC.Execute(r.Context(), *page, *limit, filters, opts)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("SearchProperties: search failed: %v", err))
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedResponse[PropertyResponse]{
		Items:      toPropertyResponses(result.Items),
		TotalCount: result.TotalCount,
		HasMore:    result.HasMore,
		Page:       *page,
		Limit:      *limit,
	})
}

func (h *PropertyHandlers) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "propertyID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "GetPropertyByID: invalid property id")
		return
	}

	property, err := h.getPropertyByIDUC.Execute(r.Context(), id)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("GetPropertyByID: failed to load property: %v", err))
		return
	}
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "GetPropertyByID: property not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

func (h *PropertyHandlers) ResolveSlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		WriteJSONError(w, http.StatusBadRequest, "ResolveSlug: slug is required")
		return
	}

	property, err := h.resolveSlugUC.Execute(r.Context(), slug)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("ResolveSlug: failed to resolve slug: %v", err))
		return
	}
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "ResolveSlug: no property matches the slug")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

func (h *PropertyHandlers) GetFeaturedProperties(w http.ResponseWriter, r *http.Request) {
	limit, err := GetLimitOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "GetFeaturedProperties: invalid limit value")
		return
	}

	properties, err := h.getFeaturedPropertiesUC.Execute(r.Context(), *limit)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("GetFeaturedProperties: failed to load featured properties: %v", err))
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}
