package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Kaneki016/superhomes-website-sub000/internal/contracts"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/domain"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port/usecases_port"
)

const regionMetricsBodyLimit = 1 << 20 // 1 MiB

type MetaHandlers struct {
	getFilterOptionsUC     usecases_port.GetFilterOptionsUseCase
	computeRegionMetricsUC usecases_port.ComputeRegionMetricsUseCase
}

func NewMetaHandlers(getFilterOptionsUC usecases_port.GetFilterOptionsUseCase,
	computeRegionMetricsUC usecases_port.ComputeRegionMetricsUseCase) *MetaHandlers {
	return &MetaHandlers{
		getFilterOptionsUC:     getFilterOptionsUC,
		computeRegionMetricsUC: computeRegionMetricsUC,
	}
}

func (h *MetaHandlers) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	listingType := r.URL.Query().Get("listingType")

	options, err := h.getFilterOptionsUC.Execute(r.Context(), listingType)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("GetFilterOptions: failed to load filter options: %v", err))
		return
	}

	resp := FilterOptionsResponse{
		PropertyTypes: options.PropertyTypes,
		PriceMin:      options.PriceMin,
		PriceMax:      options.PriceMax,
	}
	if resp.PropertyTypes == nil {
		resp.PropertyTypes = []string{}
	}

	RespondWithJSON(w, http.StatusOK, resp)
}

func (h *MetaHandlers) ComputeRegionMetrics(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, regionMetricsBodyLimit))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "ComputeRegionMetrics: failed to read request body")
		return
	}

	if err := contracts.ValidateRequest("RegionMetricsRequest", "1.0.0", body); err != nil {
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("ComputeRegionMetrics: invalid request: %v", err))
		return
	}

	var req RegionMetricsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "ComputeRegionMetrics: failed to decode request body")
		return
	}

	polygon := make([]domain.Point, len(req.Polygon))
	for i, p := range req.Polygon {
		polygon[i] = domain.Point{Lat: p.Lat, Lng: p.Lng}
	}

	metrics, err := h.computeRegionMetricsUC.Execute(r.Context(), polygon)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("ComputeRegionMetrics: failed to compute metrics: %v", err))
		return
	}

	RespondWithJSON(w, http.StatusOK, RegionMetricsResponse{
		Count:           metrics.Count,
		AvgPrice:        metrics.AvgPrice,
		AvgPricePerSqft: metrics.AvgPricePerSqft,
		MinPrice:        metrics.MinPrice,
		MaxPrice:        metrics.MaxPrice,
	})
}
