package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Kaneki016/superhomes-website-sub000/internal/constants"
)

const defaultPageLimit = 20

// WriteJSONError sends a JSON response with an "error" field and the
// given status code.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON sends the payload encoded as JSON.
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(payload)
}

func GetPageOrDefault(r *http.Request) (*int, error) {
	pageStr := r.URL.Query().Get("page")
	page := 1
	if pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)
		if err != nil {
			return nil, err
		}
	}
	return &page, nil
}

// GetLimitOrDefault parses the limit query parameter. Non-positive
// values fall back to the default and oversized values are clamped, so
// a caller cannot inflate fetch sizes or per-limit cache keys.
func GetLimitOrDefault(r *http.Request) (*int, error) {
	limitStr := r.URL.Query().Get("limit")
	limit := defaultPageLimit
	if limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			return nil, err
		}
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}
	return &limit, nil
}

// GetOptionalFloat parses an optional float query parameter. A missing
// parameter yields nil without error.
func GetOptionalFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// GetOptionalInt parses an optional int query parameter. A missing
// parameter yields nil without error.
func GetOptionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
