package utils

import (
	"hospital-portal-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

// BuildListRegistrationsRequest reads the limit query parameter and clamps it
// to [1, maxLimit]. Missing or unparsable values fall back to defaultLimit.
func BuildListRegistrationsRequest(r *http.Request, defaultLimit, maxLimit int) *requests.ListRegistrations {
	limitStr := r.URL.Query().Get("limit")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return &requests.ListRegistrations{
		Limit: limit,
	}
}
