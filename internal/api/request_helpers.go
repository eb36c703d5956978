package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/krongr/adboard/internal/domain"
)

// getPathID extracts a numeric entity ID from the URL path parameters.
// It parses and validates the ID, handling common error cases.
//
// Returns the parsed ID, or an error if the parameter is missing or is not a
// positive integer.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: ad ID is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: ad ID must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}
