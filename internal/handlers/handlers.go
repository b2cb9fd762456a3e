package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/carteiralabs/carteira/internal/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError maps service errors onto HTTP status codes: not-found to 404,
// duplicates and validation failures to 400, everything else to 500.
func respondError(w http.ResponseWriter, err error) {
	var notFound *apperrors.ErrNotFound
	var duplicate *apperrors.ErrDuplicate
	var validation *apperrors.ErrValidation

	switch {
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &duplicate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &validation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case strings.Contains(err.Error(), "validation failed"):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parsePagination(r *http.Request) (limit, offset int) {
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
			limit = v
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}
