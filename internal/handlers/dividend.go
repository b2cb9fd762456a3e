package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/carteiralabs/carteira/internal/models"
	"github.com/carteiralabs/carteira/internal/services"
)

type DividendHandler struct {
	service services.DividendService
}

func NewDividendHandler(service services.DividendService) *DividendHandler {
	return &DividendHandler{service: service}
}

// HandleAssetDividends handles the dividend collection of one asset.
// @Summary List or create dividends for an asset
// @Description Get the dividend history of an asset or record a new payment
// @Tags dividends
// @Accept json
// @Produce json
// @Param ticker path string true "Asset ticker"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Dividend
// @Failure 400 {string} string "Invalid request"
// @Failure 404 {string} string "Asset not found"
// @Failure 500 {string} string "Internal server error"
// @Router /assets/{ticker}/dividends [get]
// @Router /assets/{ticker}/dividends [post]
func (h *DividendHandler) HandleAssetDividends(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]
	if ticker == "" {
		http.Error(w, "ticker is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		limit, offset := parsePagination(r)
		dividends, err := h.service.ListDividends(r.Context(), ticker, limit, offset)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, dividends)
	case http.MethodPost:
		var dividend models.Dividend
		if err := json.NewDecoder(r.Body).Decode(&dividend); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		created, err := h.service.CreateDividend(r.Context(), ticker, &dividend)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleDividend handles item-level operations for a dividend.
// @Summary Update or delete a dividend
// @Description Operate on a single dividend by ID
// @Tags dividends
// @Accept json
// @Produce json
// @Param id path string true "Dividend ID"
// @Success 200 {object} models.Dividend
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal server error"
// @Router /dividends/{id} [put]
// @Router /dividends/{id} [delete]
func (h *DividendHandler) HandleDividend(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "dividend ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var dividend models.Dividend
		if err := json.NewDecoder(r.Body).Decode(&dividend); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		dividend.ID = id
		if err := h.service.UpdateDividend(r.Context(), &dividend); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, dividend)
	case http.MethodDelete:
		if err := h.service.DeleteDividend(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
