package handlers

import (
	"net/http"

	"github.com/carteiralabs/carteira/internal/services"
)

type PriceHandler struct {
	prices services.PriceService
}

func NewPriceHandler(prices services.PriceService) *PriceHandler {
	return &PriceHandler{prices: prices}
}

// HandleCurrentPrice handles GET /api/prices/current?ticker=PETR4
// @Summary Get the current price for a ticker
// @Description Quote-only entry point. price is null when no candidate symbol resolved, never zero.
// @Tags prices
// @Produce json
// @Param ticker query string true "Ticker symbol"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {string} string "Bad request"
// @Router /prices/current [get]
func (h *PriceHandler) HandleCurrentPrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		http.Error(w, "ticker is required", http.StatusBadRequest)
		return
	}

	resp := map[string]interface{}{"ticker": ticker}
	if price, ok := h.prices.GetCurrentPrice(r.Context(), ticker); ok {
		resp["price"] = price
	} else {
		resp["price"] = nil
	}
	respondJSON(w, http.StatusOK, resp)
}
