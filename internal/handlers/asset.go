package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/carteiralabs/carteira/internal/models"
	"github.com/carteiralabs/carteira/internal/services"
)

type AssetHandler struct {
	service services.AssetService
}

func NewAssetHandler(service services.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

// HandleAssets handles collection-level operations for assets.
// @Summary List or create assets
// @Description Get the list of registered assets or register a new one
// @Tags assets
// @Accept json
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Asset
// @Failure 400 {string} string "Invalid request"
// @Failure 500 {string} string "Internal server error"
// @Router /assets [get]
// @Router /assets [post]
func (h *AssetHandler) HandleAssets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit, offset := parsePagination(r)
		assets, err := h.service.ListAssets(r.Context(), limit, offset)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, assets)
	case http.MethodPost:
		var asset models.Asset
		if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := h.service.CreateAsset(r.Context(), &asset); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, asset)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleAsset handles item-level operations for an asset.
// @Summary Get, update, or delete an asset
// @Description Operate on a single asset by ticker
// @Tags assets
// @Accept json
// @Produce json
// @Param ticker path string true "Asset ticker"
// @Success 200 {object} models.Asset
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal server error"
// @Router /assets/{ticker} [get]
// @Router /assets/{ticker} [put]
// @Router /assets/{ticker} [delete]
func (h *AssetHandler) HandleAsset(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]
	if ticker == "" {
		http.Error(w, "ticker is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		asset, err := h.service.GetAssetByTicker(r.Context(), ticker)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, asset)
	case http.MethodPut:
		existing, err := h.service.GetAssetByTicker(r.Context(), ticker)
		if err != nil {
			respondError(w, err)
			return
		}
		var asset models.Asset
		if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		asset.ID = existing.ID
		if asset.Ticker == "" {
			asset.Ticker = existing.Ticker
		}
		if err := h.service.UpdateAsset(r.Context(), &asset); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, asset)
	case http.MethodDelete:
		if err := h.service.DeleteAsset(r.Context(), ticker); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
