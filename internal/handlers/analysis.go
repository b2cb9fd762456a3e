package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/carteiralabs/carteira/internal/services"
)

type AnalysisHandler struct {
	service services.AnalysisService
}

func NewAnalysisHandler(service services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// HandleAssetAnalysis handles GET /api/assets/{ticker}/analysis
// @Summary Analyze one asset
// @Description Compute the current valuation snapshot for an asset. Market-dependent fields are null when no price could be resolved.
// @Tags analysis
// @Produce json
// @Param ticker path string true "Asset ticker"
// @Success 200 {object} models.AssetAnalysis
// @Failure 404 {string} string "Asset not found"
// @Failure 500 {string} string "Internal server error"
// @Router /assets/{ticker}/analysis [get]
func (h *AnalysisHandler) HandleAssetAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ticker := mux.Vars(r)["ticker"]
	if ticker == "" {
		http.Error(w, "ticker is required", http.StatusBadRequest)
		return
	}

	analysis, err := h.service.AnalyzeAsset(r.Context(), ticker)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, analysis)
}

// HandlePortfolioAnalysis handles GET /api/portfolio/analysis
// @Summary Analyze the whole portfolio
// @Description Compute the current valuation snapshot for every registered asset
// @Tags analysis
// @Produce json
// @Success 200 {array} models.AssetAnalysis
// @Failure 500 {string} string "Internal server error"
// @Router /portfolio/analysis [get]
func (h *AnalysisHandler) HandlePortfolioAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	analyses, err := h.service.AnalyzePortfolio(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, analyses)
}
