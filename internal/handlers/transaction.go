package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/carteiralabs/carteira/internal/models"
	"github.com/carteiralabs/carteira/internal/services"
)

type TransactionHandler struct {
	service services.TransactionService
}

func NewTransactionHandler(service services.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// HandleAssetTransactions handles the transaction collection of one asset.
// @Summary List or create transactions for an asset
// @Description Get the transaction history of an asset or record a new buy/sell
// @Tags transactions
// @Accept json
// @Produce json
// @Param ticker path string true "Asset ticker"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Transaction
// @Failure 400 {string} string "Invalid request"
// @Failure 404 {string} string "Asset not found"
// @Failure 500 {string} string "Internal server error"
// @Router /assets/{ticker}/transactions [get]
// @Router /assets/{ticker}/transactions [post]
func (h *TransactionHandler) HandleAssetTransactions(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]
	if ticker == "" {
		http.Error(w, "ticker is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		limit, offset := parsePagination(r)
		txs, err := h.service.ListTransactions(r.Context(), ticker, limit, offset)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, txs)
	case http.MethodPost:
		var tx models.Transaction
		if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		created, err := h.service.CreateTransaction(r.Context(), ticker, &tx)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleTransaction handles item-level operations for a transaction.
// @Summary Update or delete a transaction
// @Description Operate on a single transaction by ID
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal server error"
// @Router /transactions/{id} [put]
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) HandleTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "transaction ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var tx models.Transaction
		if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		tx.ID = id
		if err := h.service.UpdateTransaction(r.Context(), &tx); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, tx)
	case http.MethodDelete:
		if err := h.service.DeleteTransaction(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
