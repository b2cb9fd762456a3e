package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/carteiralabs/carteira/internal/models"
	"github.com/carteiralabs/carteira/internal/services"
)

type AgentHandler struct {
	service services.AgentService
}

func NewAgentHandler(service services.AgentService) *AgentHandler {
	return &AgentHandler{service: service}
}

// HandleActions handles the agent action log and execution endpoint.
// @Summary Execute or list agent actions
// @Description Execute a structured agent tool call (register_position, analyze_asset, analyze_portfolio, get_price) or list the audit log
// @Tags agent
// @Accept json
// @Produce json
// @Param agent_name query string false "Filter log by agent name"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} models.AgentAction
// @Failure 400 {string} string "Invalid request"
// @Failure 500 {string} string "Internal server error"
// @Router /agent/actions [get]
// @Router /agent/actions [post]
func (h *AgentHandler) HandleActions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit, offset := parsePagination(r)
		actions, err := h.service.ListActions(r.Context(), r.URL.Query().Get("agent_name"), limit, offset)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, actions)
	case http.MethodPost:
		var req models.AgentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		resp, err := h.service.Perform(r.Context(), &req)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
