package models

import (
	"encoding/json"
	"errors"
	"time"
)

// Predefined agent action names
const (
	ActionRegisterPosition = "register_position"
	ActionAnalyzeAsset     = "analyze_asset"
	ActionAnalyzePortfolio = "analyze_portfolio"
	ActionGetPrice         = "get_price"
)

// AgentRequest is a structured tool call submitted by the external
// natural-language orchestrator.
type AgentRequest struct {
	AgentName string                 `json:"agent_name"`
	Action    string                 `json:"action"`
	Params    map[string]interface{} `json:"params"`
}

// AgentResponse carries the outcome of a performed agent action.
type AgentResponse struct {
	Action string      `json:"action"`
	Result interface{} `json:"result"`
}

// AgentAction is the persisted audit record of a performed agent request.
type AgentAction struct {
	ID         string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	AgentName  string          `json:"agent_name" gorm:"column:agent_name;type:varchar(100);not null;index"`
	Action     string          `json:"action" gorm:"column:action;type:varchar(50);not null"`
	ParamsJSON json.RawMessage `json:"params" gorm:"column:params_json;type:jsonb"`
	ResultJSON json.RawMessage `json:"result" gorm:"column:result_json;type:jsonb"`
	CreatedAt  time.Time       `json:"created_at" gorm:"column:created_at;type:timestamptz;autoCreateTime"`
}

// TableName returns the table name for the AgentAction model
func (AgentAction) TableName() string {
	return "agent_actions"
}

// Validate validates the agent action data
func (a *AgentAction) Validate() error {
	if a.AgentName == "" {
		return errors.New("agent_name is required")
	}
	if a.Action == "" {
		return errors.New("action is required")
	}
	return nil
}

// RegisterPositionParams are the parameters for the register_position action:
// one synthetic transaction carrying the user's stated quantity and average
// purchase price.
type RegisterPositionParams struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	AveragePrice string  `json:"average_price"`
}
