package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/carteiralabs/carteira/internal/errors"
	"github.com/carteiralabs/carteira/internal/models"
	"github.com/carteiralabs/carteira/internal/repositories"
)

// agentService executes structured tool calls on behalf of the external
// orchestrator. The LLM itself lives outside this process; it submits
// already-classified actions and consumes JSON results.
type agentService struct {
	assets       repositories.AssetRepository
	transactions repositories.TransactionRepository
	actions      repositories.AgentActionRepository
	analysis     AnalysisService
	prices       PriceService
	logger       *zap.Logger
}

// NewAgentService creates a new agent service
func NewAgentService(
	assets repositories.AssetRepository,
	transactions repositories.TransactionRepository,
	actions repositories.AgentActionRepository,
	analysis AnalysisService,
	prices PriceService,
	logger *zap.Logger,
) AgentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &agentService{
		assets:       assets,
		transactions: transactions,
		actions:      actions,
		analysis:     analysis,
		prices:       prices,
		logger:       logger,
	}
}

func (s *agentService) Perform(ctx context.Context, req *models.AgentRequest) (*models.AgentResponse, error) {
	if req == nil || req.Action == "" {
		return nil, fmt.Errorf("action is required")
	}

	var (
		result interface{}
		err    error
	)
	switch req.Action {
	case models.ActionRegisterPosition:
		result, err = s.performRegisterPosition(ctx, req.Params)
	case models.ActionAnalyzeAsset:
		result, err = s.performAnalyzeAsset(ctx, req.Params)
	case models.ActionAnalyzePortfolio:
		result, err = s.analysis.AnalyzePortfolio(ctx)
	case models.ActionGetPrice:
		result, err = s.performGetPrice(ctx, req.Params)
	default:
		return nil, fmt.Errorf("unknown action: %s", req.Action)
	}
	if err != nil {
		return nil, err
	}

	s.record(ctx, req, result)
	return &models.AgentResponse{Action: req.Action, Result: result}, nil
}

func (s *agentService) ListActions(ctx context.Context, agentName string, limit, offset int) ([]*models.AgentAction, error) {
	return s.actions.List(ctx, agentName, limit, offset)
}

// performRegisterPosition registers a user's complete position for one asset:
// the asset is created if it does not exist, then a single synthetic
// transaction dated today carries the stated quantity at the stated average
// purchase price.
func (s *agentService) performRegisterPosition(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	ticker, ok := getString(params, "ticker")
	if !ok || ticker == "" {
		return nil, &apperrors.ErrValidation{Field: "ticker", Message: "is required"}
	}
	quantity, ok := getDecimal(params, "quantity")
	if !ok || quantity.IsZero() {
		return nil, &apperrors.ErrValidation{Field: "quantity", Message: "must be a non-zero number"}
	}
	averagePrice, ok := getDecimal(params, "average_price")
	if !ok || averagePrice.IsNegative() {
		return nil, &apperrors.ErrValidation{Field: "average_price", Message: "must be a non-negative number"}
	}

	asset, err := s.assets.GetByTicker(ctx, ticker)
	if err != nil {
		var notFound *apperrors.ErrNotFound
		if !errors.As(err, &notFound) {
			return nil, err
		}
		asset = &models.Asset{Ticker: ticker, Name: ticker, AssetType: models.AssetTypeStock}
		if err := s.assets.Create(ctx, asset); err != nil {
			return nil, fmt.Errorf("failed to create asset %s: %w", ticker, err)
		}
	}

	tx := &models.Transaction{
		AssetID:         asset.ID,
		Quantity:        quantity,
		Price:           averagePrice,
		TransactionDate: time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("transaction validation failed: %w", err)
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction for %s: %w", ticker, err)
	}

	return map[string]interface{}{
		"status":        "success",
		"ticker":        ticker,
		"quantity":      quantity,
		"average_price": averagePrice,
	}, nil
}

func (s *agentService) performAnalyzeAsset(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	ticker, ok := getString(params, "ticker")
	if !ok || ticker == "" {
		return nil, &apperrors.ErrValidation{Field: "ticker", Message: "is required"}
	}
	return s.analysis.AnalyzeAsset(ctx, ticker)
}

func (s *agentService) performGetPrice(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	ticker, ok := getString(params, "ticker")
	if !ok || ticker == "" {
		return nil, &apperrors.ErrValidation{Field: "ticker", Message: "is required"}
	}

	price, found := s.prices.GetCurrentPrice(ctx, ticker)
	resp := map[string]interface{}{"ticker": ticker}
	if found {
		resp["price"] = price
	} else {
		resp["price"] = nil
	}
	return resp, nil
}

// record writes the performed action to the audit log. Audit failures are
// logged, not surfaced: the action itself already succeeded.
func (s *agentService) record(ctx context.Context, req *models.AgentRequest, result interface{}) {
	agentName := req.AgentName
	if agentName == "" {
		agentName = "default"
	}

	paramsJSON, err := json.Marshal(req.Params)
	if err != nil {
		paramsJSON = []byte("{}")
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		resultJSON = []byte("{}")
	}

	action := &models.AgentAction{
		AgentName:  agentName,
		Action:     req.Action,
		ParamsJSON: paramsJSON,
		ResultJSON: resultJSON,
	}
	if err := s.actions.Create(ctx, action); err != nil {
		s.logger.Warn("failed to record agent action",
			zap.String("action", req.Action),
			zap.Error(err))
	}
}

// Helpers to parse loosely-typed agent params safely

func getString(params map[string]interface{}, key string) (string, bool) {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

func getDecimal(params map[string]interface{}, key string) (decimal.Decimal, bool) {
	if v, ok := params[key]; ok {
		switch t := v.(type) {
		case float64:
			return decimal.NewFromFloat(t), true
		case int:
			return decimal.NewFromInt(int64(t)), true
		case int64:
			return decimal.NewFromInt(t), true
		case string:
			d, err := decimal.NewFromString(t)
			if err == nil {
				return d, true
			}
		}
	}
	return decimal.Zero, false
}
