package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carteiralabs/carteira/internal/db"
	"github.com/carteiralabs/carteira/internal/models"
)

type agentActionRepository struct {
	db *db.DB
}

// NewAgentActionRepository creates a new agent action repository
func NewAgentActionRepository(database *db.DB) AgentActionRepository {
	return &agentActionRepository{db: database}
}

func (r *agentActionRepository) Create(ctx context.Context, action *models.AgentAction) error {
	if action.ID == "" {
		action.ID = uuid.NewString()
	}
	if err := action.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(action).Error; err != nil {
		return fmt.Errorf("failed to create agent action: %w", err)
	}
	return nil
}

func (r *agentActionRepository) List(ctx context.Context, agentName string, limit, offset int) ([]*models.AgentAction, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if agentName != "" {
		query = query.Where("agent_name = ?", agentName)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var actions []*models.AgentAction
	if err := query.Find(&actions).Error; err != nil {
		return nil, fmt.Errorf("failed to list agent actions: %w", err)
	}
	return actions, nil
}
