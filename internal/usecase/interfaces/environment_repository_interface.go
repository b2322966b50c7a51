package interfaces

import (
	"context"

	"mobiplan/internal/domain/entities"
)

// IEnvironmentRepository abstracts DynamoDB persistence for
// BudgetEnvironment. All operations are owner-scoped.

type IEnvironmentRepository interface {
	Create(ctx context.Context, e entities.BudgetEnvironment) (entities.BudgetEnvironment, error)
	GetByID(ctx context.Context, id, ownerID string) (entities.BudgetEnvironment, error)
	ListByBudgetID(ctx context.Context, budgetID, ownerID string) ([]entities.BudgetEnvironment, error)
	Update(ctx context.Context, e entities.BudgetEnvironment) (entities.BudgetEnvironment, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
