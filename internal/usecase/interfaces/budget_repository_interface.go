package interfaces

import (
	"context"

	"mobiplan/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Every operation is scoped by ownerID: a budget belonging to another
// owner behaves exactly like a missing budget (zero value / false).

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id, ownerID string) (entities.Budget, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
