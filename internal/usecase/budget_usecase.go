package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"mobiplan/internal/domain/entities"
	"mobiplan/internal/domain/pricing"
	"mobiplan/internal/usecase/interfaces"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrEnvironmentNotFound = errors.New("environment not found")
	ErrInvalidBudgetID     = errors.New("invalid budget id")
	ErrInvalidOwnerID      = errors.New("invalid owner id")
	ErrInvalidEnvironment  = errors.New("invalid environment id")
	ErrInvalidClientName   = errors.New("invalid client name")
	ErrInvalidEnvName      = errors.New("invalid environment name")
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrInvalidUnitPrice    = errors.New("unit price must not be negative")
)

// BudgetInput carries the caller-editable scalar fields of a budget.

type BudgetInput struct {
	ClientName          string
	InitialDate         string
	Observations        string
	FinalConsiderations string
}

// EnvironmentInput carries the caller-editable fields of an environment.
// There is no subtotal field on purpose: the subtotal is always derived
// from Quantity * UnitPrice.

type EnvironmentInput struct {
	Name        string
	Description string
	Quantity    int
	UnitPrice   float64
}

// IBudgetUseCase exposes budget and environment management plus the
// budget total accessor consumed by proposal creation.

type IBudgetUseCase interface {
	CreateBudget(ctx context.Context, ownerID string, in BudgetInput) (entities.Budget, error)
	GetBudget(ctx context.Context, id, ownerID string) (entities.Budget, error)
	ListBudgets(ctx context.Context, ownerID string) ([]entities.Budget, error)
	UpdateBudget(ctx context.Context, id, ownerID string, in BudgetInput) (entities.Budget, error)
	DeleteBudget(ctx context.Context, id, ownerID string) error

	CreateEnvironment(ctx context.Context, budgetID, ownerID string, in EnvironmentInput) (entities.BudgetEnvironment, error)
	ListEnvironments(ctx context.Context, budgetID, ownerID string) ([]entities.BudgetEnvironment, error)
	UpdateEnvironment(ctx context.Context, id, ownerID string, in EnvironmentInput) (entities.BudgetEnvironment, error)
	DeleteEnvironment(ctx context.Context, id, ownerID string) error

	TotalOf(ctx context.Context, budgetID, ownerID string) (float64, error)
}

type BudgetUseCase struct {
	budgets      interfaces.IBudgetRepository
	environments interfaces.IEnvironmentRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(budgets interfaces.IBudgetRepository, environments interfaces.IEnvironmentRepository) *BudgetUseCase {
	return &BudgetUseCase{budgets: budgets, environments: environments}
}

func (u *BudgetUseCase) CreateBudget(ctx context.Context, ownerID string, in BudgetInput) (entities.Budget, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Budget{}, ErrInvalidOwnerID
	}
	in.ClientName = strings.TrimSpace(in.ClientName)
	if in.ClientName == "" {
		return entities.Budget{}, ErrInvalidClientName
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:                  uuid.NewString(),
		OwnerID:             ownerID,
		ClientName:          in.ClientName,
		InitialDate:         strings.TrimSpace(in.InitialDate),
		Observations:        in.Observations,
		FinalConsiderations: in.FinalConsiderations,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return u.budgets.Create(ctx, b)
}

func (u *BudgetUseCase) GetBudget(ctx context.Context, id, ownerID string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	ownerID = strings.TrimSpace(ownerID)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	if ownerID == "" {
		return entities.Budget{}, ErrInvalidOwnerID
	}

	b, err := u.budgets.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListBudgets(ctx context.Context, ownerID string) ([]entities.Budget, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return []entities.Budget{}, nil
	}
	return u.budgets.ListByOwner(ctx, ownerID)
}

func (u *BudgetUseCase) UpdateBudget(ctx context.Context, id, ownerID string, in BudgetInput) (entities.Budget, error) {
	existing, err := u.GetBudget(ctx, id, ownerID)
	if err != nil {
		return entities.Budget{}, err
	}

	in.ClientName = strings.TrimSpace(in.ClientName)
	if in.ClientName == "" {
		return entities.Budget{}, ErrInvalidClientName
	}

	existing.ClientName = in.ClientName
	existing.InitialDate = strings.TrimSpace(in.InitialDate)
	existing.Observations = in.Observations
	existing.FinalConsiderations = in.FinalConsiderations
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.budgets.Update(ctx, existing)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) DeleteBudget(ctx context.Context, id, ownerID string) error {
	id = strings.TrimSpace(id)
	ownerID = strings.TrimSpace(ownerID)
	if id == "" {
		return ErrInvalidBudgetID
	}
	if ownerID == "" {
		return ErrInvalidOwnerID
	}

	ok, err := u.budgets.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBudgetNotFound
	}
	return nil
}

func (u *BudgetUseCase) CreateEnvironment(ctx context.Context, budgetID, ownerID string, in EnvironmentInput) (entities.BudgetEnvironment, error) {
	// Ensures the budget exists and belongs to the owner before attaching
	// a line item to it.
	budget, err := u.GetBudget(ctx, budgetID, ownerID)
	if err != nil {
		return entities.BudgetEnvironment{}, err
	}

	if err := validateEnvironmentInput(&in); err != nil {
		return entities.BudgetEnvironment{}, err
	}

	now := time.Now().UTC()
	e := entities.BudgetEnvironment{
		ID:          uuid.NewString(),
		BudgetID:    budget.ID,
		OwnerID:     budget.OwnerID,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Subtotal:    environmentSubtotal(in.Quantity, in.UnitPrice),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.environments.Create(ctx, e)
}

func (u *BudgetUseCase) ListEnvironments(ctx context.Context, budgetID, ownerID string) ([]entities.BudgetEnvironment, error) {
	budgetID = strings.TrimSpace(budgetID)
	ownerID = strings.TrimSpace(ownerID)
	if budgetID == "" || ownerID == "" {
		return []entities.BudgetEnvironment{}, nil
	}
	return u.environments.ListByBudgetID(ctx, budgetID, ownerID)
}

func (u *BudgetUseCase) UpdateEnvironment(ctx context.Context, id, ownerID string, in EnvironmentInput) (entities.BudgetEnvironment, error) {
	id = strings.TrimSpace(id)
	ownerID = strings.TrimSpace(ownerID)
	if id == "" {
		return entities.BudgetEnvironment{}, ErrInvalidEnvironment
	}
	if ownerID == "" {
		return entities.BudgetEnvironment{}, ErrInvalidOwnerID
	}

	existing, err := u.environments.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.BudgetEnvironment{}, err
	}
	if existing.ID == "" {
		return entities.BudgetEnvironment{}, ErrEnvironmentNotFound
	}

	if err := validateEnvironmentInput(&in); err != nil {
		return entities.BudgetEnvironment{}, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Quantity = in.Quantity
	existing.UnitPrice = in.UnitPrice
	existing.Subtotal = environmentSubtotal(in.Quantity, in.UnitPrice)
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.environments.Update(ctx, existing)
	if err != nil {
		return entities.BudgetEnvironment{}, err
	}
	if updated.ID == "" {
		return entities.BudgetEnvironment{}, ErrEnvironmentNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) DeleteEnvironment(ctx context.Context, id, ownerID string) error {
	id = strings.TrimSpace(id)
	ownerID = strings.TrimSpace(ownerID)
	if id == "" {
		return ErrInvalidEnvironment
	}
	if ownerID == "" {
		return ErrInvalidOwnerID
	}

	ok, err := u.environments.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrEnvironmentNotFound
	}
	return nil
}

// TotalOf sums the subtotals of the budget's environments. A budget with
// no environments totals zero.
func (u *BudgetUseCase) TotalOf(ctx context.Context, budgetID, ownerID string) (float64, error) {
	environments, err := u.ListEnvironments(ctx, budgetID, ownerID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, e := range environments {
		total += e.Subtotal
	}
	return pricing.RoundCents(total), nil
}

func validateEnvironmentInput(in *EnvironmentInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ErrInvalidEnvName
	}
	if in.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if in.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	return nil
}

func environmentSubtotal(quantity int, unitPrice float64) float64 {
	return pricing.RoundCents(float64(quantity) * unitPrice)
}
