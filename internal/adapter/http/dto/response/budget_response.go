package response

import (
	"time"

	"mobiplan/internal/domain/entities"
)

type BudgetResponse struct {
	ID                  string    `json:"id"`
	ClientName          string    `json:"client_name"`
	InitialDate         string    `json:"initial_date"`
	Observations        string    `json:"observations"`
	FinalConsiderations string    `json:"final_considerations"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:                  b.ID,
		ClientName:          b.ClientName,
		InitialDate:         b.InitialDate,
		Observations:        b.Observations,
		FinalConsiderations: b.FinalConsiderations,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

type EnvironmentResponse struct {
	ID          string    `json:"id"`
	BudgetID    string    `json:"budget_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Subtotal    float64   `json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromEnvironment(e entities.BudgetEnvironment) EnvironmentResponse {
	return EnvironmentResponse{
		ID:          e.ID,
		BudgetID:    e.BudgetID,
		Name:        e.Name,
		Description: e.Description,
		Quantity:    e.Quantity,
		UnitPrice:   e.UnitPrice,
		Subtotal:    e.Subtotal,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// BudgetTotalResponse carries the derived sum of environment subtotals.
type BudgetTotalResponse struct {
	BudgetID string  `json:"budget_id"`
	Total    float64 `json:"total"`
}
