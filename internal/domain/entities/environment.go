package entities

import "time"

// BudgetEnvironment is a priced line item (quantity x unit price) within
// a budget, e.g. "kitchen" or "master bedroom" in a furniture quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_id-index): budget_id, range created_at
//
// Subtotal is always quantity * unit price. It is recomputed whenever
// quantity or price changes and never accepted as independent input.

type BudgetEnvironment struct {
	ID          string    `json:"id"`
	BudgetID    string    `json:"budget_id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Subtotal    float64   `json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
