package request

// BudgetRequest is the payload for creating or updating a budget.
type BudgetRequest struct {
	ClientName          string `json:"client_name" binding:"required"`
	InitialDate         string `json:"initial_date"`
	Observations        string `json:"observations"`
	FinalConsiderations string `json:"final_considerations"`
}

// EnvironmentRequest is the payload for creating or updating a budget
// environment. There is no subtotal field: the server always derives it
// from quantity * unit_price.
type EnvironmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}
