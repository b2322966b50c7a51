package entities

import "time"

// Budget is a quoted set of environments for a client, the basis for one
// or more payment proposals.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id, range created_at
//
// The budget never stores its own total: it is always derived on demand
// from the subtotals of its environments.

type Budget struct {
	ID                  string    `json:"id"`
	OwnerID             string    `json:"owner_id"`
	ClientName          string    `json:"client_name"`
	InitialDate         string    `json:"initial_date"`
	Observations        string    `json:"observations,omitempty"`
	FinalConsiderations string    `json:"final_considerations,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
