package entities

import "time"

// PaymentInstallment is one scheduled partial payment within a proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id, range number
//
// Number is 1-based and contiguous within a proposal; it is assigned by
// the installment builder in input order and never by callers.

type PaymentInstallment struct {
	ID            string    `json:"id"`
	ProposalID    string    `json:"proposal_id"`
	OwnerID       string    `json:"owner_id"`
	Number        int       `json:"installment_number"`
	DueDate       string    `json:"due_date"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
