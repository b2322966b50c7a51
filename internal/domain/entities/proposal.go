package entities

import "time"

// AdjustmentType classifies how a discount or down payment is applied to
// a proposal's total. Modeled as a closed enumeration so that invalid
// type strings cannot reach the calculator.

type AdjustmentType string

const (
	AdjustmentNone       AdjustmentType = "none"
	AdjustmentPercentage AdjustmentType = "percentage"
	AdjustmentFixed      AdjustmentType = "fixed"
)

// Valid reports whether t is one of the known adjustment types. The zero
// value ("") is accepted and treated as AdjustmentNone.
func (t AdjustmentType) Valid() bool {
	switch t {
	case "", AdjustmentNone, AdjustmentPercentage, AdjustmentFixed:
		return true
	}
	return false
}

// Applied reports whether t actually adjusts an amount.
func (t AdjustmentType) Applied() bool {
	return t == AdjustmentPercentage || t == AdjustmentFixed
}

// PaymentProposal is one candidate payment plan (discount + down payment
// + installment schedule) for a budget's total.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_id-index): budget_id, range created_at
//
// Derived fields:
//   - TotalAmount snapshots the budget total the proposal was computed
//     against at creation/update time.
//   - TotalWithDiscount and RemainingAmount are always recomputed from
//     TotalAmount and the discount/down-payment fields, never supplied
//     by callers.
//
// At most one proposal per budget has IsSelected = true; the selection
// write is a single DynamoDB transaction (see the proposal repository).
//
// InterestRate is stored for the negotiation record but no calculation
// consumes it.

type PaymentProposal struct {
	ID                string         `json:"id"`
	BudgetID          string         `json:"budget_id"`
	OwnerID           string         `json:"owner_id"`
	Name              string         `json:"name"`
	DiscountType      AdjustmentType `json:"discount_type"`
	DiscountValue     float64        `json:"discount_value"`
	DownPaymentType   AdjustmentType `json:"down_payment_type"`
	DownPaymentValue  float64        `json:"down_payment_value"`
	InterestRate      float64        `json:"interest_rate"`
	TotalAmount       float64        `json:"total_amount"`
	TotalWithDiscount float64        `json:"total_with_discount"`
	RemainingAmount   float64        `json:"remaining_amount"`
	InstallmentsCount int            `json:"installments_count"`
	IsSelected        bool           `json:"is_selected"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
