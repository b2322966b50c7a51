package request

import (
	"mobiplan/internal/domain/entities"
	"mobiplan/internal/domain/pricing"
)

// InstallmentLineRequest is one schedule entry of a proposal creation
// payload. Slice order is authoritative for installment numbering.
type InstallmentLineRequest struct {
	DueDate       string  `json:"due_date" binding:"required"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Notes         string  `json:"notes"`
}

// ProposalRequest is the payload for creating a payment proposal. The
// derived figures are never part of the payload; the server recomputes
// them from the budget total.
type ProposalRequest struct {
	Name             string                   `json:"name" binding:"required"`
	DiscountType     entities.AdjustmentType  `json:"discount_type"`
	DiscountValue    float64                  `json:"discount_value"`
	DownPaymentType  entities.AdjustmentType  `json:"down_payment_type"`
	DownPaymentValue float64                  `json:"down_payment_value"`
	InterestRate     float64                  `json:"interest_rate"`
	Installments     []InstallmentLineRequest `json:"installments"`
}

// Lines converts the payload's schedule entries preserving their order.
func (r ProposalRequest) Lines() []pricing.InstallmentLine {
	lines := make([]pricing.InstallmentLine, 0, len(r.Installments))
	for _, item := range r.Installments {
		lines = append(lines, pricing.InstallmentLine{
			DueDate:       item.DueDate,
			Amount:        item.Amount,
			PaymentMethod: item.PaymentMethod,
			Notes:         item.Notes,
		})
	}
	return lines
}

// PreviewRequest carries the calculator inputs for a non-persisting
// preview of the proposal figures.
type PreviewRequest struct {
	TotalAmount      float64                 `json:"total_amount"`
	DiscountType     entities.AdjustmentType `json:"discount_type"`
	DiscountValue    float64                 `json:"discount_value"`
	DownPaymentType  entities.AdjustmentType `json:"down_payment_type"`
	DownPaymentValue float64                 `json:"down_payment_value"`
}

// ProposalUpdateRequest is a partial update: absent fields keep the
// stored values.
type ProposalUpdateRequest struct {
	Name             *string                  `json:"name"`
	DiscountType     *entities.AdjustmentType `json:"discount_type"`
	DiscountValue    *float64                 `json:"discount_value"`
	DownPaymentType  *entities.AdjustmentType `json:"down_payment_type"`
	DownPaymentValue *float64                 `json:"down_payment_value"`
	InterestRate     *float64                 `json:"interest_rate"`
}

// InstallmentUpdateRequest is a partial update for one installment. The
// installment number cannot be changed.
type InstallmentUpdateRequest struct {
	DueDate       *string  `json:"due_date"`
	Amount        *float64 `json:"amount"`
	PaymentMethod *string  `json:"payment_method"`
	Notes         *string  `json:"notes"`
}
