package response

import (
	"time"

	"mobiplan/internal/domain/entities"
	"mobiplan/internal/domain/pricing"
)

type ProposalResponse struct {
	ID                string    `json:"id"`
	BudgetID          string    `json:"budget_id"`
	Name              string    `json:"name"`
	DiscountType      string    `json:"discount_type"`
	DiscountValue     float64   `json:"discount_value"`
	DownPaymentType   string    `json:"down_payment_type"`
	DownPaymentValue  float64   `json:"down_payment_value"`
	InterestRate      float64   `json:"interest_rate"`
	TotalAmount       float64   `json:"total_amount"`
	TotalWithDiscount float64   `json:"total_with_discount"`
	RemainingAmount   float64   `json:"remaining_amount"`
	InstallmentsCount int       `json:"installments_count"`
	IsSelected        bool      `json:"is_selected"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromProposal(p entities.PaymentProposal) ProposalResponse {
	return ProposalResponse{
		ID:                p.ID,
		BudgetID:          p.BudgetID,
		Name:              p.Name,
		DiscountType:      string(p.DiscountType),
		DiscountValue:     p.DiscountValue,
		DownPaymentType:   string(p.DownPaymentType),
		DownPaymentValue:  p.DownPaymentValue,
		InterestRate:      p.InterestRate,
		TotalAmount:       p.TotalAmount,
		TotalWithDiscount: p.TotalWithDiscount,
		RemainingAmount:   p.RemainingAmount,
		InstallmentsCount: p.InstallmentsCount,
		IsSelected:        p.IsSelected,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type InstallmentResponse struct {
	ID            string    `json:"id"`
	ProposalID    string    `json:"proposal_id"`
	Number        int       `json:"installment_number"`
	DueDate       string    `json:"due_date"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromInstallment(i entities.PaymentInstallment) InstallmentResponse {
	return InstallmentResponse{
		ID:            i.ID,
		ProposalID:    i.ProposalID,
		Number:        i.Number,
		DueDate:       i.DueDate,
		Amount:        i.Amount,
		PaymentMethod: i.PaymentMethod,
		Notes:         i.Notes,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func FromInstallments(items []entities.PaymentInstallment) []InstallmentResponse {
	out := make([]InstallmentResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromInstallment(item))
	}
	return out
}

// ProposalWithInstallmentsResponse is the creation payload: the stored
// proposal plus its full schedule.
type ProposalWithInstallmentsResponse struct {
	Proposal     ProposalResponse      `json:"proposal"`
	Installments []InstallmentResponse `json:"installments"`
}

// PreviewResponse carries the recomputed figures without persisting
// anything.
type PreviewResponse struct {
	TotalAmount       float64 `json:"total_amount"`
	TotalWithDiscount float64 `json:"total_with_discount"`
	DownPaymentAmount float64 `json:"down_payment_amount"`
	RemainingAmount   float64 `json:"remaining_amount"`
}

func FromQuote(totalAmount float64, q pricing.Quote) PreviewResponse {
	return PreviewResponse{
		TotalAmount:       totalAmount,
		TotalWithDiscount: q.TotalWithDiscount,
		DownPaymentAmount: q.DownPaymentAmount,
		RemainingAmount:   q.RemainingAmount,
	}
}
