package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"mobiplan/internal/domain/entities"
)

// DueDateLayout is the calendar-date format accepted for installment due
// dates.
const DueDateLayout = "2006-01-02"

var (
	ErrEmptyInstallments       = errors.New("installment list is empty")
	ErrNegativeInstallment     = errors.New("installment amount is negative")
	ErrInvalidInstallmentDate  = errors.New("installment due date is not a valid calendar date")
	ErrMissingInstallmentOwner = errors.New("installment owner is required")
)

// InstallmentLine is one caller-supplied schedule entry. Order in the
// slice is authoritative; there is no independent sort key.

type InstallmentLine struct {
	DueDate       string  `json:"due_date" binding:"required"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Notes         string  `json:"notes,omitempty"`
}

// BuildInstallments turns the ordered lines into fully-formed installment
// records for proposalID, numbering them 1..len(lines) in input order.
//
// It validates the lines but persists nothing; the caller is responsible
// for storing the records and for setting the owning proposal's
// installment count to len(lines).
func BuildInstallments(proposalID, ownerID string, lines []InstallmentLine) ([]entities.PaymentInstallment, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInstallments
	}
	if ownerID == "" {
		return nil, ErrMissingInstallmentOwner
	}

	now := time.Now().UTC()
	installments := make([]entities.PaymentInstallment, 0, len(lines))
	for i, line := range lines {
		if line.Amount < 0 {
			return nil, ErrNegativeInstallment
		}
		if _, err := time.Parse(DueDateLayout, line.DueDate); err != nil {
			return nil, ErrInvalidInstallmentDate
		}
		installments = append(installments, entities.PaymentInstallment{
			ID:            uuid.NewString(),
			ProposalID:    proposalID,
			OwnerID:       ownerID,
			Number:        i + 1,
			DueDate:       line.DueDate,
			Amount:        RoundCents(line.Amount),
			PaymentMethod: line.PaymentMethod,
			Notes:         line.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return installments, nil
}
