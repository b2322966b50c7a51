package interfaces

import (
	"context"

	"mobiplan/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for PaymentProposal
// and the bulk lifecycle of its installments.
//
// Consistency requirements:
//   - CreateWithInstallments persists the proposal and all installments
//     as one transaction; nothing is written on validation failure.
//   - SelectExclusive must leave exactly one selected proposal in the
//     budget (the target) using a single transactional write, never an
//     unselect-then-select pair of independent calls.
//   - Delete cascades to the proposal's installments.
//
// All operations are owner-scoped; a proposal owned by someone else is
// indistinguishable from a missing one.

type IProposalRepository interface {
	CreateWithInstallments(ctx context.Context, p entities.PaymentProposal, installments []entities.PaymentInstallment) (entities.PaymentProposal, error)
	GetByID(ctx context.Context, id, ownerID string) (entities.PaymentProposal, error)
	ListByBudgetID(ctx context.Context, budgetID, ownerID string) ([]entities.PaymentProposal, error)
	Update(ctx context.Context, p entities.PaymentProposal) (entities.PaymentProposal, error)
	SelectExclusive(ctx context.Context, budgetID, proposalID, ownerID string) (bool, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
