package interfaces

import (
	"context"

	"mobiplan/internal/domain/entities"
)

// IInstallmentRepository abstracts DynamoDB reads/updates for individual
// PaymentInstallment records. Bulk creation and cascade deletion live in
// IProposalRepository because they are part of the proposal transaction.

type IInstallmentRepository interface {
	GetByID(ctx context.Context, id, ownerID string) (entities.PaymentInstallment, error)
	ListByProposalID(ctx context.Context, proposalID, ownerID string) ([]entities.PaymentInstallment, error)
	Update(ctx context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error)
}
