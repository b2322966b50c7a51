package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"mobiplan/internal/domain/entities"
	"mobiplan/internal/domain/pricing"
	"mobiplan/internal/usecase/interfaces"
)

var (
	ErrProposalNotFound     = errors.New("proposal not found")
	ErrInstallmentNotFound  = errors.New("installment not found")
	ErrInvalidProposalID    = errors.New("invalid proposal id")
	ErrInvalidInstallmentID = errors.New("invalid installment id")
	ErrInvalidProposalName  = errors.New("invalid proposal name")
	ErrInvalidAdjustment    = errors.New("invalid discount or down payment")
	ErrNegativeTotalAmount  = errors.New("total amount must not be negative")
)

// ProposalInput carries the caller-supplied fields for proposal creation.
// The derived figures (total with discount, remaining amount) are never
// part of the input; they are always recomputed here.

type ProposalInput struct {
	Name             string
	DiscountType     entities.AdjustmentType
	DiscountValue    float64
	DownPaymentType  entities.AdjustmentType
	DownPaymentValue float64
	InterestRate     float64
	Installments     []pricing.InstallmentLine
}

// ProposalUpdateInput is a partial update: nil fields keep the stored
// value. Installments are not touched by proposal updates.

type ProposalUpdateInput struct {
	Name             *string
	DiscountType     *entities.AdjustmentType
	DiscountValue    *float64
	DownPaymentType  *entities.AdjustmentType
	DownPaymentValue *float64
	InterestRate     *float64
}

// InstallmentUpdateInput is a partial update for a single installment.
// The installment number is immutable.

type InstallmentUpdateInput struct {
	DueDate       *string
	Amount        *float64
	PaymentMethod *string
	Notes         *string
}

// IProposalUseCase exposes the payment-proposal engine operations.

type IProposalUseCase interface {
	Preview(totalAmount float64, in ProposalInput) (pricing.Quote, error)
	Create(ctx context.Context, budgetID, ownerID string, totalAmount float64, in ProposalInput) (entities.PaymentProposal, []entities.PaymentInstallment, error)
	List(ctx context.Context, budgetID, ownerID string) ([]entities.PaymentProposal, error)
	Get(ctx context.Context, proposalID, ownerID string) (entities.PaymentProposal, error)
	Update(ctx context.Context, budgetID, proposalID, ownerID string, totalAmount float64, in ProposalUpdateInput) (entities.PaymentProposal, error)
	Select(ctx context.Context, budgetID, proposalID, ownerID string) error
	Delete(ctx context.Context, budgetID, proposalID, ownerID string) error
	ListInstallments(ctx context.Context, proposalID, ownerID string) ([]entities.PaymentInstallment, error)
	UpdateInstallment(ctx context.Context, installmentID, ownerID string, in InstallmentUpdateInput) (entities.PaymentInstallment, error)
}

type ProposalUseCase struct {
	proposals    interfaces.IProposalRepository
	installments interfaces.IInstallmentRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(proposals interfaces.IProposalRepository, installments interfaces.IInstallmentRepository) *ProposalUseCase {
	return &ProposalUseCase{proposals: proposals, installments: installments}
}

// Preview runs the calculator over the input without persisting anything,
// so the UI can show the figures while the proposal is being drafted.
func (u *ProposalUseCase) Preview(totalAmount float64, in ProposalInput) (pricing.Quote, error) {
	if totalAmount < 0 {
		return pricing.Quote{}, ErrNegativeTotalAmount
	}
	if err := validateAdjustments(in.DiscountType, in.DiscountValue, in.DownPaymentType, in.DownPaymentValue); err != nil {
		return pricing.Quote{}, err
	}
	return pricing.Calculate(totalAmount, in.DiscountType, in.DiscountValue, in.DownPaymentType, in.DownPaymentValue), nil
}

func (u *ProposalUseCase) Create(ctx context.Context, budgetID, ownerID string, totalAmount float64, in ProposalInput) (entities.PaymentProposal, []entities.PaymentInstallment, error) {
	budgetID = strings.TrimSpace(budgetID)
	ownerID = strings.TrimSpace(ownerID)
	if budgetID == "" {
		return entities.PaymentProposal{}, nil, ErrInvalidBudgetID
	}
	if ownerID == "" {
		return entities.PaymentProposal{}, nil, ErrInvalidOwnerID
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.PaymentProposal{}, nil, ErrInvalidProposalName
	}
	if totalAmount < 0 {
		return entities.PaymentProposal{}, nil, ErrNegativeTotalAmount
	}
	if err := validateAdjustments(in.DiscountType, in.DiscountValue, in.DownPaymentType, in.DownPaymentValue); err != nil {
		return entities.PaymentProposal{}, nil, err
	}

	quote := pricing.Calculate(totalAmount, in.DiscountType, in.DiscountValue, in.DownPaymentType, in.DownPaymentValue).Rounded()

	proposalID := uuid.NewString()
	installments, err := pricing.BuildInstallments(proposalID, ownerID, in.Installments)
	if err != nil {
		return entities.PaymentProposal{}, nil, err
	}

	now := time.Now().UTC()
	p := entities.PaymentProposal{
		ID:                proposalID,
		BudgetID:          budgetID,
		OwnerID:           ownerID,
		Name:              in.Name,
		DiscountType:      normalizeAdjustment(in.DiscountType),
		DiscountValue:     in.DiscountValue,
		DownPaymentType:   normalizeAdjustment(in.DownPaymentType),
		DownPaymentValue:  in.DownPaymentValue,
		InterestRate:      in.InterestRate,
		TotalAmount:       pricing.RoundCents(totalAmount),
		TotalWithDiscount: quote.TotalWithDiscount,
		RemainingAmount:   quote.RemainingAmount,
		InstallmentsCount: len(installments),
		IsSelected:        false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.proposals.CreateWithInstallments(ctx, p, installments)
	if err != nil {
		return entities.PaymentProposal{}, nil, err
	}
	log.Printf("[proposal][usecase] created proposal_id=%s budget_id=%s installments=%d remaining=%.2f", created.ID, budgetID, len(installments), created.RemainingAmount)
	return created, installments, nil
}

// List returns the budget's proposals in creation order. A blank budget
// id or owner yields an empty list rather than an error.
func (u *ProposalUseCase) List(ctx context.Context, budgetID, ownerID string) ([]entities.PaymentProposal, error) {
	budgetID = strings.TrimSpace(budgetID)
	ownerID = strings.TrimSpace(ownerID)
	if budgetID == "" || ownerID == "" {
		return []entities.PaymentProposal{}, nil
	}
	return u.proposals.ListByBudgetID(ctx, budgetID, ownerID)
}

func (u *ProposalUseCase) Get(ctx context.Context, proposalID, ownerID string) (entities.PaymentProposal, error) {
	proposalID = strings.TrimSpace(proposalID)
	ownerID = strings.TrimSpace(ownerID)
	if proposalID == "" {
		return entities.PaymentProposal{}, ErrInvalidProposalID
	}
	if ownerID == "" {
		return entities.PaymentProposal{}, ErrInvalidOwnerID
	}

	p, err := u.proposals.GetByID(ctx, proposalID, ownerID)
	if err != nil {
		return entities.PaymentProposal{}, err
	}
	if p.ID == "" {
		return entities.PaymentProposal{}, ErrProposalNotFound
	}
	return p, nil
}

// Update merges the partial input over the stored proposal, re-runs the
// calculator against totalAmount and persists the recomputed snapshot.
// The proposal must belong to budgetID: totalAmount is that budget's
// total, and snapshotting another budget's total onto the proposal would
// corrupt its derived figures.
func (u *ProposalUseCase) Update(ctx context.Context, budgetID, proposalID, ownerID string, totalAmount float64, in ProposalUpdateInput) (entities.PaymentProposal, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.PaymentProposal{}, ErrInvalidBudgetID
	}
	existing, err := u.Get(ctx, proposalID, ownerID)
	if err != nil {
		return entities.PaymentProposal{}, err
	}
	if existing.BudgetID != budgetID {
		return entities.PaymentProposal{}, ErrProposalNotFound
	}
	if totalAmount < 0 {
		return entities.PaymentProposal{}, ErrNegativeTotalAmount
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.PaymentProposal{}, ErrInvalidProposalName
		}
		existing.Name = name
	}
	if in.DiscountType != nil {
		existing.DiscountType = *in.DiscountType
	}
	if in.DiscountValue != nil {
		existing.DiscountValue = *in.DiscountValue
	}
	if in.DownPaymentType != nil {
		existing.DownPaymentType = *in.DownPaymentType
	}
	if in.DownPaymentValue != nil {
		existing.DownPaymentValue = *in.DownPaymentValue
	}
	if in.InterestRate != nil {
		existing.InterestRate = *in.InterestRate
	}
	if err := validateAdjustments(existing.DiscountType, existing.DiscountValue, existing.DownPaymentType, existing.DownPaymentValue); err != nil {
		return entities.PaymentProposal{}, err
	}

	quote := pricing.Calculate(totalAmount, existing.DiscountType, existing.DiscountValue, existing.DownPaymentType, existing.DownPaymentValue).Rounded()
	existing.DiscountType = normalizeAdjustment(existing.DiscountType)
	existing.DownPaymentType = normalizeAdjustment(existing.DownPaymentType)
	existing.TotalAmount = pricing.RoundCents(totalAmount)
	existing.TotalWithDiscount = quote.TotalWithDiscount
	existing.RemainingAmount = quote.RemainingAmount
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.proposals.Update(ctx, existing)
	if err != nil {
		return entities.PaymentProposal{}, err
	}
	if updated.ID == "" {
		return entities.PaymentProposal{}, ErrProposalNotFound
	}
	return updated, nil
}

// Select marks the target proposal as the budget's single selected one.
// The repository performs the unselect-siblings/select-target pair as one
// transaction, so two racing Select calls can never leave a budget with
// zero or two selected proposals.
func (u *ProposalUseCase) Select(ctx context.Context, budgetID, proposalID, ownerID string) error {
	budgetID = strings.TrimSpace(budgetID)
	proposalID = strings.TrimSpace(proposalID)
	ownerID = strings.TrimSpace(ownerID)
	if budgetID == "" {
		return ErrInvalidBudgetID
	}
	if proposalID == "" {
		return ErrInvalidProposalID
	}
	if ownerID == "" {
		return ErrInvalidOwnerID
	}

	ok, err := u.proposals.SelectExclusive(ctx, budgetID, proposalID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProposalNotFound
	}
	log.Printf("[proposal][usecase] selected proposal_id=%s budget_id=%s", proposalID, budgetID)
	return nil
}

// Delete removes the proposal and its installments. Like Update, it
// refuses a proposal that lives under a different budget than the one
// named by the caller.
func (u *ProposalUseCase) Delete(ctx context.Context, budgetID, proposalID, ownerID string) error {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return ErrInvalidBudgetID
	}
	existing, err := u.Get(ctx, proposalID, ownerID)
	if err != nil {
		return err
	}
	if existing.BudgetID != budgetID {
		return ErrProposalNotFound
	}

	ok, err := u.proposals.Delete(ctx, existing.ID, strings.TrimSpace(ownerID))
	if err != nil {
		return err
	}
	if !ok {
		return ErrProposalNotFound
	}
	return nil
}

func (u *ProposalUseCase) ListInstallments(ctx context.Context, proposalID, ownerID string) ([]entities.PaymentInstallment, error) {
	proposalID = strings.TrimSpace(proposalID)
	ownerID = strings.TrimSpace(ownerID)
	if proposalID == "" || ownerID == "" {
		return []entities.PaymentInstallment{}, nil
	}
	return u.installments.ListByProposalID(ctx, proposalID, ownerID)
}

func (u *ProposalUseCase) UpdateInstallment(ctx context.Context, installmentID, ownerID string, in InstallmentUpdateInput) (entities.PaymentInstallment, error) {
	installmentID = strings.TrimSpace(installmentID)
	ownerID = strings.TrimSpace(ownerID)
	if installmentID == "" {
		return entities.PaymentInstallment{}, ErrInvalidInstallmentID
	}
	if ownerID == "" {
		return entities.PaymentInstallment{}, ErrInvalidOwnerID
	}

	existing, err := u.installments.GetByID(ctx, installmentID, ownerID)
	if err != nil {
		return entities.PaymentInstallment{}, err
	}
	if existing.ID == "" {
		return entities.PaymentInstallment{}, ErrInstallmentNotFound
	}

	if in.DueDate != nil {
		if _, err := time.Parse(pricing.DueDateLayout, *in.DueDate); err != nil {
			return entities.PaymentInstallment{}, pricing.ErrInvalidInstallmentDate
		}
		existing.DueDate = *in.DueDate
	}
	if in.Amount != nil {
		if *in.Amount < 0 {
			return entities.PaymentInstallment{}, pricing.ErrNegativeInstallment
		}
		existing.Amount = pricing.RoundCents(*in.Amount)
	}
	if in.PaymentMethod != nil {
		existing.PaymentMethod = strings.TrimSpace(*in.PaymentMethod)
	}
	if in.Notes != nil {
		existing.Notes = *in.Notes
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.installments.Update(ctx, existing)
	if err != nil {
		return entities.PaymentInstallment{}, err
	}
	if updated.ID == "" {
		return entities.PaymentInstallment{}, ErrInstallmentNotFound
	}
	return updated, nil
}

func validateAdjustments(discountType entities.AdjustmentType, discountValue float64, downPaymentType entities.AdjustmentType, downPaymentValue float64) error {
	if !discountType.Valid() || !downPaymentType.Valid() {
		return ErrInvalidAdjustment
	}
	if discountValue < 0 || downPaymentValue < 0 {
		return ErrInvalidAdjustment
	}
	if discountType == entities.AdjustmentPercentage && discountValue > 100 {
		return ErrInvalidAdjustment
	}
	if downPaymentType == entities.AdjustmentPercentage && downPaymentValue > 100 {
		return ErrInvalidAdjustment
	}
	return nil
}

func normalizeAdjustment(t entities.AdjustmentType) entities.AdjustmentType {
	if t == "" {
		return entities.AdjustmentNone
	}
	return t
}
