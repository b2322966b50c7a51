package handlers

import (
	"errors"
	"log"
	request "mobiplan/internal/adapter/http/dto/request"
	response "mobiplan/internal/adapter/http/dto/response"
	"mobiplan/internal/domain/pricing"
	"mobiplan/internal/usecase"
	"mobiplan/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload    = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	errInvalidInstallmentPayload = pkg.NewDomainErrorSimple("INVALID_INSTALLMENT_INPUT", "Invalid installment payload", http.StatusBadRequest)
)

// ProposalHandler handles HTTP requests for payment proposals and their
// installment schedules. The budget use case supplies the derived total
// that every proposal calculation starts from.

type ProposalHandler struct {
	proposals usecase.IProposalUseCase
	budgets   usecase.IBudgetUseCase
}

func NewProposalHandler(proposals usecase.IProposalUseCase, budgets usecase.IBudgetUseCase) *ProposalHandler {
	return &ProposalHandler{proposals: proposals, budgets: budgets}
}

// CreateProposal godoc
// @Summary Create a payment proposal for a budget
// @Tags proposals
// @Accept json
// @Produce json
// @Param budget_id path string true "Budget ID"
// @Param proposal body request.ProposalRequest true "Proposal payload"
// @Success 201 {object} response.ProposalWithInstallmentsResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/budgets/{budget_id}/proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	ownerID := OwnerID(c)
	budgetID := c.Param("budget_id")

	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	total, err := h.budgetTotal(c, budgetID, ownerID)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	proposal, installments, err := h.proposals.Create(c.Request.Context(), budgetID, ownerID, total, usecase.ProposalInput{
		Name:             payload.Name,
		DiscountType:     payload.DiscountType,
		DiscountValue:    payload.DiscountValue,
		DownPaymentType:  payload.DownPaymentType,
		DownPaymentValue: payload.DownPaymentValue,
		InterestRate:     payload.InterestRate,
		Installments:     payload.Lines(),
	})
	if err != nil {
		log.Printf("[proposal][handler] create failed budget_id=%s err=%v", budgetID, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.ProposalWithInstallmentsResponse{
		Proposal:     response.FromProposal(proposal),
		Installments: response.FromInstallments(installments),
	})
}

// PreviewProposal godoc
// @Summary Preview proposal figures without persisting
// @Tags proposals
// @Accept json
// @Produce json
// @Param preview body request.PreviewRequest true "Preview payload"
// @Success 200 {object} response.PreviewResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/proposals/preview [post]
func (h *ProposalHandler) PreviewProposal(c *gin.Context) {
	var payload request.PreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	quote, err := h.proposals.Preview(payload.TotalAmount, usecase.ProposalInput{
		DiscountType:     payload.DiscountType,
		DiscountValue:    payload.DiscountValue,
		DownPaymentType:  payload.DownPaymentType,
		DownPaymentValue: payload.DownPaymentValue,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(pricing.RoundCents(payload.TotalAmount), quote))
}

// ListProposals godoc
// @Summary List a budget's payment proposals
// @Tags proposals
// @Produce json
// @Param budget_id path string true "Budget ID"
// @Success 200 {array} response.ProposalResponse
// @Router /v1/budgets/{budget_id}/proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	ownerID := OwnerID(c)
	budgetID := c.Param("budget_id")

	proposals, err := h.proposals.List(c.Request.Context(), budgetID, ownerID)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, response.FromProposal(p))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateProposal godoc
// @Summary Update a payment proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Param budget_id path string true "Budget ID"
// @Param proposal_id path string true "Proposal ID"
// @Param proposal body request.ProposalUpdateRequest true "Partial proposal payload"
// @Success 200 {object} response.ProposalResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/budgets/{budget_id}/proposals/{proposal_id} [patch]
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	ownerID := OwnerID(c)
	budgetID := c.Param("budget_id")
	proposalID := c.Param("proposal_id")

	var payload request.ProposalUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	total, err := h.budgetTotal(c, budgetID, ownerID)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.proposals.Update(c.Request.Context(), budgetID, proposalID, ownerID, total, usecase.ProposalUpdateInput{
		Name:             payload.Name,
		DiscountType:     payload.DiscountType,
		DiscountValue:    payload.DiscountValue,
		DownPaymentType:  payload.DownPaymentType,
		DownPaymentValue: payload.DownPaymentValue,
		InterestRate:     payload.InterestRate,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(updated))
}

// SelectProposal godoc
// @Summary Mark a proposal as the budget's selected one
// @Tags proposals
// @Param budget_id path string true "Budget ID"
// @Param proposal_id path string true "Proposal ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/budgets/{budget_id}/proposals/{proposal_id}/select [patch]
func (h *ProposalHandler) SelectProposal(c *gin.Context) {
	ownerID := OwnerID(c)
	budgetID := c.Param("budget_id")
	proposalID := c.Param("proposal_id")

	if err := h.proposals.Select(c.Request.Context(), budgetID, proposalID, ownerID); err != nil {
		log.Printf("[proposal][handler] select failed budget_id=%s proposal_id=%s err=%v", budgetID, proposalID, err)
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteProposal godoc
// @Summary Delete a proposal and its installments
// @Tags proposals
// @Param budget_id path string true "Budget ID"
// @Param proposal_id path string true "Proposal ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/budgets/{budget_id}/proposals/{proposal_id} [delete]
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	ownerID := OwnerID(c)
	budgetID := c.Param("budget_id")
	proposalID := c.Param("proposal_id")

	if err := h.proposals.Delete(c.Request.Context(), budgetID, proposalID, ownerID); err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListInstallments godoc
// @Summary List a proposal's installment schedule
// @Tags installments
// @Produce json
// @Param proposal_id path string true "Proposal ID"
// @Success 200 {array} response.InstallmentResponse
// @Router /v1/proposals/{proposal_id}/installments [get]
func (h *ProposalHandler) ListInstallments(c *gin.Context) {
	ownerID := OwnerID(c)
	proposalID := c.Param("proposal_id")

	installments, err := h.proposals.ListInstallments(c.Request.Context(), proposalID, ownerID)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallments(installments))
}

// UpdateInstallment godoc
// @Summary Update one installment of a proposal
// @Tags installments
// @Accept json
// @Produce json
// @Param proposal_id path string true "Proposal ID"
// @Param installment_id path string true "Installment ID"
// @Param installment body request.InstallmentUpdateRequest true "Partial installment payload"
// @Success 200 {object} response.InstallmentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/proposals/{proposal_id}/installments/{installment_id} [patch]
func (h *ProposalHandler) UpdateInstallment(c *gin.Context) {
	ownerID := OwnerID(c)
	installmentID := c.Param("installment_id")

	var payload request.InstallmentUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInstallmentPayload.HTTPStatus, errInvalidInstallmentPayload.ToHTTPError())
		return
	}

	updated, err := h.proposals.UpdateInstallment(c.Request.Context(), installmentID, ownerID, usecase.InstallmentUpdateInput{
		DueDate:       payload.DueDate,
		Amount:        payload.Amount,
		PaymentMethod: payload.PaymentMethod,
		Notes:         payload.Notes,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallment(updated))
}

// budgetTotal verifies the budget belongs to the caller before deriving
// its total from the environment subtotals.
func (h *ProposalHandler) budgetTotal(c *gin.Context, budgetID, ownerID string) (float64, error) {
	if _, err := h.budgets.GetBudget(c.Request.Context(), budgetID, ownerID); err != nil {
		return 0, err
	}
	return h.budgets.TotalOf(c.Request.Context(), budgetID, ownerID)
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidInstallmentID),
		errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidProposalName),
		errors.Is(err, usecase.ErrInvalidAdjustment),
		errors.Is(err, usecase.ErrNegativeTotalAmount),
		errors.Is(err, pricing.ErrEmptyInstallments),
		errors.Is(err, pricing.ErrNegativeInstallment),
		errors.Is(err, pricing.ErrInvalidInstallmentDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
