package handlers

import (
	"errors"
	"log"
	request "mobiplan/internal/adapter/http/dto/request"
	response "mobiplan/internal/adapter/http/dto/response"
	"mobiplan/internal/usecase"
	"mobiplan/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload      = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
	errInvalidEnvironmentPayload = pkg.NewDomainErrorSimple("INVALID_ENVIRONMENT_INPUT", "Invalid environment payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for budgets and their environments.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget godoc
// @Summary Create a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body request.BudgetRequest true "Budget payload"
// @Success 201 {object} response.BudgetResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	ownerID := OwnerID(c)

	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateBudget(c.Request.Context(), ownerID, usecase.BudgetInput{
		ClientName:          payload.ClientName,
		InitialDate:         payload.InitialDate,
		Observations:        payload.Observations,
		FinalConsiderations: payload.FinalConsiderations,
	})
	if err != nil {
		log.Printf("[budget][handler] create failed owner_id=%s err=%v", ownerID, err)
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(created))
}

// GetBudget godoc
// @Summary Get a budget by id
// @Tags budgets
// @Produce json
// @Param budget_id path string true "Budget ID"
// @Success 200 {object} response.BudgetResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/budgets/{budget_id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	ownerID := OwnerID(c)
	budgetID := c.Param("budget_id")

	budget, err := h.usecase.GetBudget(c.Request.Context(), budgetID, ownerID)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ListBudgets godoc
// @Summary List the caller's budgets
// @Tags budgets
// @Produce json
// @Success 200 {array} response.BudgetResponse
// @Router /v1/budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	ownerID := OwnerID(c)

	budgets, err := h.usecase.ListBudgets(c.Request.Context(), ownerID)
	if err != nil {
		log.Printf("[budget][handler] list failed owner_id=%s err=%v", ownerID, err)
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, response.FromBudget(b))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateBudget godoc
// @Summary Update a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget_id path string true "Budget ID"
// @Param budget body request.BudgetRequest true "Budget payload"
// @Success 200 {object} response.BudgetResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/budgets/{budget_id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	ownerID := OwnerID(c)
	budgetID := c.Param("budget_id")

	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateBudget(c.Request.Context(), budgetID, ownerID, usecase.BudgetInput{
		ClientName:          payload.ClientName,
		InitialDate:         payload.InitialDate,
		Observations:        payload.Observations,
		FinalConsiderations: payload.FinalConsiderations,
	})
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(updated))
}

// DeleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param budget_id path string true "Budget ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/budgets/{budget_id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	ownerID := OwnerID(c)
	budgetID := c.Param("budget_id")

	if err := h.usecase.DeleteBudget(c.Request.Context(), budgetID, ownerID); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateEnvironment godoc
// @Summary Add an environment to a budget
// @Tags environments
// @Accept json
// @Produce json
// @Param budget_id path string true "Budget ID"
// @Param environment body request.EnvironmentRequest true "Environment payload"
// @Success 201 {object} response.EnvironmentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/budgets/{budget_id}/environments [post]
func (h *BudgetHandler) CreateEnvironment(c *gin.Context) {
	ownerID := OwnerID(c)
	budgetID := c.Param("budget_id")

	var payload request.EnvironmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEnvironmentPayload.HTTPStatus, errInvalidEnvironmentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateEnvironment(c.Request.Context(), budgetID, ownerID, usecase.EnvironmentInput{
		Name:        payload.Name,
		Description: payload.Description,
		Quantity:    payload.Quantity,
		UnitPrice:   payload.UnitPrice,
	})
	if err != nil {
		log.Printf("[environment][handler] create failed budget_id=%s err=%v", budgetID, err)
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEnvironment(created))
}

// ListEnvironments godoc
// @Summary List a budget's environments
// @Tags environments
// @Produce json
// @Param budget_id path string true "Budget ID"
// @Success 200 {array} response.EnvironmentResponse
// @Router /v1/budgets/{budget_id}/environments [get]
func (h *BudgetHandler) ListEnvironments(c *gin.Context) {
	ownerID := OwnerID(c)
	budgetID := c.Param("budget_id")

	environments, err := h.usecase.ListEnvironments(c.Request.Context(), budgetID, ownerID)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.EnvironmentResponse, 0, len(environments))
	for _, e := range environments {
		out = append(out, response.FromEnvironment(e))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateEnvironment godoc
// @Summary Update an environment
// @Tags environments
// @Accept json
// @Produce json
// @Param budget_id path string true "Budget ID"
// @Param environment_id path string true "Environment ID"
// @Param environment body request.EnvironmentRequest true "Environment payload"
// @Success 200 {object} response.EnvironmentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/budgets/{budget_id}/environments/{environment_id} [put]
func (h *BudgetHandler) UpdateEnvironment(c *gin.Context) {
	ownerID := OwnerID(c)
	environmentID := c.Param("environment_id")

	var payload request.EnvironmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEnvironmentPayload.HTTPStatus, errInvalidEnvironmentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateEnvironment(c.Request.Context(), environmentID, ownerID, usecase.EnvironmentInput{
		Name:        payload.Name,
		Description: payload.Description,
		Quantity:    payload.Quantity,
		UnitPrice:   payload.UnitPrice,
	})
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEnvironment(updated))
}

// DeleteEnvironment godoc
// @Summary Remove an environment from a budget
// @Tags environments
// @Param budget_id path string true "Budget ID"
// @Param environment_id path string true "Environment ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/budgets/{budget_id}/environments/{environment_id} [delete]
func (h *BudgetHandler) DeleteEnvironment(c *gin.Context) {
	ownerID := OwnerID(c)
	environmentID := c.Param("environment_id")

	if err := h.usecase.DeleteEnvironment(c.Request.Context(), environmentID, ownerID); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBudgetTotal godoc
// @Summary Get the derived total of a budget
// @Tags budgets
// @Produce json
// @Param budget_id path string true "Budget ID"
// @Success 200 {object} response.BudgetTotalResponse
// @Router /v1/budgets/{budget_id}/total [get]
func (h *BudgetHandler) GetBudgetTotal(c *gin.Context) {
	ownerID := OwnerID(c)
	budgetID := c.Param("budget_id")

	total, err := h.usecase.TotalOf(c.Request.Context(), budgetID, ownerID)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BudgetTotalResponse{BudgetID: budgetID, Total: total})
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidEnvironment),
		errors.Is(err, usecase.ErrInvalidEnvName),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidUnitPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEnvironmentNotFound):
		return pkg.NewDomainErrorSimple("ENVIRONMENT_NOT_FOUND", "Environment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
