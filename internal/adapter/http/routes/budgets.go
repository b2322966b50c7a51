package routes

import (
	"mobiplan/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets   = "/budgets"
	PathProposals = "/proposals"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler, proposalHandler *handlers.ProposalHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:budget_id", budgetHandler.GetBudget)
		budgets.PUT("/:budget_id", budgetHandler.UpdateBudget)
		budgets.DELETE("/:budget_id", budgetHandler.DeleteBudget)

		budgets.POST("/:budget_id/environments", budgetHandler.CreateEnvironment)
		budgets.GET("/:budget_id/environments", budgetHandler.ListEnvironments)
		budgets.PUT("/:budget_id/environments/:environment_id", budgetHandler.UpdateEnvironment)
		budgets.DELETE("/:budget_id/environments/:environment_id", budgetHandler.DeleteEnvironment)

		budgets.GET("/:budget_id/total", budgetHandler.GetBudgetTotal)

		budgets.POST("/:budget_id/proposals", proposalHandler.CreateProposal)
		budgets.GET("/:budget_id/proposals", proposalHandler.ListProposals)
		budgets.PATCH("/:budget_id/proposals/:proposal_id", proposalHandler.UpdateProposal)
		budgets.DELETE("/:budget_id/proposals/:proposal_id", proposalHandler.DeleteProposal)
		budgets.PATCH("/:budget_id/proposals/:proposal_id/select", proposalHandler.SelectProposal)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.POST("/preview", proposalHandler.PreviewProposal)
		proposals.GET("/:proposal_id/installments", proposalHandler.ListInstallments)
		proposals.PATCH("/:proposal_id/installments/:installment_id", proposalHandler.UpdateInstallment)
	}
}
