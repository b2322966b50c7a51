package routes

import (
	"log"
	_ "mobiplan/docs" // This will be auto-generated
	"mobiplan/internal/adapter/http/handlers"
	"mobiplan/internal/adapter/http/middleware"
	repository2 "mobiplan/internal/adapter/persistence/repository"
	"mobiplan/internal/infrastructure/database"
	"mobiplan/internal/usecase"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	environmentRepo := repository2.NewEnvironmentDynamoRepository(ddb)
	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	installmentRepo := repository2.NewInstallmentDynamoRepository(ddb)

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, environmentRepo)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, installmentRepo)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase, budgetUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything else requires a Bearer token.
	protected := v1.Group("", middleware.JWTAuth())
	addBudgetRoutes(protected, budgetHandler, proposalHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
