package routes

import (
	"log"
	_ "mecanica_workflow/docs" // This will be auto-generated
	"mecanica_workflow/internal/adapter/http/handlers"
	"mecanica_workflow/internal/adapter/http/middleware"
	"mecanica_workflow/internal/adapter/persistence/memory"
	repository2 "mecanica_workflow/internal/adapter/persistence/repository"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/infrastructure/database"
	"mecanica_workflow/internal/infrastructure/notifications"
	"mecanica_workflow/internal/usecase"
	"mecanica_workflow/internal/usecase/interfaces"
	"os"
	"strconv"
	"strings"

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
	estimateRepo, requestRepo, authorizationRepo := buildRepositories()

	var notifier interfaces.ITransitionNotifier
	dispatcher, err := notifications.NewWebhookDispatcher(os.Getenv("NOTIFICATION_WEBHOOK_URL"))
	if err != nil {
		log.Printf("Notification dispatcher not configured: %v", err)
	} else {
		notifier = dispatcher
	}

	clock := usecase.SystemClock{}
	statsUseCase := usecase.NewWorkflowStatsUseCase(authorizationRepo, statsPolicyFromEnv())
	authorizationUseCase := usecase.NewWorkAuthorizationUseCase(authorizationRepo, requestRepo, notifier, clock, statsUseCase)
	estimateUseCase := usecase.NewEstimateReviewUseCase(estimateRepo, authorizationUseCase, notifier, clock)
	requestUseCase := usecase.NewMechanicRequestUseCase(requestRepo, notifier, clock)

	estimateHandler := handlers.NewEstimateReviewHandler(estimateUseCase)
	requestHandler := handlers.NewMechanicRequestHandler(requestUseCase)
	authorizationHandler := handlers.NewWorkAuthorizationHandler(authorizationUseCase)
	statsHandler := handlers.NewWorkflowStatsHandler(statsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authenticated := v1.Group("", middleware.Actor())
	addWorkflowRoutes(authenticated, estimateHandler, requestHandler, authorizationHandler, statsHandler)
}

// buildRepositories selects the storage backend. DynamoDB is the production
// default; WORKFLOW_STORAGE=memory runs the whole service on the in-process
// store, which keeps local development free of AWS credentials.
func buildRepositories() (interfaces.ICostEstimateRepository, interfaces.IMechanicRequestRepository, interfaces.IWorkAuthorizationRepository) {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("WORKFLOW_STORAGE")), "memory") {
		log.Printf("Using in-memory storage backend")
		store := memory.NewStore()
		return store.Estimates(), store.Requests(), store.Authorizations()
	}

	ddb := database.ConnectDynamoDB()
	return repository2.NewCostEstimateDynamoRepository(ddb),
		repository2.NewMechanicRequestDynamoRepository(ddb),
		repository2.NewWorkAuthorizationDynamoRepository(ddb)
}

func statsPolicyFromEnv() entities.StatsPolicy {
	include, _ := strconv.ParseBool(os.Getenv("STATS_INCLUDE_CANCELLED_TIME"))
	return entities.StatsPolicy{IncludeCancelledTime: include}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
