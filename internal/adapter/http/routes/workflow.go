package routes

import (
	"mecanica_workflow/internal/adapter/http/handlers"
	"mecanica_workflow/internal/adapter/http/middleware"
	"mecanica_workflow/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates          = "/estimates"
	PathMechanicRequests   = "/mechanic-requests"
	PathWorkAuthorizations = "/work-authorizations"
	PathStats              = "/stats"
)

// Route-level guards are coarse; the use cases still enforce record-level
// ownership (a customer can only act on their own records).
func addWorkflowRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateReviewHandler,
	requestHandler *handlers.MechanicRequestHandler,
	authorizationHandler *handlers.WorkAuthorizationHandler,
	statsHandler *handlers.WorkflowStatsHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateDraft)
		estimates.GET("/:estimate_id", estimateHandler.GetEstimate)
		estimates.POST("/:estimate_id/share", middleware.RequireRole(entities.RoleCustomer), estimateHandler.ShareWithMechanic)
		estimates.POST("/:estimate_id/review", middleware.RequireRole(entities.RoleMechanic), estimateHandler.Review)
		estimates.POST("/:estimate_id/response", middleware.RequireRole(entities.RoleCustomer), estimateHandler.RespondToReview)
	}
	rg.GET("/customers/:customer_id"+PathEstimates, estimateHandler.ListCustomerEstimates)

	requests := rg.Group(PathMechanicRequests)
	{
		requests.POST("", middleware.RequireRole(entities.RoleCustomer), requestHandler.CreateRequest)
		requests.GET("/:request_id", requestHandler.GetRequest)
		requests.PATCH("/:request_id/assign", middleware.RequireRole(entities.RoleMechanic), requestHandler.AssignRequest)
		requests.PATCH("/:request_id/status", requestHandler.UpdateRequestStatus)
	}
	rg.GET("/shops/:shop_id"+PathMechanicRequests, requestHandler.ListShopQueue)
	rg.GET("/customers/:customer_id"+PathMechanicRequests, requestHandler.ListCustomerRequests)

	authorizations := rg.Group(PathWorkAuthorizations)
	{
		authorizations.GET("/:authorization_id", authorizationHandler.GetAuthorization)
		authorizations.PATCH("/:authorization_id/status", authorizationHandler.TransitionStatus)
	}
	rg.GET("/mechanics/:mechanic_id"+PathWorkAuthorizations, authorizationHandler.ListMechanicAuthorizations)
	rg.GET("/shops/:shop_id"+PathWorkAuthorizations, authorizationHandler.ListShopAuthorizations)
	rg.GET("/customers/:customer_id"+PathWorkAuthorizations, authorizationHandler.ListCustomerAuthorizations)

	stats := rg.Group(PathStats)
	{
		stats.GET("/mechanics/:mechanic_id", statsHandler.GetMechanicStats)
		stats.GET("/shops/:shop_id", statsHandler.GetShopStats)
	}
}
