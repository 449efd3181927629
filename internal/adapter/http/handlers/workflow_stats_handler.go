package handlers

import (
	"errors"
	response "mecanica_workflow/internal/adapter/http/dto/response"
	"mecanica_workflow/internal/usecase"
	"mecanica_workflow/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkflowStatsHandler serves on-demand mechanic and shop metrics.

type WorkflowStatsHandler struct {
	usecase usecase.IWorkflowStatsUseCase
}

func NewWorkflowStatsHandler(uc usecase.IWorkflowStatsUseCase) *WorkflowStatsHandler {
	return &WorkflowStatsHandler{usecase: uc}
}

func (h *WorkflowStatsHandler) GetMechanicStats(c *gin.Context) {
	stats, err := h.usecase.ForMechanic(c.Request.Context(), c.Param("mechanic_id"))
	if err != nil {
		appErr := mapWorkflowStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflowStats(stats))
}

func (h *WorkflowStatsHandler) GetShopStats(c *gin.Context) {
	stats, err := h.usecase.ForShop(c.Request.Context(), c.Param("shop_id"))
	if err != nil {
		appErr := mapWorkflowStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflowStats(stats))
}

func mapWorkflowStatsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestMechanicID), errors.Is(err, usecase.ErrInvalidRequestShopID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
