package handlers

import (
	"errors"
	request "mecanica_workflow/internal/adapter/http/dto/request"
	response "mecanica_workflow/internal/adapter/http/dto/response"
	"mecanica_workflow/internal/adapter/http/middleware"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase"
	"mecanica_workflow/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthorizationPayload = pkg.NewDomainErrorSimple("INVALID_AUTHORIZATION_INPUT", "Invalid work authorization payload", http.StatusBadRequest)
)

// WorkAuthorizationHandler handles HTTP requests against the work
// authorization state machine.

type WorkAuthorizationHandler struct {
	usecase usecase.IWorkAuthorizationUseCase
}

func NewWorkAuthorizationHandler(uc usecase.IWorkAuthorizationUseCase) *WorkAuthorizationHandler {
	return &WorkAuthorizationHandler{usecase: uc}
}

// TransitionStatus moves an authorization one stage along the workflow. The
// target status comes from the body; the state machine decides whether the
// edge is legal from the current stage.
func (h *WorkAuthorizationHandler) TransitionStatus(c *gin.Context) {
	var payload request.TransitionWorkAuthorizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthorizationPayload.HTTPStatus, errInvalidAuthorizationPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	updated, err := h.usecase.Transition(c.Request.Context(), actor, c.Param("authorization_id"), entities.WorkflowStatus(payload.Status))
	if err != nil {
		appErr := mapWorkAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkAuthorization(updated))
}

func (h *WorkAuthorizationHandler) GetAuthorization(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("authorization_id"))
	if err != nil {
		appErr := mapWorkAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkAuthorization(w))
}

func (h *WorkAuthorizationHandler) ListMechanicAuthorizations(c *gin.Context) {
	h.list(c, func() ([]entities.WorkAuthorization, error) {
		return h.usecase.ListByMechanicID(c.Request.Context(), c.Param("mechanic_id"))
	})
}

func (h *WorkAuthorizationHandler) ListShopAuthorizations(c *gin.Context) {
	h.list(c, func() ([]entities.WorkAuthorization, error) {
		return h.usecase.ListByShopID(c.Request.Context(), c.Param("shop_id"))
	})
}

func (h *WorkAuthorizationHandler) ListCustomerAuthorizations(c *gin.Context) {
	h.list(c, func() ([]entities.WorkAuthorization, error) {
		return h.usecase.ListByCustomerID(c.Request.Context(), c.Param("customer_id"))
	})
}

func (h *WorkAuthorizationHandler) list(c *gin.Context, fetch func() ([]entities.WorkAuthorization, error)) {
	items, err := fetch()
	if err != nil {
		appErr := mapWorkAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkAuthorizations(items))
}

func mapWorkAuthorizationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAuthorizationID),
		errors.Is(err, usecase.ErrInvalidWorkflowStatus),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidEstimateCustomerID),
		errors.Is(err, usecase.ErrInvalidRequestMechanicID),
		errors.Is(err, usecase.ErrInvalidRequestShopID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuthorizationNotFound):
		return pkg.NewDomainErrorSimple("AUTHORIZATION_NOT_FOUND", "Work authorization not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Workflow status does not allow this transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotApproved):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVED", "Estimate is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnauthorizedActor):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "The record changed while processing, please retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
