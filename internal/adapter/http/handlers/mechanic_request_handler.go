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
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid mechanic request payload", http.StatusBadRequest)
)

// MechanicRequestHandler handles HTTP requests for the per-shop mechanic
// queues.

type MechanicRequestHandler struct {
	usecase usecase.IMechanicRequestUseCase
}

func NewMechanicRequestHandler(uc usecase.IMechanicRequestUseCase) *MechanicRequestHandler {
	return &MechanicRequestHandler{usecase: uc}
}

func (h *MechanicRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateMechanicRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToCommand())
	if err != nil {
		appErr := mapMechanicRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMechanicRequest(created))
}

// AssignRequest hands a queued request to a mechanic. An empty body assigns
// the calling mechanic.
func (h *MechanicRequestHandler) AssignRequest(c *gin.Context) {
	var payload request.AssignMechanicRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
			return
		}
	}

	actor := middleware.ActorFrom(c)
	updated, err := h.usecase.Assign(c.Request.Context(), actor, c.Param("request_id"), payload.MechanicID)
	if err != nil {
		appErr := mapMechanicRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanicRequest(updated))
}

func (h *MechanicRequestHandler) UpdateRequestStatus(c *gin.Context) {
	var payload request.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), actor, c.Param("request_id"), entities.RequestStatus(payload.Status))
	if err != nil {
		appErr := mapMechanicRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanicRequest(updated))
}

func (h *MechanicRequestHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapMechanicRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanicRequest(r))
}

// ListShopQueue returns a shop's requests oldest first, with 1-based queue
// positions annotated on the still-queued items.
func (h *MechanicRequestHandler) ListShopQueue(c *gin.Context) {
	items, err := h.usecase.ListByShopID(c.Request.Context(), c.Param("shop_id"))
	if err != nil {
		appErr := mapMechanicRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanicRequestQueue(items))
}

func (h *MechanicRequestHandler) ListCustomerRequests(c *gin.Context) {
	items, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapMechanicRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.MechanicRequestResponse, 0, len(items))
	for _, r := range items {
		out = append(out, response.FromMechanicRequest(r))
	}
	c.JSON(http.StatusOK, out)
}

func mapMechanicRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidRequestShopID),
		errors.Is(err, usecase.ErrInvalidRequestMessage),
		errors.Is(err, usecase.ErrInvalidRequestMechanicID),
		errors.Is(err, usecase.ErrInvalidRequestStatus),
		errors.Is(err, usecase.ErrInvalidEstimateCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_REQUEST_NOT_FOUND", "Mechanic request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidRequestTransition):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST_STATE", "Request status does not allow this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnauthorizedActor):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "The record changed while processing, please retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
