package handlers

import (
	"errors"
	request "mecanica_workflow/internal/adapter/http/dto/request"
	response "mecanica_workflow/internal/adapter/http/dto/response"
	"mecanica_workflow/internal/adapter/http/middleware"
	"mecanica_workflow/internal/usecase"
	"mecanica_workflow/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateReviewHandler handles HTTP requests for the cost-estimate review
// flow: draft ingestion, sharing with a mechanic, the mechanic's decision
// and the customer's response.

type EstimateReviewHandler struct {
	usecase usecase.IEstimateReviewUseCase
}

func NewEstimateReviewHandler(uc usecase.IEstimateReviewUseCase) *EstimateReviewHandler {
	return &EstimateReviewHandler{usecase: uc}
}

// CreateDraft ingests an estimate produced by the diagnosis collaborator.
// The payload never carries a status; drafts always start at draft.
func (h *EstimateReviewHandler) CreateDraft(c *gin.Context) {
	var payload request.CreateEstimateDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	outcome, err := h.usecase.CreateDraft(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapEstimateReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReviewOutcome(outcome))
}

// ShareWithMechanic routes an estimate into the given shop's review lane.
func (h *EstimateReviewHandler) ShareWithMechanic(c *gin.Context) {
	var payload request.ShareEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	estimate, err := h.usecase.ShareWithMechanic(c.Request.Context(), actor, c.Param("estimate_id"), payload.ShopID, payload.CustomerComment)
	if err != nil {
		appErr := mapEstimateReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// Review records the mechanic's approve, modify or reject decision.
func (h *EstimateReviewHandler) Review(c *gin.Context) {
	var payload request.ReviewEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	outcome, err := h.usecase.Review(c.Request.Context(), actor, payload.ToCommand(c.Param("estimate_id")))
	if err != nil {
		appErr := mapEstimateReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviewOutcome(outcome))
}

// RespondToReview records the customer's answer to a mechanic modification.
// On approval the response carries the work authorization that was opened.
func (h *EstimateReviewHandler) RespondToReview(c *gin.Context) {
	var payload request.RespondReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	outcome, err := h.usecase.RespondToReview(c.Request.Context(), actor, payload.ToCommand(c.Param("estimate_id")))
	if err != nil {
		appErr := mapEstimateReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviewOutcome(outcome))
}

func (h *EstimateReviewHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapEstimateReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateReviewHandler) ListCustomerEstimates(c *gin.Context) {
	estimates, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapEstimateReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func mapEstimateReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidEstimateCustomerID),
		errors.Is(err, usecase.ErrInvalidEstimateShopID),
		errors.Is(err, usecase.ErrInvalidEstimateTotal),
		errors.Is(err, usecase.ErrInvalidReviewDecision),
		errors.Is(err, usecase.ErrMissingModifiedBreakdown),
		errors.Is(err, usecase.ErrMissingCustomerNotes):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotReviewable):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_STATE", "Estimate status does not allow this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnauthorizedActor):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "The record changed while processing, please retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
