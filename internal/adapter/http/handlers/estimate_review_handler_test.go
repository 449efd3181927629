package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mecanica_workflow/internal/adapter/http/handlers/mocks"
	"mecanica_workflow/internal/adapter/http/middleware"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func estimateRouter(h *EstimateReviewHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1", middleware.Actor())
	v1.POST("/estimates", h.CreateDraft)
	v1.POST("/estimates/:estimate_id/share", h.ShareWithMechanic)
	v1.POST("/estimates/:estimate_id/review", h.Review)
	v1.POST("/estimates/:estimate_id/response", h.RespondToReview)
	v1.GET("/estimates/:estimate_id", h.GetEstimate)
	return r
}

func asActor(req *http.Request, actor entities.Actor) {
	req.Header.Set(middleware.HeaderActorID, actor.ID)
	req.Header.Set(middleware.HeaderActorRole, string(actor.Role))
}

func TestEstimateReviewHandler_CreateDraft(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateReviewUseCase(ctrl)
		r := estimateRouter(NewEstimateReviewHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		asActor(req, entities.Actor{ID: "svc-diagnosis", Role: entities.RoleAdmin})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing actor identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateReviewUseCase(ctrl)
		r := estimateRouter(NewEstimateReviewHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success with warnings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateReviewUseCase(ctrl)
		r := estimateRouter(NewEstimateReviewHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().CreateDraft(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateDraftCommand{})).Return(usecase.ReviewOutcome{
			Estimate: entities.CostEstimate{ID: "est-1", CustomerID: "cust-1", Status: entities.EstimateStatusDraft, CreatedAt: now, UpdatedAt: now},
			Warnings: []string{"breakdown components sum to 250.00 but total is 300.00"},
		}, nil)

		body := `{"customer_id":"cust-1","breakdown":{"total":300,"labor":{"hours":2,"hourly_rate":100,"total":200},"parts_total":50}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		asActor(req, entities.Actor{ID: "svc-diagnosis", Role: entities.RoleAdmin})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Estimate struct {
				ID string `json:"id"`
			} `json:"estimate"`
			Warnings []string `json:"warnings"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Estimate.ID != "est-1" || len(resp.Warnings) != 1 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestEstimateReviewHandler_Review(t *testing.T) {
	mechanic := entities.Actor{ID: "mech-1", Role: entities.RoleMechanic}

	t.Run("decision normalized to lower case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateReviewUseCase(ctrl)
		r := estimateRouter(NewEstimateReviewHandler(uc))

		uc.EXPECT().Review(gomock.Any(), mechanic, gomock.AssignableToTypeOf(usecase.ReviewCommand{})).DoAndReturn(
			func(_ any, _ entities.Actor, cmd usecase.ReviewCommand) (usecase.ReviewOutcome, error) {
				if cmd.EstimateID != "est-1" || cmd.Decision != entities.ReviewDecisionApprove {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return usecase.ReviewOutcome{Estimate: entities.CostEstimate{ID: "est-1", Status: entities.EstimateStatusMechanicApproved}}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/review", bytes.NewBufferString(`{"decision":"Approve"}`))
		req.Header.Set("Content-Type", "application/json")
		asActor(req, mechanic)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("wrong state maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateReviewUseCase(ctrl)
		r := estimateRouter(NewEstimateReviewHandler(uc))

		uc.EXPECT().Review(gomock.Any(), mechanic, gomock.Any()).Return(usecase.ReviewOutcome{}, usecase.ErrEstimateNotReviewable)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/review", bytes.NewBufferString(`{"decision":"modify","modified_breakdown":{"total":100}}`))
		req.Header.Set("Content-Type", "application/json")
		asActor(req, mechanic)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateReviewUseCase(ctrl)
		r := estimateRouter(NewEstimateReviewHandler(uc))

		uc.EXPECT().Review(gomock.Any(), mechanic, gomock.Any()).Return(usecase.ReviewOutcome{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-404/review", bytes.NewBufferString(`{"decision":"approve"}`))
		req.Header.Set("Content-Type", "application/json")
		asActor(req, mechanic)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEstimateReviewHandler_RespondToReview(t *testing.T) {
	customer := entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}

	t.Run("approval returns the opened authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateReviewUseCase(ctrl)
		r := estimateRouter(NewEstimateReviewHandler(uc))

		authz := entities.WorkAuthorization{ID: "wa-1", EstimateID: "est-1", WorkflowStatus: entities.WorkflowStatusAssigned}
		uc.EXPECT().RespondToReview(gomock.Any(), customer, gomock.Any()).Return(usecase.ReviewOutcome{
			Estimate:      entities.CostEstimate{ID: "est-1", Status: entities.EstimateStatusCustomerApproved},
			Authorization: &authz,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/response", bytes.NewBufferString(`{"decision":"approve"}`))
		req.Header.Set("Content-Type", "application/json")
		asActor(req, customer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			WorkAuthorization *struct {
				ID string `json:"id"`
			} `json:"work_authorization"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.WorkAuthorization == nil || resp.WorkAuthorization.ID != "wa-1" {
			t.Fatalf("authorization missing from response: %s", w.Body.String())
		}
	})

	t.Run("missing rejection notes map to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateReviewUseCase(ctrl)
		r := estimateRouter(NewEstimateReviewHandler(uc))

		uc.EXPECT().RespondToReview(gomock.Any(), customer, gomock.Any()).Return(usecase.ReviewOutcome{}, usecase.ErrMissingCustomerNotes)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/response", bytes.NewBufferString(`{"decision":"reject"}`))
		req.Header.Set("Content-Type", "application/json")
		asActor(req, customer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
