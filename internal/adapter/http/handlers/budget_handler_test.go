package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm_senior/internal/adapter/http/handlers/mocks"
	mock_interfaces "crm_senior/internal/usecase/interfaces/mocks"
	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/clients/:client_id/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients/c-1/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unresolvable total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/clients/:client_id/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients/c-1/budgets", bytes.NewBufferString(`{"items":[{"description":"x","quantity":1,"price":0}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), "u-1", "c-1", gomock.Any(), 100.0, gomock.Any()).Return(entities.Budget{
			ID:       "b-1",
			ClientID: "c-1",
			Title:    "Presupuesto",
			Status:   entities.BudgetStatusDraft,
			Total:    100,
		}, nil)

		r := gin.New()
		r.POST("/v1/clients/:client_id/budgets", h.CreateBudget)

		body := `{"items":[{"description":"Cambio de aceite","quantity":2,"price":50}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/clients/c-1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(CallerHeader, "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res["id"] != "b-1" || res["status"] != "draft" || res["status_label"] != "Borrador" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("client not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), "u-1", "c-404", gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Budget{}, usecase.ErrClientNotFound)

		r := gin.New()
		r.POST("/v1/clients/:client_id/budgets", h.CreateBudget)

		body := `{"items":[{"description":"x","quantity":1,"price":10}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/clients/c-404/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(CallerHeader, "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_UpdateBudgetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("follow_up returns suggestion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc, nil)

		due := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().UpdateStatus(gomock.Any(), "u-1", "b-1", entities.BudgetStatusFollowUp).Return(usecase.StatusChange{
			Budget: entities.Budget{ID: "b-1", ClientID: "c-1", Status: entities.BudgetStatusFollowUp},
			FollowUp: &usecase.FollowUpSuggestion{
				ClientID: "c-1",
				Note:     "Seguimiento Presupuesto: Juan",
				DueDate:  due,
			},
		}, nil)

		r := gin.New()
		r.PATCH("/v1/budgets/:budget_id/status", h.UpdateBudgetStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"follow_up"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(CallerHeader, "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res struct {
			Budget   map[string]any `json:"budget"`
			FollowUp *struct {
				ClientID string `json:"client_id"`
				Note     string `json:"note"`
			} `json:"follow_up"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res.FollowUp == nil || res.FollowUp.ClientID != "c-1" {
			t.Fatalf("expected follow-up suggestion, got %s", w.Body.String())
		}
	})

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc, nil)

		uc.EXPECT().UpdateStatus(gomock.Any(), "u-1", "b-1", entities.BudgetStatusPaid).Return(usecase.StatusChange{}, usecase.ErrIllegalTransition)

		r := gin.New()
		r.PATCH("/v1/budgets/:budget_id/status", h.UpdateBudgetStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"paid"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(CallerHeader, "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("foreign budget maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc, nil)

		uc.EXPECT().UpdateStatus(gomock.Any(), "u-2", "b-1", entities.BudgetStatusSent).Return(usecase.StatusChange{}, usecase.ErrAccessDenied)

		r := gin.New()
		r.PATCH("/v1/budgets/:budget_id/status", h.UpdateBudgetStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"sent"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(CallerHeader, "u-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_ExportBudgetPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("streams pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		renderer := mock_interfaces.NewMockIBudgetDocumentRenderer(ctrl)
		h := NewBudgetHandler(uc, renderer)

		budget := entities.Budget{ID: "b-1", ClientID: "c-1"}
		client := entities.Client{ID: "c-1", UserID: "u-1"}
		issuer := entities.User{ID: "u-1", Name: "Vendedor"}
		uc.EXPECT().GetForExport(gomock.Any(), "u-1", "b-1").Return(budget, client, issuer, nil)
		renderer.EXPECT().RenderBudget(budget, client, issuer).Return([]byte("%PDF-1.3"), nil)

		r := gin.New()
		r.GET("/v1/budgets/:budget_id/pdf", h.ExportBudgetPDF)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/b-1/pdf", nil)
		req.Header.Set(CallerHeader, "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected application/pdf, got %q", ct)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected pdf payload, got %q", w.Body.String())
		}
	})

	t.Run("render failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		renderer := mock_interfaces.NewMockIBudgetDocumentRenderer(ctrl)
		h := NewBudgetHandler(uc, renderer)

		uc.EXPECT().GetForExport(gomock.Any(), "u-1", "b-1").Return(entities.Budget{ID: "b-1"}, entities.Client{ID: "c-1"}, entities.User{ID: "u-1"}, nil)
		renderer.EXPECT().RenderBudget(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("font missing"))

		r := gin.New()
		r.GET("/v1/budgets/:budget_id/pdf", h.ExportBudgetPDF)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/b-1/pdf", nil)
		req.Header.Set(CallerHeader, "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
