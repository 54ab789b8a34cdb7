package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm_senior/internal/adapter/http/handlers/mocks"
	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"email":"a@b.c"}`))
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
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "u-1", "Juan Perez", "juan@mail.com", "", "").Return(entities.Client{
			ID:     "c-1",
			UserID: "u-1",
			Name:   "Juan Perez",
			Email:  "juan@mail.com",
			Status: entities.ClientStatusNew,
		}, nil)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"name":"Juan Perez","email":"juan@mail.com"}`))
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
		if res["id"] != "c-1" || res["status"] != "new" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("missing caller maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "", "Juan", "", "", "").Return(entities.Client{}, usecase.ErrInvalidCallerID)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"name":"Juan"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestClientHandler_ListClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	last := entities.LogEntry{ID: "l-1", ClientID: "c-1", Type: entities.LogTypeInfo, Description: "Cliente creado en el sistema"}
	uc.EXPECT().List(gomock.Any(), "u-1").Return([]usecase.ClientWithLastLog{
		{Client: entities.Client{ID: "c-1", UserID: "u-1", Name: "Juan", Status: entities.ClientStatusEstimate}, LastLog: &last},
		{Client: entities.Client{ID: "c-2", UserID: "u-1", Name: "Maria", Status: entities.ClientStatusNew}},
	}, nil)

	r := gin.New()
	r.GET("/v1/clients", h.ListClients)

	req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
	req.Header.Set(CallerHeader, "u-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(res))
	}
	if _, ok := res[0]["last_activity"]; !ok {
		t.Fatalf("expected last_activity on first client: %v", res[0])
	}
	if _, ok := res[1]["last_activity"]; ok {
		t.Fatalf("expected no last_activity on second client: %v", res[1])
	}
}

func TestClientHandler_DeleteClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "u-1", "c-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/clients/:client_id", h.DeleteClient)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/c-1", nil)
		req.Header.Set(CallerHeader, "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "u-1", "c-404").Return(usecase.ErrClientNotFound)

		r := gin.New()
		r.DELETE("/v1/clients/:client_id", h.DeleteClient)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/c-404", nil)
		req.Header.Set(CallerHeader, "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestClientHandler_ListClientLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("limit passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Logs(gomock.Any(), "u-1", "c-1", 10).Return([]entities.LogEntry{
			{ID: "l-1", ClientID: "c-1", Type: entities.LogTypeBudget, Description: "Presupuesto generado por valor de $100"},
		}, nil)

		r := gin.New()
		r.GET("/v1/clients/:client_id/logs", h.ListClientLogs)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/c-1/logs?limit=10", nil)
		req.Header.Set(CallerHeader, "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad limit rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/v1/clients/:client_id/logs", h.ListClientLogs)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/c-1/logs?limit=many", nil)
		req.Header.Set(CallerHeader, "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
