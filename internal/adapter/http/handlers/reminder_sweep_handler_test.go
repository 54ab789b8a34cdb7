package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm_senior/internal/adapter/http/handlers/mocks"
	"crm_senior/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReminderSweepHandler_RunSweep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty due-set returns message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSweepUseCase(ctrl)
		h := NewReminderSweepHandler(uc)

		uc.EXPECT().Run(gomock.Any()).Return(usecase.SweepResult{}, nil)

		r := gin.New()
		r.GET("/v1/cron/reminders", h.RunSweep)

		req := httptest.NewRequest(http.MethodGet, "/v1/cron/reminders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res["message"] != "No pending reminders" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("processed count includes failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSweepUseCase(ctrl)
		h := NewReminderSweepHandler(uc)

		uc.EXPECT().Run(gomock.Any()).Return(usecase.SweepResult{
			Processed: 3,
			Outcomes: []usecase.SweepOutcome{
				{ReminderID: "r-1", Status: usecase.SweepSent},
				{ReminderID: "r-2", Status: usecase.SweepFailed, Err: errors.New("provider 500")},
				{ReminderID: "r-3", Status: usecase.SweepSent},
			},
		}, nil)

		r := gin.New()
		r.GET("/v1/cron/reminders", h.RunSweep)

		req := httptest.NewRequest(http.MethodGet, "/v1/cron/reminders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res struct {
			Success   bool `json:"success"`
			Processed int  `json:"processed"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if !res.Success || res.Processed != 3 {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("due-set query failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSweepUseCase(ctrl)
		h := NewReminderSweepHandler(uc)

		uc.EXPECT().Run(gomock.Any()).Return(usecase.SweepResult{}, errors.New("scan throttled"))

		r := gin.New()
		r.GET("/v1/cron/reminders", h.RunSweep)

		req := httptest.NewRequest(http.MethodGet, "/v1/cron/reminders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
