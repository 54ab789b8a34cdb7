package handlers

import (
	"log"
	"net/http"

	response "crm_senior/internal/adapter/http/dto/response"
	"crm_senior/internal/usecase"
	"crm_senior/pkg"

	"github.com/gin-gonic/gin"
)

// ReminderSweepHandler exposes the due-reminder sweep to the external cron
// trigger.

type ReminderSweepHandler struct {
	usecase usecase.IReminderSweepUseCase
}

func NewReminderSweepHandler(uc usecase.IReminderSweepUseCase) *ReminderSweepHandler {
	return &ReminderSweepHandler{usecase: uc}
}

// RunSweep godoc
// @Summary      Deliver every due, unsent reminder
// @Tags         cron
// @Produce      json
// @Success      200  {object}  response.SweepResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /cron/reminders [get]
func (h *ReminderSweepHandler) RunSweep(c *gin.Context) {
	log.Printf("[sweep][handler] sweep start")

	result, err := h.usecase.Run(c.Request.Context())
	if err != nil {
		log.Printf("[sweep][handler] sweep failed err=%v", err)
		appErr := pkg.NewDomainError("SWEEP_FAILED", "Could not run the reminder sweep", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if result.Empty() {
		c.JSON(http.StatusOK, response.EmptySweep())
		return
	}

	log.Printf("[sweep][handler] sweep done processed=%d", result.Processed)
	c.JSON(http.StatusOK, response.FromSweepResult(result))
}
