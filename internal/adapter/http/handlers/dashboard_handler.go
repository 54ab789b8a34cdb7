package handlers

import (
	"errors"
	"log"
	"net/http"

	response "crm_senior/internal/adapter/http/dto/response"
	"crm_senior/internal/usecase"
	"crm_senior/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated pipeline metrics view.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary      Pipeline metrics, recent activity and recent estimates
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	data, err := h.usecase.Data(c.Request.Context(), callerUserID(c))
	if err != nil {
		log.Printf("[dashboard][handler] load failed err=%v", err)
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboard(data))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCallerID):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
