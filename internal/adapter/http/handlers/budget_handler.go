package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "crm_senior/internal/adapter/http/dto/request"
	response "crm_senior/internal/adapter/http/dto/response"
	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase"
	"crm_senior/internal/usecase/interfaces"
	"crm_senior/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for budgets: creation, the status
// pipeline and the PDF export.

type BudgetHandler struct {
	usecase  usecase.IBudgetUseCase
	renderer interfaces.IBudgetDocumentRenderer
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, renderer interfaces.IBudgetDocumentRenderer) *BudgetHandler {
	return &BudgetHandler{usecase: uc, renderer: renderer}
}

// CreateBudget godoc
// @Summary      Create a budget for a client
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        client_id  path      string                 true  "Client ID"
// @Param        budget     body      request.BudgetRequest  true  "New budget"
// @Success      201        {object}  response.BudgetResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /clients/{client_id}/budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	clientID := c.Param("client_id")
	log.Printf("[budget][handler] create start client_id=%s", clientID)

	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	total, err := payload.ResolveTotal()
	if err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	opts := usecase.BudgetOptions{Title: payload.Title, Header: payload.Header, Footer: payload.Footer}
	created, err := h.usecase.Create(c.Request.Context(), callerUserID(c), clientID, payload.ResolveItems(), total, opts)
	if err != nil {
		log.Printf("[budget][handler] create failed client_id=%s err=%v", clientID, err)
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[budget][handler] create success budget_id=%s client_id=%s total=%.2f", created.ID, clientID, created.Total)

	c.JSON(http.StatusCreated, response.FromBudget(created))
}

// ListActiveBudgets godoc
// @Summary      List the caller's active-pipeline budgets
// @Tags         budgets
// @Produce      json
// @Success      200  {array}   response.BudgetResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /budgets [get]
func (h *BudgetHandler) ListActiveBudgets(c *gin.Context) {
	items, err := h.usecase.ListActiveByUser(c.Request.Context(), callerUserID(c))
	if err != nil {
		log.Printf("[budget][handler] list failed err=%v", err)
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.BudgetResponse, 0, len(items))
	for _, item := range items {
		out = append(out, response.FromBudgetWithClient(item))
	}
	c.JSON(http.StatusOK, out)
}

// GetBudget godoc
// @Summary      Get one budget
// @Tags         budgets
// @Produce      json
// @Param        budget_id  path      string  true  "Budget ID"
// @Success      200        {object}  response.BudgetResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /budgets/{budget_id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budgetID := c.Param("budget_id")

	budget, err := h.usecase.GetByID(c.Request.Context(), callerUserID(c), budgetID)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// UpdateBudgetStatus godoc
// @Summary      Move a budget through the pipeline
// @Description  Moving to follow_up also returns a suggested reminder for the caller to confirm.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        budget_id  path      string                       true  "Budget ID"
// @Param        status     body      request.BudgetStatusRequest  true  "New status"
// @Success      200        {object}  response.StatusChangeResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /budgets/{budget_id}/status [patch]
func (h *BudgetHandler) UpdateBudgetStatus(c *gin.Context) {
	budgetID := c.Param("budget_id")

	var payload request.BudgetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	change, err := h.usecase.UpdateStatus(c.Request.Context(), callerUserID(c), budgetID, entities.BudgetStatus(payload.Status))
	if err != nil {
		log.Printf("[budget][handler] status update failed budget_id=%s status=%s err=%v", budgetID, payload.Status, err)
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[budget][handler] status update success budget_id=%s status=%s", budgetID, change.Budget.Status)

	c.JSON(http.StatusOK, response.FromStatusChange(change))
}

// CancelBudget godoc
// @Summary      Cancel (archive) a budget
// @Tags         budgets
// @Produce      json
// @Param        budget_id  path      string  true  "Budget ID"
// @Success      200        {object}  response.BudgetResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /budgets/{budget_id}/cancel [patch]
func (h *BudgetHandler) CancelBudget(c *gin.Context) {
	budgetID := c.Param("budget_id")

	cancelled, err := h.usecase.Cancel(c.Request.Context(), callerUserID(c), budgetID)
	if err != nil {
		log.Printf("[budget][handler] cancel failed budget_id=%s err=%v", budgetID, err)
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(cancelled))
}

// ExportBudgetPDF godoc
// @Summary      Download a budget as PDF
// @Tags         budgets
// @Produce      application/pdf
// @Param        budget_id  path  string  true  "Budget ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Router       /budgets/{budget_id}/pdf [get]
func (h *BudgetHandler) ExportBudgetPDF(c *gin.Context) {
	budgetID := c.Param("budget_id")
	log.Printf("[budget][handler] pdf export start budget_id=%s", budgetID)

	budget, client, issuer, err := h.usecase.GetForExport(c.Request.Context(), callerUserID(c), budgetID)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := h.renderer.RenderBudget(budget, client, issuer)
	if err != nil {
		log.Printf("[budget][handler] pdf render failed budget_id=%s err=%v", budgetID, err)
		appErr := pkg.NewDomainError("PDF_RENDER_FAILED", "Could not render the budget document", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("presupuesto-%s.pdf", budget.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidBudgetItems), errors.Is(err, usecase.ErrInvalidBudgetTotal),
		errors.Is(err, usecase.ErrInvalidBudgetStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCallerID):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
