package handlers

import (
	"errors"
	"log"
	"net/http"

	request "crm_senior/internal/adapter/http/dto/request"
	response "crm_senior/internal/adapter/http/dto/response"
	"crm_senior/internal/usecase"
	"crm_senior/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLogPayload      = pkg.NewDomainErrorSimple("INVALID_LOG_INPUT", "Invalid log payload", http.StatusBadRequest)
	errInvalidReminderPayload = pkg.NewDomainErrorSimple("INVALID_REMINDER_INPUT", "Invalid reminder payload", http.StatusBadRequest)
)

// ReminderHandler handles the activity-log writes and reminder scheduling.

type ReminderHandler struct {
	usecase usecase.IReminderUseCase
}

func NewReminderHandler(uc usecase.IReminderUseCase) *ReminderHandler {
	return &ReminderHandler{usecase: uc}
}

// CreateLog godoc
// @Summary      Add an activity entry, optionally scheduling a reminder
// @Description  When due_date is present the entry is logged as a call and a reminder is scheduled for that morning.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client_id  path      string              true  "Client ID"
// @Param        log        body      request.LogRequest  true  "Activity entry"
// @Success      201        {object}  response.LogWithReminderResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /clients/{client_id}/logs [post]
func (h *ReminderHandler) CreateLog(c *gin.Context) {
	clientID := c.Param("client_id")

	var payload request.LogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLogPayload.HTTPStatus, errInvalidLogPayload.ToHTTPError())
		return
	}

	entry, reminder, err := h.usecase.CreateLogAndReminder(c.Request.Context(), callerUserID(c), clientID, payload.Description, payload.DueDate)
	if err != nil {
		log.Printf("[reminder][handler] create log failed client_id=%s err=%v", clientID, err)
		appErr := mapReminderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLogWithReminder(entry, reminder))
}

// CreateReminder godoc
// @Summary      Confirm a follow-up reminder for a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client_id  path      string                   true  "Client ID"
// @Param        reminder   body      request.ReminderRequest  true  "Reminder"
// @Success      201        {object}  response.ReminderResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /clients/{client_id}/reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	clientID := c.Param("client_id")

	var payload request.ReminderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReminderPayload.HTTPStatus, errInvalidReminderPayload.ToHTTPError())
		return
	}

	due, err := payload.ResolveDue()
	if err != nil {
		c.JSON(errInvalidReminderPayload.HTTPStatus, errInvalidReminderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateBudgetReminder(c.Request.Context(), callerUserID(c), clientID, payload.Description, due)
	if err != nil {
		log.Printf("[reminder][handler] create failed client_id=%s err=%v", clientID, err)
		appErr := mapReminderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[reminder][handler] create success reminder_id=%s client_id=%s due=%s", created.ID, clientID, created.DueDate)

	c.JSON(http.StatusCreated, response.FromReminder(created))
}

// SendTestReminder godoc
// @Summary      Send a test reminder email for a client right now
// @Tags         clients
// @Produce      json
// @Param        client_id  path  string  true  "Client ID"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  pkg.HTTPError
// @Router       /clients/{client_id}/reminders/test [post]
func (h *ReminderHandler) SendTestReminder(c *gin.Context) {
	clientID := c.Param("client_id")
	log.Printf("[reminder][handler] test email start client_id=%s", clientID)

	if err := h.usecase.SendTest(c.Request.Context(), callerUserID(c), clientID); err != nil {
		log.Printf("[reminder][handler] test email failed client_id=%s err=%v", clientID, err)
		appErr := mapReminderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mapReminderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReminderDesc), errors.Is(err, usecase.ErrInvalidDueDate),
		errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserWithoutEmail):
		return pkg.NewDomainErrorSimple("USER_WITHOUT_EMAIL", "User has no email address", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidCallerID):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
