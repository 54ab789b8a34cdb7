package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "crm_senior/internal/adapter/http/dto/request"
	response "crm_senior/internal/adapter/http/dto/response"
	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase"
	"crm_senior/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)
)

// ClientHandler handles HTTP requests for clients and their activity log.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// CreateClient godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body      request.ClientRequest  true  "New client"
// @Success      201     {object}  response.ClientResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), callerUserID(c), payload.Name, payload.Email, payload.Phone, payload.Description)
	if err != nil {
		log.Printf("[client][handler] create failed err=%v", err)
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(created))
}

// ListClients godoc
// @Summary      List the caller's clients, newest first
// @Tags         clients
// @Produce      json
// @Success      200  {array}   response.ClientResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), callerUserID(c))
	if err != nil {
		log.Printf("[client][handler] list failed err=%v", err)
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.ClientResponse, 0, len(items))
	for _, item := range items {
		out = append(out, response.FromClientWithLastLog(item))
	}
	c.JSON(http.StatusOK, out)
}

// GetClient godoc
// @Summary      Get one client
// @Tags         clients
// @Produce      json
// @Param        client_id  path      string  true  "Client ID"
// @Success      200        {object}  response.ClientResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /clients/{client_id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID := c.Param("client_id")

	client, err := h.usecase.GetByID(c.Request.Context(), callerUserID(c), clientID)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

// UpdateClientStatus godoc
// @Summary      Set a client's pipeline status
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client_id  path      string                       true  "Client ID"
// @Param        status     body      request.ClientStatusRequest  true  "New status"
// @Success      200        {object}  response.ClientResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /clients/{client_id}/status [patch]
func (h *ClientHandler) UpdateClientStatus(c *gin.Context) {
	clientID := c.Param("client_id")

	var payload request.ClientStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), callerUserID(c), clientID, entities.ClientStatus(payload.Status))
	if err != nil {
		log.Printf("[client][handler] status update failed client_id=%s err=%v", clientID, err)
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(updated))
}

// DeleteClient godoc
// @Summary      Delete a client and everything attached to it
// @Tags         clients
// @Param        client_id  path  string  true  "Client ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{client_id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID := c.Param("client_id")
	log.Printf("[client][handler] delete start client_id=%s", clientID)

	if err := h.usecase.Delete(c.Request.Context(), callerUserID(c), clientID); err != nil {
		log.Printf("[client][handler] delete failed client_id=%s err=%v", clientID, err)
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListClientLogs godoc
// @Summary      List a client's activity log, newest first
// @Tags         clients
// @Produce      json
// @Param        client_id  path      string  true   "Client ID"
// @Param        limit      query     int     false  "Max entries"
// @Success      200        {array}   response.LogEntryResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /clients/{client_id}/logs [get]
func (h *ClientHandler) ListClientLogs(c *gin.Context) {
	clientID := c.Param("client_id")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
			return
		}
		limit = parsed
	}

	entries, err := h.usecase.Logs(c.Request.Context(), callerUserID(c), clientID, limit)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.LogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, response.FromLogEntry(entry))
	}
	c.JSON(http.StatusOK, out)
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientName), errors.Is(err, usecase.ErrInvalidClientStatus), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
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
