package response

import (
	"time"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase"
)

type ClientResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	Description  string            `json:"description,omitempty"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	LastActivity *LogEntryResponse `json:"last_activity,omitempty"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Description: c.Description,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromClientWithLastLog(item usecase.ClientWithLastLog) ClientResponse {
	res := FromClient(item.Client)
	if item.LastLog != nil {
		last := FromLogEntry(*item.LastLog)
		res.LastActivity = &last
	}
	return res
}
