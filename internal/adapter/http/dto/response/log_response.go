package response

import (
	"time"

	"crm_senior/internal/domain/entities"
)

type LogEntryResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromLogEntry(e entities.LogEntry) LogEntryResponse {
	return LogEntryResponse{
		ID:          e.ID,
		ClientID:    e.ClientID,
		Type:        string(e.Type),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
