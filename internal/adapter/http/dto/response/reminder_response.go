package response

import (
	"time"

	"crm_senior/internal/domain/entities"
)

type ReminderResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	IsSent      bool      `json:"is_sent"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromReminder(r entities.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:          r.ID,
		ClientID:    r.ClientID,
		UserID:      r.UserID,
		Description: r.Description,
		DueDate:     r.DueDate,
		IsSent:      r.IsSent,
		CreatedAt:   r.CreatedAt,
	}
}

// LogWithReminderResponse is the combined result of registering an activity
// entry that also scheduled a follow-up reminder.
type LogWithReminderResponse struct {
	Log      LogEntryResponse  `json:"log"`
	Reminder *ReminderResponse `json:"reminder,omitempty"`
}

func FromLogWithReminder(log entities.LogEntry, reminder *entities.Reminder) LogWithReminderResponse {
	res := LogWithReminderResponse{Log: FromLogEntry(log)}
	if reminder != nil {
		r := FromReminder(*reminder)
		res.Reminder = &r
	}
	return res
}
