package request

import (
	"errors"
	"strings"
	"time"

	"crm_senior/internal/domain/entities"
)

var ErrInvalidReminderDue = errors.New("invalid reminder due date")

// ReminderRequest is the follow-up confirmation payload. DueAt is an
// already-resolved RFC3339 instant and wins when present; DueDate is a
// date-only fallback composed with the default morning hour server-side.
type ReminderRequest struct {
	Description string `json:"description" binding:"required"`
	DueAt       string `json:"due_at"`
	DueDate     string `json:"due_date"`
}

func (r ReminderRequest) ResolveDue() (time.Time, error) {
	if v := strings.TrimSpace(r.DueAt); v != "" {
		at, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, ErrInvalidReminderDue
		}
		return at, nil
	}

	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(r.DueDate), time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidReminderDue
	}
	return time.Date(day.Year(), day.Month(), day.Day(), entities.ReminderDefaultHour, 0, 0, 0, time.Local), nil
}
