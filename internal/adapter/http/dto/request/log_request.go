package request

// LogRequest is the add-activity dialog payload. DueDate ("2006-01-02") is
// optional; when present the note also schedules a reminder.
type LogRequest struct {
	Description string `json:"description" binding:"required"`
	DueDate     string `json:"due_date"`
}
