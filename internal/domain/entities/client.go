package entities

import "time"

// ClientStatus represents the coarse sales-pipeline stage of a client.
//
// Domain notes:
//   - The stored status is authoritative; views may project a display status
//     from the client's budgets but never write it back.
//   - The only automatic transition is new -> estimate when the first budget
//     is generated for the client.

type ClientStatus string

const (
	ClientStatusNew       ClientStatus = "new"
	ClientStatusEstimate  ClientStatus = "estimate"
	ClientStatusFollowUp  ClientStatus = "follow_up"
	ClientStatusApproval  ClientStatus = "approval"
	ClientStatusApproved  ClientStatus = "approved"
	ClientStatusCancelled ClientStatus = "cancelled"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientStatusNew, ClientStatusEstimate, ClientStatusFollowUp,
		ClientStatusApproval, ClientStatusApproved, ClientStatusCancelled:
		return true
	}
	return false
}

// Client is a CRM client owned by exactly one user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Deleting a client cascades to its budgets, log entries and reminders.
type Client struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Name        string       `json:"name"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Description string       `json:"description,omitempty"`
	Status      ClientStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
