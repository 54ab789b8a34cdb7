package entities

// User is the authenticated owner of clients and recipient of reminders.
// Identity management lives upstream; this service only reads users to
// resolve reminder recipients.
//
// Storage model (DynamoDB):
//   - PK: id
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
