package request

// ClientRequest is the new-client form payload. Only the name is required.
type ClientRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// ClientStatusRequest sets a client's pipeline status directly.
type ClientStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
