package interfaces

import "context"

// EmailMessage is the outbound notification payload.
type EmailMessage struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// INotificationSender abstracts the outbound email provider (e.g. Resend).
//
// A single synchronous attempt, no delivery guarantee beyond the returned
// error; retry policy belongs to the caller.
type INotificationSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
