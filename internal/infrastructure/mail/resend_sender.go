package mail

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"crm_senior/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

// ResendSender delivers notification emails through Resend.
//
// Mock mode (EMAIL_MOCK=1/true/...) skips the provider entirely and logs the
// would-be delivery, which keeps local environments working without an API
// key.

type ResendSender struct {
	client   *resend.Client
	mockMode bool
}

var _ interfaces.INotificationSender = (*ResendSender)(nil)

func NewResendSender(apiKey string) (*ResendSender, error) {
	if isEmailMockEnabled() {
		log.Printf("[mail][sender] mock mode enabled")
		return &ResendSender{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[mail][sender] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}

	log.Printf("[mail][sender] Resend client initialized")
	return &ResendSender{client: resend.NewClient(apiKey)}, nil
}

func (s *ResendSender) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	if s != nil && s.mockMode {
		log.Printf("[mail][sender] mock send to=%s subject=%q body_len=%d", msg.To, msg.Subject, len(msg.HTMLBody))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTMLBody,
	}
	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("[mail][sender] send failed to=%s err=%v", msg.To, err)
		return err
	}
	log.Printf("[mail][sender] sent to=%s provider_id=%s", msg.To, sent.Id)
	return nil
}

func isEmailMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EMAIL_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
