package usecase

import (
	"context"
	"errors"
	"log"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase/interfaces"

	"github.com/benbjohnson/clock"
)

// SweepOutcomeStatus classifies what happened to one reminder in a sweep.

type SweepOutcomeStatus string

const (
	SweepSent           SweepOutcomeStatus = "sent"
	SweepSkippedNoEmail SweepOutcomeStatus = "skipped_no_email"
	SweepSkippedClaimed SweepOutcomeStatus = "skipped_claimed"
	SweepFailed         SweepOutcomeStatus = "failed"
)

// SweepOutcome is the per-reminder result of a sweep iteration.
type SweepOutcome struct {
	ReminderID string
	ClientID   string
	Recipient  string
	Status     SweepOutcomeStatus
	Err        error
}

// SweepResult aggregates one sweep execution. Processed counts every due
// reminder the sweep iterated, successes and failures alike.
type SweepResult struct {
	Processed int
	Outcomes  []SweepOutcome
}

// Empty reports whether the due-set was empty.
func (r SweepResult) Empty() bool {
	return r.Processed == 0
}

// IReminderSweepUseCase is the periodically triggered due-reminder delivery
// sweep. One reminder's failure never blocks the rest; the sweep itself only
// errors when the due-set query does.

type IReminderSweepUseCase interface {
	Run(ctx context.Context) (SweepResult, error)
}

type ReminderSweepUseCase struct {
	reminders interfaces.IReminderRepository
	clients   interfaces.IClientRepository
	users     interfaces.IUserRepository
	sender    interfaces.INotificationSender
	clock     clock.Clock
}

var _ IReminderSweepUseCase = (*ReminderSweepUseCase)(nil)

func NewReminderSweepUseCase(
	reminders interfaces.IReminderRepository,
	clients interfaces.IClientRepository,
	users interfaces.IUserRepository,
	sender interfaces.INotificationSender,
) *ReminderSweepUseCase {
	return &ReminderSweepUseCase{
		reminders: reminders,
		clients:   clients,
		users:     users,
		sender:    sender,
		clock:     clock.New(),
	}
}

func (u *ReminderSweepUseCase) Run(ctx context.Context) (SweepResult, error) {
	if u.sender == nil {
		log.Printf("[reminder][sweep] sender not configured")
		return SweepResult{}, errors.New("notification sender not configured")
	}

	now := u.clock.Now().UTC()
	due, err := u.reminders.ListDue(ctx, now)
	if err != nil {
		log.Printf("[reminder][sweep] due-set query failed err=%v", err)
		return SweepResult{}, err
	}
	if len(due) == 0 {
		return SweepResult{}, nil
	}
	log.Printf("[reminder][sweep] start due=%d at=%s", len(due), now.Format("2006-01-02T15:04:05Z07:00"))

	result := SweepResult{Processed: len(due), Outcomes: make([]SweepOutcome, 0, len(due))}
	for _, reminder := range due {
		result.Outcomes = append(result.Outcomes, u.process(ctx, reminder))
	}
	log.Printf("[reminder][sweep] done processed=%d", result.Processed)
	return result, nil
}

// process handles a single due reminder: resolve recipient, claim, send.
// Every failure path is absorbed into the outcome so the loop never aborts.
func (u *ReminderSweepUseCase) process(ctx context.Context, reminder entities.Reminder) SweepOutcome {
	outcome := SweepOutcome{ReminderID: reminder.ID, ClientID: reminder.ClientID}

	client, err := u.clients.GetByID(ctx, reminder.ClientID)
	if err != nil || client.ID == "" {
		log.Printf("[reminder][sweep] client load failed reminder_id=%s client_id=%s err=%v", reminder.ID, reminder.ClientID, err)
		outcome.Status = SweepFailed
		outcome.Err = err
		return outcome
	}

	user, err := u.users.GetByID(ctx, reminder.UserID)
	if err != nil {
		log.Printf("[reminder][sweep] user load failed reminder_id=%s user_id=%s err=%v", reminder.ID, reminder.UserID, err)
		outcome.Status = SweepFailed
		outcome.Err = err
		return outcome
	}
	if user.Email == "" {
		log.Printf("[reminder][sweep] recipient without email reminder_id=%s user_id=%s", reminder.ID, reminder.UserID)
		outcome.Status = SweepSkippedNoEmail
		return outcome
	}
	outcome.Recipient = user.Email

	// Claim before sending so overlapping sweeps cannot double-send.
	claimed, err := u.reminders.ClaimUnsent(ctx, reminder.ID)
	if err != nil {
		log.Printf("[reminder][sweep] claim failed reminder_id=%s err=%v", reminder.ID, err)
		outcome.Status = SweepFailed
		outcome.Err = err
		return outcome
	}
	if !claimed {
		log.Printf("[reminder][sweep] already claimed reminder_id=%s", reminder.ID)
		outcome.Status = SweepSkippedClaimed
		return outcome
	}

	msg := buildReminderEmail(user, client, reminder.Description)
	if err := u.sender.Send(ctx, msg); err != nil {
		log.Printf("[reminder][sweep] delivery failed reminder_id=%s to=%s err=%v", reminder.ID, user.Email, err)
		// Release the claim so the reminder is retried on the next sweep.
		if relErr := u.reminders.ReleaseClaim(ctx, reminder.ID); relErr != nil {
			log.Printf("[reminder][sweep] claim release failed reminder_id=%s err=%v", reminder.ID, relErr)
		}
		outcome.Status = SweepFailed
		outcome.Err = err
		return outcome
	}

	log.Printf("[reminder][sweep] sent reminder_id=%s to=%s", reminder.ID, user.Email)
	outcome.Status = SweepSent
	return outcome
}
