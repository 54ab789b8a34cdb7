package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase/interfaces"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

var (
	ErrInvalidReminderDesc = errors.New("invalid reminder description")
	ErrInvalidDueDate      = errors.New("invalid due date")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrUserWithoutEmail    = errors.New("user has no email address")
)

// DueInput resolves the ambiguous "due date" forms a caller may supply.
//
// When At is set it is an already-resolved absolute instant (e.g. timezone
// corrected on the client) and is used verbatim. Otherwise Date, a
// "2006-01-02" value, is composed with 09:00 in the server's local frame.
// Callers should prefer supplying At whenever available.
type DueInput struct {
	At   *time.Time
	Date string
}

// IReminderUseCase schedules reminders and writes the activity log entries
// tied to them.

type IReminderUseCase interface {
	Schedule(ctx context.Context, clientID, userID, description string, due DueInput) (entities.Reminder, error)
	CreateLogAndReminder(ctx context.Context, callerUserID, clientID, description, dueDate string) (entities.LogEntry, *entities.Reminder, error)
	CreateBudgetReminder(ctx context.Context, callerUserID, clientID, description string, due time.Time) (entities.Reminder, error)
	SendTest(ctx context.Context, callerUserID, clientID string) error
}

type ReminderUseCase struct {
	reminders interfaces.IReminderRepository
	clients   interfaces.IClientRepository
	logs      interfaces.ILogEntryRepository
	users     interfaces.IUserRepository
	sender    interfaces.INotificationSender
	clock     clock.Clock
}

var _ IReminderUseCase = (*ReminderUseCase)(nil)

func NewReminderUseCase(
	reminders interfaces.IReminderRepository,
	clients interfaces.IClientRepository,
	logs interfaces.ILogEntryRepository,
	users interfaces.IUserRepository,
	sender interfaces.INotificationSender,
) *ReminderUseCase {
	return &ReminderUseCase{
		reminders: reminders,
		clients:   clients,
		logs:      logs,
		users:     users,
		sender:    sender,
		clock:     clock.New(),
	}
}

func (u *ReminderUseCase) Schedule(ctx context.Context, clientID, userID, description string, due DueInput) (entities.Reminder, error) {
	clientID = strings.TrimSpace(clientID)
	userID = strings.TrimSpace(userID)
	description = strings.TrimSpace(description)
	if clientID == "" {
		return entities.Reminder{}, ErrInvalidClientID
	}
	if userID == "" {
		return entities.Reminder{}, ErrInvalidUserID
	}
	if description == "" {
		return entities.Reminder{}, ErrInvalidReminderDesc
	}

	dueAt, err := u.resolveDue(due)
	if err != nil {
		return entities.Reminder{}, err
	}

	r := entities.Reminder{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		UserID:      userID,
		Description: description,
		DueDate:     dueAt,
		IsSent:      false,
		CreatedAt:   u.clock.Now().UTC(),
	}
	created, err := u.reminders.Create(ctx, r)
	if err != nil {
		log.Printf("[reminder][usecase] create failed client_id=%s err=%v", clientID, err)
		return entities.Reminder{}, err
	}
	log.Printf("[reminder][usecase] scheduled reminder_id=%s client_id=%s due=%s", created.ID, clientID, dueAt.Format(time.RFC3339))
	return created, nil
}

// CreateLogAndReminder writes an activity log entry and, when dueDate
// ("2006-01-02") is non-empty, also schedules a reminder for the caller. A
// dated note logs as a call, an undated one as plain info.
func (u *ReminderUseCase) CreateLogAndReminder(ctx context.Context, callerUserID, clientID, description, dueDate string) (entities.LogEntry, *entities.Reminder, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	description = strings.TrimSpace(description)
	if callerUserID == "" {
		return entities.LogEntry{}, nil, ErrInvalidCallerID
	}
	if description == "" {
		return entities.LogEntry{}, nil, ErrInvalidReminderDesc
	}

	client, err := u.ownedClient(ctx, callerUserID, clientID)
	if err != nil {
		return entities.LogEntry{}, nil, err
	}

	logType := entities.LogTypeInfo
	if strings.TrimSpace(dueDate) != "" {
		logType = entities.LogTypeCall
	}
	entry, err := u.logs.Create(ctx, entities.LogEntry{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		Type:        logType,
		Description: description,
		CreatedAt:   u.clock.Now().UTC(),
	})
	if err != nil {
		return entities.LogEntry{}, nil, err
	}

	if strings.TrimSpace(dueDate) == "" {
		return entry, nil, nil
	}

	reminder, err := u.Schedule(ctx, client.ID, callerUserID, "Recordatorio: "+description, DueInput{Date: dueDate})
	if err != nil {
		return entities.LogEntry{}, nil, err
	}
	return entry, &reminder, nil
}

// CreateBudgetReminder is the confirm step of the follow-up dialog: the
// caller reviewed (and possibly edited) the suggested date and note.
func (u *ReminderUseCase) CreateBudgetReminder(ctx context.Context, callerUserID, clientID, description string, due time.Time) (entities.Reminder, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	if callerUserID == "" {
		return entities.Reminder{}, ErrInvalidCallerID
	}
	if due.IsZero() {
		return entities.Reminder{}, ErrInvalidDueDate
	}

	client, err := u.ownedClient(ctx, callerUserID, clientID)
	if err != nil {
		return entities.Reminder{}, err
	}

	reminder, err := u.Schedule(ctx, client.ID, callerUserID, description, DueInput{At: &due})
	if err != nil {
		return entities.Reminder{}, err
	}

	_, err = u.logs.Create(ctx, entities.LogEntry{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		Type:        entities.LogTypeInfo,
		Description: "Recordatorio creado: " + reminder.Description,
		CreatedAt:   u.clock.Now().UTC(),
	})
	if err != nil {
		log.Printf("[reminder][usecase] log write failed client_id=%s err=%v", client.ID, err)
	}
	return reminder, nil
}

// SendTest delivers a sample reminder email to the caller's own address so
// the template can be verified without scheduling anything.
func (u *ReminderUseCase) SendTest(ctx context.Context, callerUserID, clientID string) error {
	callerUserID = strings.TrimSpace(callerUserID)
	if callerUserID == "" {
		return ErrInvalidCallerID
	}
	if u.sender == nil {
		log.Printf("[reminder][usecase] sender not configured user_id=%s", callerUserID)
		return errors.New("notification sender not configured")
	}

	client, err := u.ownedClient(ctx, callerUserID, clientID)
	if err != nil {
		return err
	}

	user, err := u.users.GetByID(ctx, callerUserID)
	if err != nil {
		return err
	}
	if user.Email == "" {
		return ErrUserWithoutEmail
	}

	msg := buildTestReminderEmail(user, client)
	if err := u.sender.Send(ctx, msg); err != nil {
		log.Printf("[reminder][usecase] test email failed user_id=%s err=%v", callerUserID, err)
		return err
	}
	log.Printf("[reminder][usecase] test email sent user_id=%s client_id=%s", callerUserID, client.ID)
	return nil
}

func (u *ReminderUseCase) resolveDue(due DueInput) (time.Time, error) {
	if due.At != nil {
		if due.At.IsZero() {
			return time.Time{}, ErrInvalidDueDate
		}
		return *due.At, nil
	}
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(due.Date), time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDueDate
	}
	// Date-only input lands on the local morning so a daily sweep picks it up.
	return time.Date(day.Year(), day.Month(), day.Day(), entities.ReminderDefaultHour, 0, 0, 0, time.Local), nil
}

func (u *ReminderUseCase) ownedClient(ctx context.Context, callerUserID, clientID string) (entities.Client, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Client{}, err
	}
	if client.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	if client.UserID != callerUserID {
		return entities.Client{}, ErrAccessDenied
	}
	return client, nil
}
