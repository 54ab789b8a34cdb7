package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase/interfaces"
	mock_interfaces "crm_senior/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newReminderMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIReminderRepository, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockILogEntryRepository, *mock_interfaces.MockIUserRepository, *mock_interfaces.MockINotificationSender) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIReminderRepository(ctrl),
		mock_interfaces.NewMockIClientRepository(ctrl),
		mock_interfaces.NewMockILogEntryRepository(ctrl),
		mock_interfaces.NewMockIUserRepository(ctrl),
		mock_interfaces.NewMockINotificationSender(ctrl)
}

func TestReminderUseCase_Schedule(t *testing.T) {
	t.Run("invalid inputs", func(t *testing.T) {
		uc := NewReminderUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.Schedule(context.Background(), " ", "u-1", "desc", DueInput{Date: "2025-01-01"}); !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
		if _, err := uc.Schedule(context.Background(), "c-1", " ", "desc", DueInput{Date: "2025-01-01"}); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
		if _, err := uc.Schedule(context.Background(), "c-1", "u-1", "  ", DueInput{Date: "2025-01-01"}); !errors.Is(err, ErrInvalidReminderDesc) {
			t.Fatalf("expected ErrInvalidReminderDesc, got %v", err)
		}
		if _, err := uc.Schedule(context.Background(), "c-1", "u-1", "desc", DueInput{Date: "not-a-date"}); !errors.Is(err, ErrInvalidDueDate) {
			t.Fatalf("expected ErrInvalidDueDate, got %v", err)
		}
	})

	t.Run("absolute instant used verbatim", func(t *testing.T) {
		ctrl, reminders, clients, logs, users, sender := newReminderMocks(t)
		defer ctrl.Finish()
		uc := NewReminderUseCase(reminders, clients, logs, users, sender)

		at := time.Date(2025, 6, 1, 17, 45, 0, 0, time.UTC)
		reminders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Reminder{})).DoAndReturn(
			func(_ context.Context, r entities.Reminder) (entities.Reminder, error) {
				if !r.DueDate.Equal(at) {
					t.Fatalf("expected due %v, got %v", at, r.DueDate)
				}
				if r.IsSent {
					t.Fatalf("expected unsent reminder")
				}
				return r, nil
			},
		)

		created, err := uc.Schedule(context.Background(), "c-1", "u-1", "Llamar al cliente", DueInput{At: &at})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("date-only lands on local morning", func(t *testing.T) {
		ctrl, reminders, clients, logs, users, sender := newReminderMocks(t)
		defer ctrl.Finish()
		uc := NewReminderUseCase(reminders, clients, logs, users, sender)

		reminders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Reminder) (entities.Reminder, error) {
				want := time.Date(2025, 6, 2, entities.ReminderDefaultHour, 0, 0, 0, time.Local)
				if !r.DueDate.Equal(want) {
					t.Fatalf("expected due %v, got %v", want, r.DueDate)
				}
				return r, nil
			},
		)

		if _, err := uc.Schedule(context.Background(), "c-1", "u-1", "Seguimiento", DueInput{Date: "2025-06-02"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReminderUseCase_CreateLogAndReminder(t *testing.T) {
	t.Run("undated note logs as info, no reminder", func(t *testing.T) {
		ctrl, reminders, clients, logs, users, sender := newReminderMocks(t)
		defer ctrl.Finish()
		uc := NewReminderUseCase(reminders, clients, logs, users, sender)

		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "u-1"}, nil)
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) {
				if e.Type != entities.LogTypeInfo {
					t.Fatalf("expected info log, got %s", e.Type)
				}
				return e, nil
			},
		)

		entry, reminder, err := uc.CreateLogAndReminder(context.Background(), "u-1", "c-1", "Visita al taller", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reminder != nil {
			t.Fatalf("expected no reminder")
		}
		if entry.Description != "Visita al taller" {
			t.Fatalf("unexpected entry: %+v", entry)
		}
	})

	t.Run("dated note logs as call and schedules prefixed reminder", func(t *testing.T) {
		ctrl, reminders, clients, logs, users, sender := newReminderMocks(t)
		defer ctrl.Finish()
		uc := NewReminderUseCase(reminders, clients, logs, users, sender)

		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "u-1"}, nil)
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) {
				if e.Type != entities.LogTypeCall {
					t.Fatalf("expected call log, got %s", e.Type)
				}
				return e, nil
			},
		)
		reminders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Reminder) (entities.Reminder, error) {
				if r.Description != "Recordatorio: Llamar por presupuesto" {
					t.Fatalf("unexpected reminder description: %q", r.Description)
				}
				if r.UserID != "u-1" {
					t.Fatalf("expected reminder owner u-1, got %s", r.UserID)
				}
				return r, nil
			},
		)

		_, reminder, err := uc.CreateLogAndReminder(context.Background(), "u-1", "c-1", "Llamar por presupuesto", "2025-07-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reminder == nil {
			t.Fatalf("expected reminder")
		}
	})

	t.Run("foreign client denied before any write", func(t *testing.T) {
		ctrl, reminders, clients, logs, users, sender := newReminderMocks(t)
		defer ctrl.Finish()
		uc := NewReminderUseCase(reminders, clients, logs, users, sender)

		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "other"}, nil)

		_, _, err := uc.CreateLogAndReminder(context.Background(), "u-1", "c-1", "Nota", "")
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})
}

func TestReminderUseCase_CreateBudgetReminder(t *testing.T) {
	ctrl, reminders, clients, logs, users, sender := newReminderMocks(t)
	defer ctrl.Finish()
	uc := NewReminderUseCase(reminders, clients, logs, users, sender)

	due := time.Date(2025, 7, 18, 9, 0, 0, 0, time.Local)
	clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "u-1", Name: "Juan"}, nil)
	reminders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.Reminder) (entities.Reminder, error) {
			if !r.DueDate.Equal(due) {
				t.Fatalf("expected due %v, got %v", due, r.DueDate)
			}
			return r, nil
		},
	)
	logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) {
			if e.Description != "Recordatorio creado: Seguimiento Presupuesto: Juan" {
				t.Fatalf("unexpected log description: %q", e.Description)
			}
			return e, nil
		},
	)

	created, err := uc.CreateBudgetReminder(context.Background(), "u-1", "c-1", "Seguimiento Presupuesto: Juan", due)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Description != "Seguimiento Presupuesto: Juan" {
		t.Fatalf("unexpected reminder: %+v", created)
	}
}

func TestReminderUseCase_SendTest(t *testing.T) {
	t.Run("user without email", func(t *testing.T) {
		ctrl, reminders, clients, logs, users, sender := newReminderMocks(t)
		defer ctrl.Finish()
		uc := NewReminderUseCase(reminders, clients, logs, users, sender)

		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "u-1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)

		if err := uc.SendTest(context.Background(), "u-1", "c-1"); !errors.Is(err, ErrUserWithoutEmail) {
			t.Fatalf("expected ErrUserWithoutEmail, got %v", err)
		}
	})

	t.Run("sends to the caller's own address", func(t *testing.T) {
		ctrl, reminders, clients, logs, users, sender := newReminderMocks(t)
		defer ctrl.Finish()
		uc := NewReminderUseCase(reminders, clients, logs, users, sender)

		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "u-1", Name: "Juan Perez"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Name: "Vendedor", Email: "v@crm.local"}, nil)
		sender.EXPECT().Send(gomock.Any(), gomock.AssignableToTypeOf(interfaces.EmailMessage{})).DoAndReturn(
			func(_ context.Context, msg interfaces.EmailMessage) error {
				if msg.To != "v@crm.local" {
					t.Fatalf("expected test email to caller, got %s", msg.To)
				}
				if msg.Subject != "[PRUEBA] 🔔 Recordatorio: Juan Perez" {
					t.Fatalf("unexpected subject: %q", msg.Subject)
				}
				return nil
			},
		)

		if err := uc.SendTest(context.Background(), "u-1", "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
