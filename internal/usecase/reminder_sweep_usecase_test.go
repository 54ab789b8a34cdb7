package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase/interfaces"
	mock_interfaces "crm_senior/internal/usecase/interfaces/mocks"

	"github.com/benbjohnson/clock"
	"go.uber.org/mock/gomock"
)

func newSweepMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIReminderRepository, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockIUserRepository, *mock_interfaces.MockINotificationSender) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIReminderRepository(ctrl),
		mock_interfaces.NewMockIClientRepository(ctrl),
		mock_interfaces.NewMockIUserRepository(ctrl),
		mock_interfaces.NewMockINotificationSender(ctrl)
}

func sweepClockAt(uc *ReminderSweepUseCase, at time.Time) {
	mockClock := clock.NewMock()
	mockClock.Set(at)
	uc.clock = mockClock
}

func TestReminderSweepUseCase_Run(t *testing.T) {
	now := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

	t.Run("empty due-set", func(t *testing.T) {
		ctrl, reminders, clients, users, sender := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewReminderSweepUseCase(reminders, clients, users, sender)
		sweepClockAt(uc, now)

		reminders.EXPECT().ListDue(gomock.Any(), now).Return(nil, nil)

		result, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Empty() || result.Processed != 0 {
			t.Fatalf("expected empty result, got %+v", result)
		}
	})

	t.Run("due-set query failure surfaces", func(t *testing.T) {
		ctrl, reminders, clients, users, sender := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewReminderSweepUseCase(reminders, clients, users, sender)
		sweepClockAt(uc, now)

		reminders.EXPECT().ListDue(gomock.Any(), now).Return(nil, errors.New("scan throttled"))

		if _, err := uc.Run(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("claim send and count", func(t *testing.T) {
		ctrl, reminders, clients, users, sender := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewReminderSweepUseCase(reminders, clients, users, sender)
		sweepClockAt(uc, now)

		due := []entities.Reminder{{ID: "r-1", ClientID: "c-1", UserID: "u-1", Description: "Seguimiento Presupuesto: Juan", DueDate: now}}
		reminders.EXPECT().ListDue(gomock.Any(), now).Return(due, nil)
		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "u-1", Name: "Juan"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Email: "v@crm.local"}, nil)
		reminders.EXPECT().ClaimUnsent(gomock.Any(), "r-1").Return(true, nil)
		sender.EXPECT().Send(gomock.Any(), gomock.AssignableToTypeOf(interfaces.EmailMessage{})).DoAndReturn(
			func(_ context.Context, msg interfaces.EmailMessage) error {
				if msg.To != "v@crm.local" {
					t.Fatalf("expected recipient v@crm.local, got %s", msg.To)
				}
				if msg.Subject != "🔔 Recordatorio: Juan" {
					t.Fatalf("unexpected subject: %q", msg.Subject)
				}
				return nil
			},
		)

		result, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Processed != 1 {
			t.Fatalf("expected processed=1, got %d", result.Processed)
		}
		if result.Outcomes[0].Status != SweepSent {
			t.Fatalf("expected sent outcome, got %s", result.Outcomes[0].Status)
		}
	})

	t.Run("recipient without email is skipped, not failed", func(t *testing.T) {
		ctrl, reminders, clients, users, sender := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewReminderSweepUseCase(reminders, clients, users, sender)
		sweepClockAt(uc, now)

		due := []entities.Reminder{{ID: "r-1", ClientID: "c-1", UserID: "u-1", DueDate: now}}
		reminders.EXPECT().ListDue(gomock.Any(), now).Return(due, nil)
		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "u-1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)

		result, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Outcomes[0].Status != SweepSkippedNoEmail {
			t.Fatalf("expected skipped_no_email, got %s", result.Outcomes[0].Status)
		}
		if result.Processed != 1 {
			t.Fatalf("expected processed=1, got %d", result.Processed)
		}
	})

	t.Run("one failure never blocks the rest", func(t *testing.T) {
		ctrl, reminders, clients, users, sender := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewReminderSweepUseCase(reminders, clients, users, sender)
		sweepClockAt(uc, now)

		due := []entities.Reminder{
			{ID: "r-1", ClientID: "c-1", UserID: "u-1", DueDate: now.Add(-time.Hour)},
			{ID: "r-2", ClientID: "c-2", UserID: "u-1", DueDate: now.Add(-time.Minute)},
			{ID: "r-3", ClientID: "c-3", UserID: "u-1", DueDate: now},
		}
		reminders.EXPECT().ListDue(gomock.Any(), now).Return(due, nil)
		for _, id := range []string{"c-1", "c-2", "c-3"} {
			clients.EXPECT().GetByID(gomock.Any(), id).Return(entities.Client{ID: id, UserID: "u-1"}, nil)
		}
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Email: "v@crm.local"}, nil).Times(3)
		reminders.EXPECT().ClaimUnsent(gomock.Any(), "r-1").Return(true, nil)
		reminders.EXPECT().ClaimUnsent(gomock.Any(), "r-2").Return(true, nil)
		reminders.EXPECT().ClaimUnsent(gomock.Any(), "r-3").Return(true, nil)

		gomock.InOrder(
			sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
			sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("provider 500")),
			sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
		)
		// Failed delivery releases the claim so the next sweep retries it.
		reminders.EXPECT().ReleaseClaim(gomock.Any(), "r-2").Return(nil)

		result, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Processed != 3 {
			t.Fatalf("expected processed=3, got %d", result.Processed)
		}
		statuses := []SweepOutcomeStatus{result.Outcomes[0].Status, result.Outcomes[1].Status, result.Outcomes[2].Status}
		if statuses[0] != SweepSent || statuses[1] != SweepFailed || statuses[2] != SweepSent {
			t.Fatalf("unexpected outcomes: %v", statuses)
		}
	})

	t.Run("lost claim means another sweep owns it", func(t *testing.T) {
		ctrl, reminders, clients, users, sender := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewReminderSweepUseCase(reminders, clients, users, sender)
		sweepClockAt(uc, now)

		due := []entities.Reminder{{ID: "r-1", ClientID: "c-1", UserID: "u-1", DueDate: now}}
		reminders.EXPECT().ListDue(gomock.Any(), now).Return(due, nil)
		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "u-1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Email: "v@crm.local"}, nil)
		reminders.EXPECT().ClaimUnsent(gomock.Any(), "r-1").Return(false, nil)
		// no Send expected

		result, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Outcomes[0].Status != SweepSkippedClaimed {
			t.Fatalf("expected skipped_claimed, got %s", result.Outcomes[0].Status)
		}
	})

	t.Run("second immediate run processes zero", func(t *testing.T) {
		ctrl, reminders, clients, users, sender := newSweepMocks(t)
		defer ctrl.Finish()
		uc := NewReminderSweepUseCase(reminders, clients, users, sender)
		sweepClockAt(uc, now)

		// After a successful sweep the due reminders are all sent, so the
		// next due-set query comes back empty.
		reminders.EXPECT().ListDue(gomock.Any(), now).Return([]entities.Reminder{}, nil)

		result, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Empty() {
			t.Fatalf("expected empty result, got %+v", result)
		}
	})
}
