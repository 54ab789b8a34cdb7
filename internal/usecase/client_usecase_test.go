package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm_senior/internal/domain/entities"
	mock_interfaces "crm_senior/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newClientMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockIBudgetRepository, *mock_interfaces.MockILogEntryRepository, *mock_interfaces.MockIReminderRepository) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIClientRepository(ctrl),
		mock_interfaces.NewMockIBudgetRepository(ctrl),
		mock_interfaces.NewMockILogEntryRepository(ctrl),
		mock_interfaces.NewMockIReminderRepository(ctrl)
}

func TestClientUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "u-1", "   ", "", "", "")
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("create success writes initial log", func(t *testing.T) {
		ctrl, clients, budgets, logs, reminders := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(clients, budgets, logs, reminders)

		clients.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.UserID != "u-1" || c.Status != entities.ClientStatusNew {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.Name != "Juan Perez" || c.Email != "juan@mail.com" {
					t.Fatalf("expected trimmed fields, got %+v", c)
				}
				return c, nil
			},
		)
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.LogEntry) (entities.LogEntry, error) {
				if e.Description != "Cliente creado en el sistema" {
					t.Fatalf("unexpected log description: %q", e.Description)
				}
				return e, nil
			},
		)

		created, err := uc.Create(context.Background(), "u-1", " Juan Perez ", " juan@mail.com ", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestClientUseCase_List(t *testing.T) {
	ctrl, clients, budgets, logs, reminders := newClientMocks(t)
	defer ctrl.Finish()
	uc := NewClientUseCase(clients, budgets, logs, reminders)

	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	clients.EXPECT().ListByUserID(gomock.Any(), "u-1").Return([]entities.Client{
		{ID: "c-old", UserID: "u-1", CreatedAt: older},
		{ID: "c-new", UserID: "u-1", CreatedAt: newer},
	}, nil)
	logs.EXPECT().ListByClientID(gomock.Any(), "c-new", 1).Return([]entities.LogEntry{{ID: "l-1", ClientID: "c-new", Description: "Cliente creado en el sistema"}}, nil)
	logs.EXPECT().ListByClientID(gomock.Any(), "c-old", 1).Return(nil, nil)

	items, err := uc.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(items))
	}
	if items[0].Client.ID != "c-new" {
		t.Fatalf("expected newest first, got %s", items[0].Client.ID)
	}
	if items[0].LastLog == nil || items[0].LastLog.ID != "l-1" {
		t.Fatalf("expected last log on newest client")
	}
	if items[1].LastLog != nil {
		t.Fatalf("expected no last log on older client")
	}
}

func TestClientUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "u-1", "c-1", "bogus")
		if !errors.Is(err, ErrInvalidClientStatus) {
			t.Fatalf("expected ErrInvalidClientStatus, got %v", err)
		}
	})

	t.Run("foreign client denied", func(t *testing.T) {
		ctrl, clients, budgets, logs, reminders := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(clients, budgets, logs, reminders)

		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "other"}, nil)

		_, err := uc.UpdateStatus(context.Background(), "u-1", "c-1", entities.ClientStatusFollowUp)
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, clients, budgets, logs, reminders := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(clients, budgets, logs, reminders)

		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "u-1"}, nil)
		clients.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.ClientStatusApproval).Return(entities.Client{ID: "c-1", Status: entities.ClientStatusApproval}, nil)

		updated, err := uc.UpdateStatus(context.Background(), "u-1", "c-1", entities.ClientStatusApproval)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ClientStatusApproval {
			t.Fatalf("expected approval status, got %s", updated.Status)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	ctrl, clients, budgets, logs, reminders := newClientMocks(t)
	defer ctrl.Finish()
	uc := NewClientUseCase(clients, budgets, logs, reminders)

	clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", UserID: "u-1"}, nil)
	gomock.InOrder(
		budgets.EXPECT().DeleteByClientID(gomock.Any(), "c-1").Return(nil),
		logs.EXPECT().DeleteByClientID(gomock.Any(), "c-1").Return(nil),
		reminders.EXPECT().DeleteByClientID(gomock.Any(), "c-1").Return(nil),
		clients.EXPECT().Delete(gomock.Any(), "c-1").Return(nil),
	)

	if err := uc.Delete(context.Background(), "u-1", "c-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDisplayStatus(t *testing.T) {
	cases := []struct {
		name    string
		client  entities.Client
		budgets []entities.Budget
		want    entities.ClientStatus
	}{
		{
			name:   "no budgets keeps stored status",
			client: entities.Client{Status: entities.ClientStatusNew},
			want:   entities.ClientStatusNew,
		},
		{
			name:    "cancelled client never projected",
			client:  entities.Client{Status: entities.ClientStatusCancelled},
			budgets: []entities.Budget{{Status: entities.BudgetStatusApproved}},
			want:    entities.ClientStatusCancelled,
		},
		{
			name:    "approved budget wins over follow_up",
			client:  entities.Client{Status: entities.ClientStatusEstimate},
			budgets: []entities.Budget{{Status: entities.BudgetStatusFollowUp}, {Status: entities.BudgetStatusPaid}},
			want:    entities.ClientStatusApproved,
		},
		{
			name:    "sent budget projects estimate",
			client:  entities.Client{Status: entities.ClientStatusNew},
			budgets: []entities.Budget{{Status: entities.BudgetStatusSent}},
			want:    entities.ClientStatusEstimate,
		},
		{
			name:    "declined budgets do not downgrade",
			client:  entities.Client{Status: entities.ClientStatusFollowUp},
			budgets: []entities.Budget{{Status: entities.BudgetStatusDeclined}},
			want:    entities.ClientStatusFollowUp,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayStatus(tc.client, tc.budgets); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
