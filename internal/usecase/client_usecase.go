package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase/interfaces"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

var (
	ErrInvalidClientName   = errors.New("invalid client name")
	ErrInvalidClientStatus = errors.New("invalid client status")
)

// ClientWithLastLog pairs a client with its most recent activity entry for
// the clients listing.
type ClientWithLastLog struct {
	Client  entities.Client
	LastLog *entities.LogEntry
}

// IClientUseCase covers client CRUD plus the activity log reads. Every
// operation verifies ownership against the caller before touching anything.

type IClientUseCase interface {
	Create(ctx context.Context, callerUserID, name, email, phone, description string) (entities.Client, error)
	List(ctx context.Context, callerUserID string) ([]ClientWithLastLog, error)
	GetByID(ctx context.Context, callerUserID, clientID string) (entities.Client, error)
	UpdateStatus(ctx context.Context, callerUserID, clientID string, status entities.ClientStatus) (entities.Client, error)
	Delete(ctx context.Context, callerUserID, clientID string) error
	Logs(ctx context.Context, callerUserID, clientID string, limit int) ([]entities.LogEntry, error)
}

type ClientUseCase struct {
	clients   interfaces.IClientRepository
	budgets   interfaces.IBudgetRepository
	logs      interfaces.ILogEntryRepository
	reminders interfaces.IReminderRepository
	clock     clock.Clock
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(
	clients interfaces.IClientRepository,
	budgets interfaces.IBudgetRepository,
	logs interfaces.ILogEntryRepository,
	reminders interfaces.IReminderRepository,
) *ClientUseCase {
	return &ClientUseCase{
		clients:   clients,
		budgets:   budgets,
		logs:      logs,
		reminders: reminders,
		clock:     clock.New(),
	}
}

func (u *ClientUseCase) Create(ctx context.Context, callerUserID, name, email, phone, description string) (entities.Client, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	name = strings.TrimSpace(name)
	if callerUserID == "" {
		return entities.Client{}, ErrInvalidCallerID
	}
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	now := u.clock.Now().UTC()
	c := entities.Client{
		ID:          uuid.NewString(),
		UserID:      callerUserID,
		Name:        name,
		Email:       strings.TrimSpace(email),
		Phone:       strings.TrimSpace(phone),
		Description: description,
		Status:      entities.ClientStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.clients.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}

	_, err = u.logs.Create(ctx, entities.LogEntry{
		ID:          uuid.NewString(),
		ClientID:    created.ID,
		Type:        entities.LogTypeInfo,
		Description: "Cliente creado en el sistema",
		CreatedAt:   now,
	})
	if err != nil {
		log.Printf("[client][usecase] initial log failed client_id=%s err=%v", created.ID, err)
	}

	log.Printf("[client][usecase] created client_id=%s user_id=%s", created.ID, callerUserID)
	return created, nil
}

func (u *ClientUseCase) List(ctx context.Context, callerUserID string) ([]ClientWithLastLog, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	if callerUserID == "" {
		return nil, ErrInvalidCallerID
	}

	clients, err := u.clients.ListByUserID(ctx, callerUserID)
	if err != nil {
		return nil, err
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].CreatedAt.After(clients[j].CreatedAt)
	})

	out := make([]ClientWithLastLog, 0, len(clients))
	for _, c := range clients {
		item := ClientWithLastLog{Client: c}
		entries, err := u.logs.ListByClientID(ctx, c.ID, 1)
		if err != nil {
			log.Printf("[client][usecase] last log lookup failed client_id=%s err=%v", c.ID, err)
		} else if len(entries) > 0 {
			last := entries[0]
			item.LastLog = &last
		}
		out = append(out, item)
	}
	return out, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, callerUserID, clientID string) (entities.Client, error) {
	return u.owned(ctx, callerUserID, clientID)
}

func (u *ClientUseCase) UpdateStatus(ctx context.Context, callerUserID, clientID string, status entities.ClientStatus) (entities.Client, error) {
	if !status.Valid() {
		return entities.Client{}, ErrInvalidClientStatus
	}
	client, err := u.owned(ctx, callerUserID, clientID)
	if err != nil {
		return entities.Client{}, err
	}

	updated, err := u.clients.UpdateStatus(ctx, client.ID, status)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	log.Printf("[client][usecase] status updated client_id=%s status=%s", client.ID, status)
	return updated, nil
}

// Delete removes the client and cascades to its budgets, log entries and
// reminders, mirroring the store-layer cascade of the reference schema.
func (u *ClientUseCase) Delete(ctx context.Context, callerUserID, clientID string) error {
	client, err := u.owned(ctx, callerUserID, clientID)
	if err != nil {
		return err
	}

	if err := u.budgets.DeleteByClientID(ctx, client.ID); err != nil {
		return err
	}
	if err := u.logs.DeleteByClientID(ctx, client.ID); err != nil {
		return err
	}
	if err := u.reminders.DeleteByClientID(ctx, client.ID); err != nil {
		return err
	}
	if err := u.clients.Delete(ctx, client.ID); err != nil {
		return err
	}
	log.Printf("[client][usecase] deleted client_id=%s (cascade)", client.ID)
	return nil
}

func (u *ClientUseCase) Logs(ctx context.Context, callerUserID, clientID string, limit int) ([]entities.LogEntry, error) {
	client, err := u.owned(ctx, callerUserID, clientID)
	if err != nil {
		return nil, err
	}
	return u.logs.ListByClientID(ctx, client.ID, limit)
}

func (u *ClientUseCase) owned(ctx context.Context, callerUserID, clientID string) (entities.Client, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	clientID = strings.TrimSpace(clientID)
	if callerUserID == "" {
		return entities.Client{}, ErrInvalidCallerID
	}
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

// DisplayStatus projects a display status for a client from its budgets.
// Pure read-time projection: the stored client status stays authoritative
// and is never overwritten from here.
func DisplayStatus(client entities.Client, budgets []entities.Budget) entities.ClientStatus {
	if client.Status == entities.ClientStatusCancelled || len(budgets) == 0 {
		return client.Status
	}

	best := client.Status
	rank := func(s entities.ClientStatus) int {
		switch s {
		case entities.ClientStatusApproved:
			return 4
		case entities.ClientStatusApproval:
			return 3
		case entities.ClientStatusFollowUp:
			return 2
		case entities.ClientStatusEstimate:
			return 1
		}
		return 0
	}
	for _, b := range budgets {
		var projected entities.ClientStatus
		switch b.Status {
		case entities.BudgetStatusApproved, entities.BudgetStatusPaid:
			projected = entities.ClientStatusApproved
		case entities.BudgetStatusApproval:
			projected = entities.ClientStatusApproval
		case entities.BudgetStatusFollowUp:
			projected = entities.ClientStatusFollowUp
		case entities.BudgetStatusDraft, entities.BudgetStatusSent:
			projected = entities.ClientStatusEstimate
		default:
			continue
		}
		if rank(projected) > rank(best) {
			best = projected
		}
	}
	return best
}
