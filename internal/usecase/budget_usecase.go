package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase/interfaces"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrAccessDenied        = errors.New("access denied")
	ErrInvalidCallerID     = errors.New("invalid caller user id")
	ErrInvalidClientID     = errors.New("invalid client id")
	ErrInvalidBudgetID     = errors.New("invalid budget id")
	ErrInvalidBudgetItems  = errors.New("invalid budget items")
	ErrInvalidBudgetTotal  = errors.New("invalid budget total")
	ErrInvalidBudgetStatus = errors.New("invalid budget status")
	ErrIllegalTransition   = errors.New("illegal status transition")
)

// BudgetOptions carries the optional customization fields of the new-budget
// form. Empty values fall back to the fixed defaults.
type BudgetOptions struct {
	Title  string
	Header string
	Footer string
}

// FollowUpSuggestion is the reminder the caller is expected to confirm (or
// edit) after a budget moves to follow_up. It is never persisted here.
type FollowUpSuggestion struct {
	ClientID string
	Note     string
	DueDate  time.Time
}

// StatusChange is the result of a status update. FollowUp is non-nil only
// when the new status is follow_up.
type StatusChange struct {
	Budget   entities.Budget
	FollowUp *FollowUpSuggestion
}

// BudgetWithClient pairs a budget with its owning client for pipeline views.
type BudgetWithClient struct {
	Budget entities.Budget
	Client entities.Client
}

// IBudgetUseCase owns the budget status state machine and its side effects.
//
// Every status write produces exactly one log entry on the budget's client.
// The default behavior is permissive (any status from any status); strict
// mode enforces entities.BudgetStatusTransitions.

type IBudgetUseCase interface {
	Create(ctx context.Context, callerUserID, clientID string, items []entities.BudgetItem, total float64, opts BudgetOptions) (entities.Budget, error)
	UpdateStatus(ctx context.Context, callerUserID, budgetID string, newStatus entities.BudgetStatus) (StatusChange, error)
	Cancel(ctx context.Context, callerUserID, budgetID string) (entities.Budget, error)
	GetByID(ctx context.Context, callerUserID, budgetID string) (entities.Budget, error)
	ListActiveByUser(ctx context.Context, callerUserID string) ([]BudgetWithClient, error)
	GetForExport(ctx context.Context, callerUserID, budgetID string) (entities.Budget, entities.Client, entities.User, error)
}

type BudgetUseCase struct {
	budgets interfaces.IBudgetRepository
	clients interfaces.IClientRepository
	logs    interfaces.ILogEntryRepository
	users   interfaces.IUserRepository
	strict  bool
	clock   clock.Clock
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	budgets interfaces.IBudgetRepository,
	clients interfaces.IClientRepository,
	logs interfaces.ILogEntryRepository,
	users interfaces.IUserRepository,
	strictTransitions bool,
) *BudgetUseCase {
	return &BudgetUseCase{
		budgets: budgets,
		clients: clients,
		logs:    logs,
		users:   users,
		strict:  strictTransitions,
		clock:   clock.New(),
	}
}

func (u *BudgetUseCase) Create(ctx context.Context, callerUserID, clientID string, items []entities.BudgetItem, total float64, opts BudgetOptions) (entities.Budget, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	clientID = strings.TrimSpace(clientID)
	if callerUserID == "" {
		return entities.Budget{}, ErrInvalidCallerID
	}
	if clientID == "" {
		return entities.Budget{}, ErrInvalidClientID
	}
	if len(items) == 0 {
		return entities.Budget{}, ErrInvalidBudgetItems
	}
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" || it.Quantity <= 0 || it.Price < 0 {
			return entities.Budget{}, ErrInvalidBudgetItems
		}
	}
	if total <= 0 {
		return entities.Budget{}, ErrInvalidBudgetTotal
	}

	client, err := u.ownedClient(ctx, callerUserID, clientID)
	if err != nil {
		return entities.Budget{}, err
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = entities.DefaultBudgetTitle
	}

	now := u.clock.Now().UTC()
	b := entities.Budget{
		ID:            uuid.NewString(),
		ClientID:      client.ID,
		Title:         title,
		Header:        opts.Header,
		Footer:        opts.Footer,
		Status:        entities.BudgetStatusDraft,
		Items:         items,
		Total:         total,
		DateGenerated: now,
	}
	created, err := u.budgets.Create(ctx, b)
	if err != nil {
		log.Printf("[budget][usecase] create failed client_id=%s err=%v", clientID, err)
		return entities.Budget{}, err
	}

	u.appendLog(ctx, client.ID, entities.LogTypeBudget, "Presupuesto generado por valor de $"+formatAmount(total))

	// First budget promotes a fresh lead. One-way, never reversed here.
	if client.Status == entities.ClientStatusNew {
		if _, err := u.clients.UpdateStatus(ctx, client.ID, entities.ClientStatusEstimate); err != nil {
			log.Printf("[budget][usecase] client promotion failed client_id=%s err=%v", client.ID, err)
		}
	}

	log.Printf("[budget][usecase] created budget_id=%s client_id=%s total=%s", created.ID, client.ID, formatAmount(total))
	return created, nil
}

func (u *BudgetUseCase) UpdateStatus(ctx context.Context, callerUserID, budgetID string, newStatus entities.BudgetStatus) (StatusChange, error) {
	if !newStatus.Valid() {
		return StatusChange{}, ErrInvalidBudgetStatus
	}

	budget, client, err := u.ownedBudget(ctx, callerUserID, budgetID)
	if err != nil {
		return StatusChange{}, err
	}

	if u.strict && !entities.CanTransition(budget.Status, newStatus) {
		log.Printf("[budget][usecase] transition rejected budget_id=%s from=%s to=%s", budget.ID, budget.Status, newStatus)
		return StatusChange{}, ErrIllegalTransition
	}

	updated, err := u.budgets.UpdateStatus(ctx, budget.ID, newStatus)
	if err != nil {
		return StatusChange{}, err
	}
	if updated.ID == "" {
		return StatusChange{}, ErrBudgetNotFound
	}

	u.appendLog(ctx, client.ID, entities.LogTypeInfo, "Estado del presupuesto cambiado a: "+newStatus.Label())
	log.Printf("[budget][usecase] status updated budget_id=%s from=%s to=%s", budget.ID, budget.Status, newStatus)

	change := StatusChange{Budget: updated}
	if newStatus == entities.BudgetStatusFollowUp {
		now := u.clock.Now()
		due := time.Date(now.Year(), now.Month(), now.Day()+3, entities.ReminderDefaultHour, 0, 0, 0, now.Location())
		change.FollowUp = &FollowUpSuggestion{
			ClientID: client.ID,
			Note:     "Seguimiento Presupuesto: " + client.Name,
			DueDate:  due,
		}
	}
	return change, nil
}

func (u *BudgetUseCase) Cancel(ctx context.Context, callerUserID, budgetID string) (entities.Budget, error) {
	budget, client, err := u.ownedBudget(ctx, callerUserID, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}

	updated, err := u.budgets.UpdateStatus(ctx, budget.ID, entities.BudgetStatusCancelled)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	u.appendLog(ctx, client.ID, entities.LogTypeInfo, "Presupuesto cancelado/archivado.")
	log.Printf("[budget][usecase] cancelled budget_id=%s client_id=%s", budget.ID, client.ID)
	return updated, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, callerUserID, budgetID string) (entities.Budget, error) {
	budget, _, err := u.ownedBudget(ctx, callerUserID, budgetID)
	return budget, err
}

func (u *BudgetUseCase) ListActiveByUser(ctx context.Context, callerUserID string) ([]BudgetWithClient, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	if callerUserID == "" {
		return nil, ErrInvalidCallerID
	}

	clients, err := u.clients.ListByUserID(ctx, callerUserID)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return []BudgetWithClient{}, nil
	}

	byID := make(map[string]entities.Client, len(clients))
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}

	budgets, err := u.budgets.ListByClientIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	active := make([]BudgetWithClient, 0, len(budgets))
	for _, b := range budgets {
		if !isActiveStatus(b.Status) {
			continue
		}
		active = append(active, BudgetWithClient{Budget: b, Client: byID[b.ClientID]})
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].Budget.DateGenerated.After(active[j].Budget.DateGenerated)
	})
	return active, nil
}

func (u *BudgetUseCase) GetForExport(ctx context.Context, callerUserID, budgetID string) (entities.Budget, entities.Client, entities.User, error) {
	budget, client, err := u.ownedBudget(ctx, callerUserID, budgetID)
	if err != nil {
		return entities.Budget{}, entities.Client{}, entities.User{}, err
	}
	issuer, err := u.users.GetByID(ctx, strings.TrimSpace(callerUserID))
	if err != nil {
		return entities.Budget{}, entities.Client{}, entities.User{}, err
	}
	return budget, client, issuer, nil
}

// ownedBudget resolves a budget and its client, enforcing that the caller
// owns the client before anything is mutated.
func (u *BudgetUseCase) ownedBudget(ctx context.Context, callerUserID, budgetID string) (entities.Budget, entities.Client, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	budgetID = strings.TrimSpace(budgetID)
	if callerUserID == "" {
		return entities.Budget{}, entities.Client{}, ErrInvalidCallerID
	}
	if budgetID == "" {
		return entities.Budget{}, entities.Client{}, ErrInvalidBudgetID
	}

	budget, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, entities.Client{}, err
	}
	if budget.ID == "" {
		return entities.Budget{}, entities.Client{}, ErrBudgetNotFound
	}

	client, err := u.clients.GetByID(ctx, budget.ClientID)
	if err != nil {
		return entities.Budget{}, entities.Client{}, err
	}
	if client.ID == "" {
		return entities.Budget{}, entities.Client{}, ErrClientNotFound
	}
	if client.UserID != callerUserID {
		return entities.Budget{}, entities.Client{}, ErrAccessDenied
	}
	return budget, client, nil
}

func (u *BudgetUseCase) ownedClient(ctx context.Context, callerUserID, clientID string) (entities.Client, error) {
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

// appendLog records a side-effect log entry. Log failures are reported but
// never abort the primary mutation; the three writes are independent.
func (u *BudgetUseCase) appendLog(ctx context.Context, clientID string, logType entities.LogType, description string) {
	_, err := u.logs.Create(ctx, entities.LogEntry{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		Type:        logType,
		Description: description,
		CreatedAt:   u.clock.Now().UTC(),
	})
	if err != nil {
		log.Printf("[budget][usecase] log write failed client_id=%s err=%v", clientID, err)
	}
}

func isActiveStatus(s entities.BudgetStatus) bool {
	for _, a := range entities.ActiveBudgetStatuses {
		if a == s {
			return true
		}
	}
	return false
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
