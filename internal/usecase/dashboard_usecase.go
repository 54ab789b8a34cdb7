package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase/interfaces"
)

// ActivityItem is a recent log entry with its client name resolved.
type ActivityItem struct {
	ID          string
	Type        entities.LogType
	Description string
	Date        time.Time
	ClientID    string
	ClientName  string
}

// EstimateItem is a recent budget with its client name resolved.
type EstimateItem struct {
	ID         string
	ClientID   string
	ClientName string
	Total      float64
	Status     entities.BudgetStatus
	Date       time.Time
}

// DashboardData aggregates the metrics shown on the dashboard. Pipeline and
// won values are computed over budgets, not clients: one client can carry
// several budgets in flight.
type DashboardData struct {
	PipelineValue   float64
	WonValue        float64
	BudgetCounts    map[entities.BudgetStatus]int
	RecentActivity  []ActivityItem
	RecentEstimates []EstimateItem
}

type IDashboardUseCase interface {
	Data(ctx context.Context, callerUserID string) (DashboardData, error)
}

type DashboardUseCase struct {
	clients interfaces.IClientRepository
	budgets interfaces.IBudgetRepository
	logs    interfaces.ILogEntryRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	clients interfaces.IClientRepository,
	budgets interfaces.IBudgetRepository,
	logs interfaces.ILogEntryRepository,
) *DashboardUseCase {
	return &DashboardUseCase{clients: clients, budgets: budgets, logs: logs}
}

const recentLimit = 5

func (u *DashboardUseCase) Data(ctx context.Context, callerUserID string) (DashboardData, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	if callerUserID == "" {
		return DashboardData{}, ErrInvalidCallerID
	}

	data := DashboardData{
		BudgetCounts:    emptyBudgetCounts(),
		RecentActivity:  []ActivityItem{},
		RecentEstimates: []EstimateItem{},
	}

	clients, err := u.clients.ListByUserID(ctx, callerUserID)
	if err != nil {
		return DashboardData{}, err
	}
	if len(clients) == 0 {
		return data, nil
	}

	names := make(map[string]string, len(clients))
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
		ids = append(ids, c.ID)
	}

	budgets, err := u.budgets.ListByClientIDs(ctx, ids)
	if err != nil {
		return DashboardData{}, err
	}
	for _, b := range budgets {
		data.BudgetCounts[b.Status]++
		switch b.Status {
		case entities.BudgetStatusSent, entities.BudgetStatusFollowUp, entities.BudgetStatusApproval:
			data.PipelineValue += b.Total
		case entities.BudgetStatusApproved, entities.BudgetStatusPaid:
			data.WonValue += b.Total
		}
	}

	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].DateGenerated.After(budgets[j].DateGenerated)
	})
	for _, b := range budgets {
		if len(data.RecentEstimates) == recentLimit {
			break
		}
		data.RecentEstimates = append(data.RecentEstimates, EstimateItem{
			ID:         b.ID,
			ClientID:   b.ClientID,
			ClientName: names[b.ClientID],
			Total:      b.Total,
			Status:     b.Status,
			Date:       b.DateGenerated,
		})
	}

	logs, err := u.logs.ListByClientIDs(ctx, ids, recentLimit)
	if err != nil {
		return DashboardData{}, err
	}
	for _, e := range logs {
		data.RecentActivity = append(data.RecentActivity, ActivityItem{
			ID:          e.ID,
			Type:        e.Type,
			Description: e.Description,
			Date:        e.CreatedAt,
			ClientID:    e.ClientID,
			ClientName:  names[e.ClientID],
		})
	}

	return data, nil
}

func emptyBudgetCounts() map[entities.BudgetStatus]int {
	counts := make(map[entities.BudgetStatus]int, 8)
	for _, s := range []entities.BudgetStatus{
		entities.BudgetStatusDraft,
		entities.BudgetStatusSent,
		entities.BudgetStatusFollowUp,
		entities.BudgetStatusApproval,
		entities.BudgetStatusApproved,
		entities.BudgetStatusDeclined,
		entities.BudgetStatusPaid,
		entities.BudgetStatusCancelled,
	} {
		counts[s] = 0
	}
	return counts
}
