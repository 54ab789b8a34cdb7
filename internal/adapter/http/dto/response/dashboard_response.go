package response

import (
	"time"

	"crm_senior/internal/usecase"
)

type ActivityItemResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name"`
}

type EstimateItemResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	ClientName string    `json:"client_name"`
	Total      float64   `json:"total"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
}

type DashboardResponse struct {
	PipelineValue   float64                `json:"pipeline_value"`
	WonValue        float64                `json:"won_value"`
	BudgetCounts    map[string]int         `json:"budget_counts"`
	RecentActivity  []ActivityItemResponse `json:"recent_activity"`
	RecentEstimates []EstimateItemResponse `json:"recent_estimates"`
}

func FromDashboard(data usecase.DashboardData) DashboardResponse {
	counts := make(map[string]int, len(data.BudgetCounts))
	for status, n := range data.BudgetCounts {
		counts[string(status)] = n
	}
	activity := make([]ActivityItemResponse, 0, len(data.RecentActivity))
	for _, item := range data.RecentActivity {
		activity = append(activity, ActivityItemResponse{
			ID:          item.ID,
			Type:        string(item.Type),
			Description: item.Description,
			Date:        item.Date,
			ClientID:    item.ClientID,
			ClientName:  item.ClientName,
		})
	}
	estimates := make([]EstimateItemResponse, 0, len(data.RecentEstimates))
	for _, item := range data.RecentEstimates {
		estimates = append(estimates, EstimateItemResponse{
			ID:         item.ID,
			ClientID:   item.ClientID,
			ClientName: item.ClientName,
			Total:      item.Total,
			Status:     string(item.Status),
			Date:       item.Date,
		})
	}
	return DashboardResponse{
		PipelineValue:   data.PipelineValue,
		WonValue:        data.WonValue,
		BudgetCounts:    counts,
		RecentActivity:  activity,
		RecentEstimates: estimates,
	}
}
