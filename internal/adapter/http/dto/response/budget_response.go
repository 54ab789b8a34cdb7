package response

import (
	"time"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase"
)

type BudgetItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type BudgetResponse struct {
	ID            string               `json:"id"`
	ClientID      string               `json:"client_id"`
	ClientName    string               `json:"client_name,omitempty"`
	Title         string               `json:"title"`
	Header        string               `json:"header,omitempty"`
	Footer        string               `json:"footer,omitempty"`
	Status        string               `json:"status"`
	StatusLabel   string               `json:"status_label"`
	Items         []BudgetItemResponse `json:"items"`
	Total         float64              `json:"total"`
	DateGenerated time.Time            `json:"date_generated"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{Description: it.Description, Quantity: it.Quantity, Price: it.Price})
	}
	return BudgetResponse{
		ID:            b.ID,
		ClientID:      b.ClientID,
		Title:         b.Title,
		Header:        b.Header,
		Footer:        b.Footer,
		Status:        string(b.Status),
		StatusLabel:   b.Status.Label(),
		Items:         items,
		Total:         b.Total,
		DateGenerated: b.DateGenerated,
	}
}

func FromBudgetWithClient(item usecase.BudgetWithClient) BudgetResponse {
	res := FromBudget(item.Budget)
	res.ClientName = item.Client.Name
	return res
}

// FollowUpSuggestionResponse is the reminder the UI should offer to confirm
// after a budget moves to follow_up.
type FollowUpSuggestionResponse struct {
	ClientID string    `json:"client_id"`
	Note     string    `json:"note"`
	DueDate  time.Time `json:"due_date"`
}

type StatusChangeResponse struct {
	Budget   BudgetResponse              `json:"budget"`
	FollowUp *FollowUpSuggestionResponse `json:"follow_up,omitempty"`
}

func FromStatusChange(change usecase.StatusChange) StatusChangeResponse {
	res := StatusChangeResponse{Budget: FromBudget(change.Budget)}
	if change.FollowUp != nil {
		res.FollowUp = &FollowUpSuggestionResponse{
			ClientID: change.FollowUp.ClientID,
			Note:     change.FollowUp.Note,
			DueDate:  change.FollowUp.DueDate,
		}
	}
	return res
}
