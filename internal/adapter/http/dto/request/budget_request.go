package request

import (
	"errors"
	"strings"

	"crm_senior/internal/domain/entities"
)

var ErrInvalidBudgetTotal = errors.New("invalid budget total")

type BudgetItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	Price       float64 `json:"price"`
}

// BudgetRequest is the new-budget form payload. The total is precomputed by
// the form; when absent it is derived once from the items and never
// recomputed afterwards.
type BudgetRequest struct {
	Title  string              `json:"title"`
	Header string              `json:"header"`
	Footer string              `json:"footer"`
	Items  []BudgetItemRequest `json:"items" binding:"required"`
	Total  float64             `json:"total"`
}

func (r BudgetRequest) ResolveItems() []entities.BudgetItem {
	items := make([]entities.BudgetItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.BudgetItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return items
}

func (r BudgetRequest) ResolveTotal() (float64, error) {
	if r.Total > 0 {
		return r.Total, nil
	}

	totalFromItems := 0.0
	for _, it := range r.Items {
		if it.Price > 0 && it.Quantity > 0 {
			totalFromItems += it.Price * float64(it.Quantity)
		}
	}
	if totalFromItems > 0 {
		return totalFromItems, nil
	}

	return 0, ErrInvalidBudgetTotal
}

// BudgetStatusRequest moves a budget through the pipeline.
type BudgetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
