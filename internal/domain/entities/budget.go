package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (presupuesto) inside the
// sales pipeline.
//
// Domain notes:
//   - The happy path is draft -> sent -> follow_up -> approval -> approved,
//     with paid reachable from approved and declined/cancelled reachable from
//     any non-terminal state.
//   - The reference behavior is permissive: any status may be set from any
//     status. BudgetStatusTransitions encodes the canonical pipeline for
//     callers that opt into strict enforcement.

type BudgetStatus string

const (
	BudgetStatusDraft     BudgetStatus = "draft"
	BudgetStatusSent      BudgetStatus = "sent"
	BudgetStatusFollowUp  BudgetStatus = "follow_up"
	BudgetStatusApproval  BudgetStatus = "approval"
	BudgetStatusApproved  BudgetStatus = "approved"
	BudgetStatusDeclined  BudgetStatus = "declined"
	BudgetStatusPaid      BudgetStatus = "paid"
	BudgetStatusCancelled BudgetStatus = "cancelled"
)

func (s BudgetStatus) Valid() bool {
	_, ok := budgetStatusLabels[s]
	return ok
}

// Label returns the fixed Spanish display label used in log messages and UI.
func (s BudgetStatus) Label() string {
	if l, ok := budgetStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

var budgetStatusLabels = map[BudgetStatus]string{
	BudgetStatusDraft:     "Borrador",
	BudgetStatusSent:      "Enviado",
	BudgetStatusFollowUp:  "Seguimiento",
	BudgetStatusApproval:  "Por Aprobar",
	BudgetStatusApproved:  "Aprobado",
	BudgetStatusDeclined:  "Rechazado",
	BudgetStatusPaid:      "Pagado",
	BudgetStatusCancelled: "Cancelado",
}

// BudgetStatusTransitions is the canonical from-state -> allowed to-states
// table. approved, declined, paid and cancelled are terminal except for the
// approved -> paid step.
var BudgetStatusTransitions = map[BudgetStatus][]BudgetStatus{
	BudgetStatusDraft:    {BudgetStatusSent, BudgetStatusDeclined, BudgetStatusCancelled},
	BudgetStatusSent:     {BudgetStatusFollowUp, BudgetStatusDeclined, BudgetStatusCancelled},
	BudgetStatusFollowUp: {BudgetStatusApproval, BudgetStatusDeclined, BudgetStatusCancelled},
	BudgetStatusApproval: {BudgetStatusApproved, BudgetStatusDeclined, BudgetStatusCancelled},
	BudgetStatusApproved: {BudgetStatusPaid},
}

// CanTransition reports whether from -> to is part of the canonical pipeline.
func CanTransition(from, to BudgetStatus) bool {
	for _, allowed := range BudgetStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ActiveBudgetStatuses are the statuses shown in the active pipeline view;
// declined, paid and cancelled budgets move to history.
var ActiveBudgetStatuses = []BudgetStatus{
	BudgetStatusDraft,
	BudgetStatusSent,
	BudgetStatusFollowUp,
	BudgetStatusApproval,
	BudgetStatusApproved,
}

// BudgetItem is a single line of a budget. Items keep their insertion order
// for document rendering.
type BudgetItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Budget is an itemized quotation issued to a client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Monetary representation:
//   - Total is precomputed at creation time from Items and never recomputed
//     afterwards; there is no edit-items operation.
type Budget struct {
	ID            string       `json:"id"`
	ClientID      string       `json:"client_id"`
	Title         string       `json:"title"`
	Header        string       `json:"header,omitempty"`
	Footer        string       `json:"footer,omitempty"`
	Status        BudgetStatus `json:"status"`
	Items         []BudgetItem `json:"items"`
	Total         float64      `json:"total"`
	DateGenerated time.Time    `json:"date_generated"`
}

// DefaultBudgetTitle is applied when the creation form leaves the title empty.
const DefaultBudgetTitle = "Presupuesto"
