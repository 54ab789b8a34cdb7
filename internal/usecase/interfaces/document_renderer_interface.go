package interfaces

import "crm_senior/internal/domain/entities"

// IBudgetDocumentRenderer renders a budget as a printable document
// (application/pdf) with the issuing user and client blocks.
type IBudgetDocumentRenderer interface {
	RenderBudget(budget entities.Budget, client entities.Client, issuer entities.User) ([]byte, error)
}
