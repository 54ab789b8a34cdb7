package documents

import (
	"fmt"
	"strconv"

	"crm_senior/internal/domain/entities"
	"crm_senior/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// BudgetPDFRenderer renders a budget as a fixed-layout A4 document: title,
// issuer block, client block, line-item table, total and footer text.

type BudgetPDFRenderer struct{}

var _ interfaces.IBudgetDocumentRenderer = (*BudgetPDFRenderer)(nil)

func NewBudgetPDFRenderer() *BudgetPDFRenderer {
	return &BudgetPDFRenderer{}
}

func (r *BudgetPDFRenderer) RenderBudget(budget entities.Budget, client entities.Client, issuer entities.User) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(12, func() {
			m.Col(12, func() {
				m.Text(budget.Title, props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  18,
				})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(budget.DateGenerated.Format("2006-01-02"), props.Text{
					Top:   2,
					Align: consts.Center,
					Size:  10,
				})
			})
		})
	})

	if budget.Header != "" {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(budget.Header, props.Text{Top: 3, Size: 10})
			})
		})
	}

	// Issuer and client blocks side by side.
	m.Row(20, func() {
		m.Col(6, func() {
			m.Text("De:", props.Text{Top: 2, Style: consts.Bold, Size: 10})
			m.Text(issuer.Name, props.Text{Top: 7, Size: 10})
			m.Text(issuer.Email, props.Text{Top: 12, Size: 9})
		})
		m.Col(6, func() {
			m.Text("Para:", props.Text{Top: 2, Style: consts.Bold, Size: 10})
			m.Text(client.Name, props.Text{Top: 7, Size: 10})
			m.Text(contactLine(client), props.Text{Top: 12, Size: 9})
		})
	})

	headers := []string{"Descripción", "Cantidad", "Precio", "Subtotal"}
	rows := make([][]string, 0, len(budget.Items))
	for _, it := range budget.Items {
		subtotal := float64(it.Quantity) * it.Price
		rows = append(rows, []string{
			it.Description,
			strconv.Itoa(it.Quantity),
			formatMoney(it.Price),
			formatMoney(subtotal),
		})
	}

	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{6, 2, 2, 2},
		},
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{6, 2, 2, 2},
		},
		Align:                consts.Left,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	m.Row(12, func() {
		m.ColSpace(8)
		m.Col(4, func() {
			m.Text("Total: "+formatMoney(budget.Total), props.Text{
				Top:   4,
				Style: consts.Bold,
				Align: consts.Right,
				Size:  12,
			})
		})
	})

	if budget.Footer != "" {
		m.Row(14, func() {
			m.Col(12, func() {
				m.Text(budget.Footer, props.Text{Top: 6, Size: 9})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func contactLine(client entities.Client) string {
	switch {
	case client.Email != "" && client.Phone != "":
		return client.Email + " · " + client.Phone
	case client.Email != "":
		return client.Email
	default:
		return client.Phone
	}
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
