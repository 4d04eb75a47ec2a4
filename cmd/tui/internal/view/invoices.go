package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
)

type InvoicesModel struct {
	CommonModel
	invoiceService *invoice.Service

	table   table.Model
	loading bool
	err     error
}

func NewInvoicesModel(invoiceSvc *invoice.Service) InvoicesModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Company", Width: 12},
		{Title: "Amount", Width: 12},
		{Title: "Paid", Width: 6},
		{Title: "Added", Width: 12},
		{Title: "Paid date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	return InvoicesModel{
		invoiceService: invoiceSvc,
		table:          t,
		loading:        true,
	}
}

func (m InvoicesModel) Title() string     { return "Invoices" }
func (m InvoicesModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadInvoicesCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.refreshTable(msg.invoices)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadInvoicesCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	return lipgloss.NewStyle().Padding(1).Render(borderedTable(m.table))
}

func (m *InvoicesModel) refreshTable(invs []*invoice.Invoice) {
	rows := make([]table.Row, 0, len(invs))
	for _, inv := range invs {
		paidDate := ""
		if inv.PaidDate != nil {
			paidDate = FormatDate(*inv.PaidDate)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", inv.ID),
			inv.CompCode,
			FormatAmount(inv.Amt),
			fmt.Sprintf("%t", inv.Paid),
			FormatDate(inv.AddDate),
			paidDate,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadInvoicesMsg struct {
	invoices []*invoice.Invoice
	err      error
}

func (m InvoicesModel) loadInvoicesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invs, err := m.invoiceService.List(ctx)
		return loadInvoicesMsg{invoices: invs, err: err}
	}
}
