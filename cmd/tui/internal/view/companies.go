package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
)

type companiesState int

const (
	companiesStateBrowse companiesState = iota
	companiesStateDetail
)

type CompaniesModel struct {
	CommonModel
	companyService *company.Service
	invoiceService *invoice.Service

	state companiesState
	table table.Model
	detail table.Model

	companies []*company.Company
	selected  *company.Company

	loading bool
	err     error
}

func NewCompaniesModel(companySvc *company.Service, invoiceSvc *invoice.Service) CompaniesModel {
	columns := []table.Column{
		{Title: "Code", Width: 12},
		{Title: "Name", Width: 25},
		{Title: "Description", Width: 45},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	detailColumns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Amount", Width: 12},
		{Title: "Paid", Width: 6},
		{Title: "Added", Width: 12},
		{Title: "Paid date", Width: 12},
	}

	d := table.New(
		table.WithColumns(detailColumns),
		table.WithHeight(15),
	)
	d.SetStyles(tableStyles())

	return CompaniesModel{
		companyService: companySvc,
		invoiceService: invoiceSvc,
		table:          t,
		detail:         d,
		loading:        true,
	}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return s
}

func (m CompaniesModel) Title() string { return "Companies" }
func (m CompaniesModel) ShortHelp() string {
	if m.state == companiesStateDetail {
		return "Esc: back to companies"
	}
	return "Esc: back | Enter: invoices | r: refresh"
}

func (m CompaniesModel) Init() tea.Cmd {
	return m.loadCompaniesCmd()
}

func (m CompaniesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCompaniesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.companies = msg.companies
		m.refreshTable()
		return m, nil

	case loadCompanyInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.state = companiesStateDetail
		m.refreshDetail(msg.invoices)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch m.state {
		case companiesStateBrowse:
			switch keyMsg.String() {
			case "esc":
				return m, Back
			case "r":
				m.loading = true
				return m, m.loadCompaniesCmd()
			case "enter":
				idx := m.table.Cursor()
				if idx < 0 || idx >= len(m.companies) {
					return m, nil
				}
				m.selected = m.companies[idx]
				m.loading = true
				return m, m.loadInvoicesCmd(m.selected.Code)
			}
		case companiesStateDetail:
			if keyMsg.String() == "esc" {
				m.state = companiesStateBrowse
				m.selected = nil
				return m, nil
			}
		}
	}

	var cmd tea.Cmd

	switch m.state {
	case companiesStateBrowse:
		m.table, cmd = m.table.Update(msg)
	case companiesStateDetail:
		m.detail, cmd = m.detail.Update(msg)
	}

	return m, cmd
}

func (m CompaniesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == companiesStateDetail && m.selected != nil {
		header := fmt.Sprintf("Invoices for %s (%s)", m.selected.Name, m.selected.Code)

		return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			borderedTable(m.detail),
		))
	}

	return lipgloss.NewStyle().Padding(1).Render(borderedTable(m.table))
}

func borderedTable(t table.Model) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(t.View())
}

func (m *CompaniesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.companies))
	for _, c := range m.companies {
		rows = append(rows, table.Row{c.Code, c.Name, c.Description})
	}
	m.table.SetRows(rows)
}

func (m *CompaniesModel) refreshDetail(invs []*invoice.Invoice) {
	rows := make([]table.Row, 0, len(invs))
	for _, inv := range invs {
		paidDate := ""
		if inv.PaidDate != nil {
			paidDate = FormatDate(*inv.PaidDate)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", inv.ID),
			FormatAmount(inv.Amt),
			fmt.Sprintf("%t", inv.Paid),
			FormatDate(inv.AddDate),
			paidDate,
		})
	}
	m.detail.SetRows(rows)
}

// Messages

type loadCompaniesMsg struct {
	companies []*company.Company
	err       error
}

func (m CompaniesModel) loadCompaniesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		companies, err := m.companyService.List(ctx)
		return loadCompaniesMsg{companies: companies, err: err}
	}
}

type loadCompanyInvoicesMsg struct {
	invoices []*invoice.Invoice
	err      error
}

func (m CompaniesModel) loadInvoicesCmd(code string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invs, err := m.invoiceService.ListByCompany(ctx, code)
		return loadCompanyInvoicesMsg{invoices: invs, err: err}
	}
}
