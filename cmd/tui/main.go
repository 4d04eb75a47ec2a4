package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/nicholasDWinters/biztime-exercise/cmd/tui/internal/view"
	"github.com/nicholasDWinters/biztime-exercise/internal/company"
	companyStore "github.com/nicholasDWinters/biztime-exercise/internal/company/store"
	"github.com/nicholasDWinters/biztime-exercise/internal/config"
	"github.com/nicholasDWinters/biztime-exercise/internal/database"
	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
	invoiceStore "github.com/nicholasDWinters/biztime-exercise/internal/invoice/store"
)

type model struct {
	companyService *company.Service
	invoiceService *invoice.Service

	currentView View

	companiesView  view.CompaniesModel
	invoicesView   view.InvoicesModel
	newCompanyView view.NewCompanyModel
}

type View int

const (
	ViewMenu       View = 0
	ViewCompanies  View = 1
	ViewInvoices   View = 2
	ViewNewCompany View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	companySvc := company.NewService(companyStore.New(db))
	invoiceSvc := invoice.NewService(invoiceStore.New(db), companySvc)

	return model{
		companyService: companySvc,
		invoiceService: invoiceSvc,
		currentView:    ViewMenu,
		companiesView:  view.NewCompaniesModel(companySvc, invoiceSvc),
		invoicesView:   view.NewInvoicesModel(invoiceSvc),
		newCompanyView: view.NewNewCompanyModel(companySvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCompanies
				m.companiesView = view.NewCompaniesModel(m.companyService, m.invoiceService)

				return m, m.companiesView.Init()
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoiceService)

				return m, m.invoicesView.Init()
			case "3":
				m.currentView = ViewNewCompany
				m.newCompanyView = view.NewNewCompanyModel(m.companyService)

				return m, m.newCompanyView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCompanies:
		var newModel tea.Model
		newModel, cmd = m.companiesView.Update(msg)
		m.companiesView = newModel.(view.CompaniesModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewNewCompany:
		var newModel tea.Model
		newModel, cmd = m.newCompanyView.Update(msg)
		m.newCompanyView = newModel.(view.NewCompanyModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Biztime TUI\n\n" +
				"1. Browse Companies\n" +
				"2. List All Invoices\n" +
				"3. New Company\n\n" +
				"q. Quit",
		)
	case ViewCompanies:
		return m.companiesView.View()
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewNewCompany:
		return m.newCompanyView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
