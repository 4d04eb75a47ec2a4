package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
)

type newCompanyState int

const (
	newCompanyStateForm newCompanyState = iota
	newCompanyStateSaving
	newCompanyStateResult
)

type NewCompanyModel struct {
	CommonModel
	companyService *company.Service

	state newCompanyState
	err   error

	form        *huh.Form
	code        string
	name        string
	description string
	spinner     spinner.Model

	created *company.Company
}

func NewNewCompanyModel(svc *company.Service) NewCompanyModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := NewCompanyModel{
		companyService: svc,
		state:          newCompanyStateForm,
		spinner:        s,
	}
	m.form = m.buildForm()

	return m
}

func (m NewCompanyModel) Title() string { return "New Company" }

func (m NewCompanyModel) ShortHelp() string {
	switch m.state {
	case newCompanyStateResult:
		return "Esc: back to menu"
	case newCompanyStateSaving:
		return "Saving..."
	}
	return "Esc: back | Enter: confirm"
}

func (m NewCompanyModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m NewCompanyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case newCompanyStateForm:
		return m.updateForm(msg)
	case newCompanyStateSaving:
		return m.updateSaving(msg)
	case newCompanyStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m NewCompanyModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = newCompanyStateSaving
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, m.saveCmd())
}

func (m NewCompanyModel) updateSaving(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(companySavedMsg); ok {
		m.state = newCompanyStateResult
		m.err = result.err
		m.created = result.company
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m NewCompanyModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}
	return m, nil
}

func (m NewCompanyModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("code").
				Title("Code").
				Description("Leave empty to derive from the name").
				Value(&m.code),
			huh.NewInput().
				Key("name").
				Title("Name").
				Validate(notBlank("name")).
				Value(&m.name),
			huh.NewInput().
				Key("description").
				Title("Description").
				Validate(notBlank("description")).
				Value(&m.description),
		),
	).WithWidth(50).WithShowHelp(false)
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func (m NewCompanyModel) View() string {
	switch m.state {
	case newCompanyStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case newCompanyStateSaving:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Saving company...", m.spinner.View()),
		)

	case newCompanyStateResult:
		return m.viewResult()
	}

	return ""
}

func (m NewCompanyModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Company Created!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			fmt.Sprintf("Code: %s", m.created.Code),
			fmt.Sprintf("Name: %s", m.created.Name),
			fmt.Sprintf("Description: %s", m.created.Description),
		),
	)
}

type companySavedMsg struct {
	company *company.Company
	err     error
}

func (m NewCompanyModel) saveCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.companyService.Create(ctx, company.CreateParams{
			Code:        strings.TrimSpace(m.code),
			Name:        strings.TrimSpace(m.name),
			Description: strings.TrimSpace(m.description),
		})
		return companySavedMsg{company: c, err: err}
	}
}
