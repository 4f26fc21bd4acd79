package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/gravitrone/resale-admin/cli/internal/listview"
	"github.com/gravitrone/resale-admin/cli/internal/report"
	"github.com/gravitrone/resale-admin/cli/internal/ui/components"
)

const reportsKey = "reports"

// --- Messages ---

type reportLoadedMsg struct {
	ticket listview.Ticket
	report report.Report
	err    error
}

func (reportLoadedMsg) route() string { return reportsKey }

// --- Reports Model ---

// ReportsModel shows the order, user, and catalog rollups. Its sections go
// through a list controller so a slow reload cannot overwrite a newer one.
type ReportsModel struct {
	backend report.Backend
	log     *zap.Logger
	ctrl    *listview.Controller[report.Section]
	updated time.Time
	width   int
	height  int
}

func NewReportsModel(backend report.Backend, log *zap.Logger) ReportsModel {
	if log == nil {
		log = zap.NewNop()
	}
	return ReportsModel{
		backend: backend,
		log:     log,
		ctrl:    listview.New(listview.Config[report.Section]{}, listview.WithLogger(log), listview.WithName(reportsKey)),
	}
}

func (m ReportsModel) Key() string   { return reportsKey }
func (m ReportsModel) Title() string { return "Reports" }
func (m ReportsModel) Idle() bool    { return true }

func (m ReportsModel) Init() tea.Cmd {
	return m.load()
}

func (m ReportsModel) load() tea.Cmd {
	ctx, ticket := m.ctrl.Begin(context.Background())
	backend, log := m.backend, m.log
	return func() tea.Msg {
		r, err := report.Load(ctx, backend, log)
		return reportLoadedMsg{ticket: ticket, report: r, err: err}
	}
}

func (m ReportsModel) Update(msg tea.Msg) (tabModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case reportLoadedMsg:
		applied := m.ctrl.Resolve(msg.ticket, listview.Result[report.Section]{Items: msg.report.Sections}, msg.err)
		if applied && msg.err == nil {
			m.updated = msg.report.GeneratedAt
		}
	case tea.KeyMsg:
		if key.Matches(msg, keys.Reload) {
			return m, m.load()
		}
	}
	return m, nil
}

func (m ReportsModel) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	sections := m.ctrl.Records()

	var parts []string
	if err := m.ctrl.Err(); err != nil {
		parts = append(parts, components.ErrorBox("Could not load reports", errorText(err), width))
	}
	switch {
	case m.ctrl.Loading() && len(sections) == 0:
		parts = append(parts, MutedStyle.Render("Loading reports..."))
	case len(sections) > 0:
		status := "Updated " + m.updated.Local().Format("15:04:05")
		if m.ctrl.Loading() {
			status += " · refreshing"
		}
		parts = append(parts, MutedStyle.Render(status), m.renderSections(sections, width))
	}
	return components.Indent(strings.Join(parts, "\n\n"), 1)
}

// renderSections lays the tables out two per row on wide terminals.
func (m ReportsModel) renderSections(sections []report.Section, width int) string {
	if width < 120 {
		tables := make([]string, len(sections))
		for i, s := range sections {
			tables[i] = components.Table(s.Title, tableRows(s.Fields), width)
		}
		return strings.Join(tables, "\n")
	}

	half := width / 2
	rows := make([]string, 0, (len(sections)+1)/2)
	for i := 0; i < len(sections); i += 2 {
		left := components.Table(sections[i].Title, tableRows(sections[i].Fields), half)
		if i+1 == len(sections) {
			rows = append(rows, left)
			continue
		}
		right := components.Table(sections[i+1].Title, tableRows(sections[i+1].Fields), half)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	}
	return strings.Join(rows, "\n")
}

func (m ReportsModel) Hints() []string {
	return []string{components.Hint("ctrl+r", "refresh")}
}
