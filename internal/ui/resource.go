package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/gravitrone/resale-admin/cli/internal/api"
	"github.com/gravitrone/resale-admin/cli/internal/listview"
	"github.com/gravitrone/resale-admin/cli/internal/resource"
	"github.com/gravitrone/resale-admin/cli/internal/stats"
	"github.com/gravitrone/resale-admin/cli/internal/ui/components"
)

const (
	actionTimeout = 30 * time.Second
	defaultWidth  = 100
)

// --- Messages ---

// recordsLoadedMsg carries the outcome of one fetch. The ticket decides
// whether it is still the latest one for its list.
type recordsLoadedMsg[T any] struct {
	key    string
	ticket listview.Ticket
	result listview.Result[T]
	err    error
}

func (m recordsLoadedMsg[T]) route() string { return m.key }

// recordChangedMsg reports a finished delete or status change.
type recordChangedMsg struct {
	key    string
	notice string
	err    error
}

func (m recordChangedMsg) route() string { return m.key }

type resourceView int

const (
	resourceViewList resourceView = iota
	resourceViewDetail
)

type resourceDialog int

const (
	dialogNone resourceDialog = iota
	dialogDelete
	dialogStatus
)

// --- Resource Model ---

// ResourceModel is a searchable, filterable, paginated list of one record
// type with a detail view and optional delete and status actions.
type ResourceModel[T any] struct {
	def  resource.Definition[T]
	ctrl *listview.Controller[T]
	log  *zap.Logger

	view      resourceView
	cursor    int
	filterIdx int
	search    string
	detail    *T

	dialog   resourceDialog
	target   *T
	inputBuf string
	inputErr string

	busy      bool
	notice    string
	actionErr error

	width  int
	height int
}

func newResourceModel[T any](def resource.Definition[T], log *zap.Logger) ResourceModel[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return ResourceModel[T]{
		def:  def,
		ctrl: listview.New(def.List, listview.WithLogger(log), listview.WithName(def.Key)),
		log:  log,
	}
}

func (m ResourceModel[T]) Key() string   { return m.def.Key }
func (m ResourceModel[T]) Title() string { return m.def.Title }

func (m ResourceModel[T]) Init() tea.Cmd {
	return m.fetch()
}

// Idle reports whether the list holds no transient input, so esc can
// hand focus back to the tab bar.
func (m ResourceModel[T]) Idle() bool {
	return m.dialog == dialogNone && m.view == resourceViewList && m.search == ""
}

// fetch starts a load with the current remote filters. Begin runs here,
// not inside the command, so generations follow the order of requests.
func (m ResourceModel[T]) fetch() tea.Cmd {
	ctx, ticket := m.ctrl.Begin(context.Background())
	src, list := m.def.Source, m.def.Key
	return func() tea.Msg {
		res, err := src(ctx, ticket.Query)
		return recordsLoadedMsg[T]{key: list, ticket: ticket, result: res, err: err}
	}
}

func (m ResourceModel[T]) Update(msg tea.Msg) (tabModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case recordsLoadedMsg[T]:
		if msg.key != m.def.Key || !m.ctrl.Resolve(msg.ticket, msg.result, msg.err) {
			return m, nil
		}
		m.clampCursor()
		m.refreshDetail()
		return m, nil

	case recordChangedMsg:
		if msg.key != m.def.Key {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.log.Warn("action failed", zap.String("list", m.def.Key), zap.Error(msg.err))
			m.actionErr = msg.err
			m.notice = ""
			return m, nil
		}
		m.actionErr = nil
		m.notice = msg.notice
		return m, m.fetch()

	case tea.KeyMsg:
		if m.dialog != dialogNone {
			return m.handleDialogKeys(msg)
		}
		if m.view == resourceViewDetail {
			return m.handleDetailKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

// --- Keys ---

func (m ResourceModel[T]) handleListKeys(msg tea.KeyMsg) (tabModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.ctrl.Visible().Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Left):
		m.ctrl.PrevPage()
		m.cursor = 0
	case key.Matches(msg, keys.Right):
		m.ctrl.NextPage()
		m.cursor = 0
	case key.Matches(msg, keys.Enter):
		if item, ok := m.selected(); ok {
			m.detail = &item
			m.view = resourceViewDetail
		}
	case key.Matches(msg, keys.NextFilter):
		if n := len(m.def.List.Filters); n > 0 {
			m.filterIdx = (m.filterIdx + 1) % n
		}
	case key.Matches(msg, keys.CycleFilter):
		return m.cycleFilterValue()
	case key.Matches(msg, keys.Reload):
		m.notice = ""
		m.actionErr = nil
		return m, m.fetch()
	case key.Matches(msg, keys.Delete):
		if item, ok := m.selected(); ok {
			return m.openDelete(item)
		}
	case key.Matches(msg, keys.Status):
		if item, ok := m.selected(); ok {
			return m.openStatus(item)
		}
	case key.Matches(msg, keys.ClearSearch, keys.Back):
		m.setSearch("")
	case key.Matches(msg, keys.Backspace):
		if r := []rune(m.search); len(r) > 0 {
			m.setSearch(string(r[:len(r)-1]))
		}
	default:
		if text, ok := typedText(msg); ok {
			m.setSearch(m.search + text)
		}
	}
	return m, nil
}

func (m ResourceModel[T]) handleDetailKeys(msg tea.KeyMsg) (tabModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back, keys.Backspace):
		m.view = resourceViewList
		m.detail = nil
	case key.Matches(msg, keys.Delete):
		return m.openDelete(*m.detail)
	case key.Matches(msg, keys.Status):
		return m.openStatus(*m.detail)
	case key.Matches(msg, keys.Reload):
		return m, m.fetch()
	}
	return m, nil
}

func (m ResourceModel[T]) handleDialogKeys(msg tea.KeyMsg) (tabModel, tea.Cmd) {
	if key.Matches(msg, keys.Back) {
		m.closeDialog()
		return m, nil
	}
	switch m.dialog {
	case dialogDelete:
		switch {
		case key.Matches(msg, keys.Confirm):
			target := *m.target
			m.closeDialog()
			m.busy = true
			return m, m.removeCmd(m.def.ID(target), m.def.Label(target))
		case key.Matches(msg, keys.Cancel):
			m.closeDialog()
		}
	case dialogStatus:
		switch {
		case key.Matches(msg, keys.Enter):
			status := strings.ToLower(strings.TrimSpace(m.inputBuf))
			if !containsString(m.def.Statuses, status) {
				m.inputErr = fmt.Sprintf("unknown status %q", status)
				return m, nil
			}
			target := *m.target
			m.closeDialog()
			m.busy = true
			return m, m.statusCmd(m.def.ID(target), m.def.Label(target), status)
		case key.Matches(msg, keys.Backspace):
			if r := []rune(m.inputBuf); len(r) > 0 {
				m.inputBuf = string(r[:len(r)-1])
			}
			m.inputErr = ""
		default:
			if text, ok := typedText(msg); ok {
				m.inputBuf += text
				m.inputErr = ""
			}
		}
	}
	return m, nil
}

// --- State Helpers ---

func (m *ResourceModel[T]) setSearch(term string) {
	m.search = term
	m.ctrl.SetSearchTerm(strings.TrimSpace(term))
	m.cursor = 0
}

func (m ResourceModel[T]) focusedFilter() string {
	filters := m.def.List.Filters
	if len(filters) == 0 {
		return ""
	}
	return filters[m.filterIdx%len(filters)]
}

func (m ResourceModel[T]) cycleFilterValue() (tabModel, tea.Cmd) {
	name := m.focusedFilter()
	if name == "" {
		return m, nil
	}
	opts := m.ctrl.Options(name)
	current := m.ctrl.State().Value(name)
	next := opts[(indexOf(opts, current)+1)%len(opts)]
	m.ctrl.SetFilterValue(name, next)
	m.cursor = 0
	if m.def.List.IsRemote(name) {
		return m, m.fetch()
	}
	return m, nil
}

func (m ResourceModel[T]) selected() (T, bool) {
	items := m.ctrl.Visible().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		var zero T
		return zero, false
	}
	return items[m.cursor], true
}

func (m *ResourceModel[T]) clampCursor() {
	n := len(m.ctrl.Visible().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// refreshDetail swaps the open record for its reloaded copy, or closes the
// detail view when the record is gone.
func (m *ResourceModel[T]) refreshDetail() {
	if m.detail == nil {
		return
	}
	id := m.def.ID(*m.detail)
	for _, r := range m.ctrl.Records() {
		if m.def.ID(r) == id {
			r := r
			m.detail = &r
			return
		}
	}
	m.detail = nil
	m.view = resourceViewList
}

func (m ResourceModel[T]) openDelete(item T) (tabModel, tea.Cmd) {
	if m.def.Remove == nil || m.busy {
		return m, nil
	}
	m.dialog = dialogDelete
	m.target = &item
	return m, nil
}

func (m ResourceModel[T]) openStatus(item T) (tabModel, tea.Cmd) {
	if m.def.SetStatus == nil || m.busy {
		return m, nil
	}
	m.dialog = dialogStatus
	m.target = &item
	m.inputBuf = ""
	m.inputErr = ""
	return m, nil
}

func (m *ResourceModel[T]) closeDialog() {
	m.dialog = dialogNone
	m.target = nil
	m.inputBuf = ""
	m.inputErr = ""
}

// --- Commands ---

func (m ResourceModel[T]) removeCmd(id, label string) tea.Cmd {
	remove, list := m.def.Remove, m.def.Key
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		if err := remove(ctx, id); err != nil {
			return recordChangedMsg{key: list, err: err}
		}
		return recordChangedMsg{key: list, notice: fmt.Sprintf("Deleted %s.", label)}
	}
}

func (m ResourceModel[T]) statusCmd(id, label, status string) tea.Cmd {
	setStatus, list := m.def.SetStatus, m.def.Key
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		if err := setStatus(ctx, id, status); err != nil {
			return recordChangedMsg{key: list, err: err}
		}
		return recordChangedMsg{key: list, notice: fmt.Sprintf("%s is now %s.", label, status)}
	}
}

// --- View ---

func (m ResourceModel[T]) renderWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m ResourceModel[T]) View() string {
	switch m.dialog {
	case dialogDelete:
		msg := fmt.Sprintf("Delete %s? This cannot be undone.", m.def.Label(*m.target))
		return components.Indent(components.ConfirmDialog("Delete "+m.def.Title, msg), 1)
	case dialogStatus:
		title := fmt.Sprintf("New status for %s", m.def.Label(*m.target))
		return components.Indent(components.InputDialog(title, m.inputBuf, m.def.Statuses, m.inputErr), 1)
	}
	if m.view == resourceViewDetail && m.detail != nil {
		return components.Indent(m.renderDetail(), 1)
	}
	return components.Indent(m.renderList(), 1)
}

func (m ResourceModel[T]) renderList() string {
	width := m.renderWidth()
	records := m.ctrl.Records()
	loadErr := m.ctrl.Err()

	sections := []string{m.renderFilterLine()}
	if loadErr != nil {
		sections = append(sections, components.ErrorBox("Could not load "+m.def.Noun, errorText(loadErr), width))
	}
	if m.actionErr != nil {
		sections = append(sections, components.ErrorBox("Action failed", errorText(m.actionErr), width))
	}
	if m.notice != "" {
		sections = append(sections, NoticeStyle.Render(m.notice))
	}
	if m.busy {
		sections = append(sections, BusyStyle.Render("Working..."))
	}

	page := m.ctrl.Visible()
	switch {
	case m.ctrl.Loading() && len(records) == 0:
		sections = append(sections, MutedStyle.Render(fmt.Sprintf("Loading %s...", m.def.Noun)))
	case len(records) == 0 && loadErr != nil:
	case len(records) == 0:
		sections = append(sections, components.Box(MutedStyle.Render(fmt.Sprintf("No %s found.", m.def.Noun)), width))
	case page.Total == 0:
		sections = append(sections, components.Box(MutedStyle.Render(fmt.Sprintf("No %s match the current search and filters.", m.def.Noun)), width))
	default:
		sections = append(sections, m.renderTable(page, len(records)))
	}
	return strings.Join(sections, "\n\n")
}

func (m ResourceModel[T]) renderTable(page listview.Page[T], total int) string {
	width := m.renderWidth()

	count := fmt.Sprintf("%d of %d · page %d/%d", page.Total, total, page.Index+1, max(page.Pages, 1))
	if m.ctrl.Loading() {
		count += " · refreshing"
	}

	rows := make([][]string, len(page.Items))
	for i, item := range page.Items {
		rows[i] = m.def.Row(item)
	}
	content := MutedStyle.Render(count) + "\n\n" +
		components.TableGrid(tableColumns(m.def.Columns), rows, components.BoxContentWidth(width), m.cursor)

	if m.def.Summary != nil {
		parts := make([]string, 0, 4)
		for _, r := range m.def.Summary(m.ctrl.Records(), stats.Summary(m.ctrl.Stats())) {
			parts = append(parts, MutedStyle.Render(r.Label+" ")+NormalStyle.Render(r.Value))
		}
		content += "\n\n" + strings.Join(parts, MutedStyle.Render("  ·  "))
	}
	if m.def.Note != "" {
		content += "\n" + MutedStyle.Render(m.def.Note)
	}
	return components.TitledBox(m.def.Title, content, width)
}

func (m ResourceModel[T]) renderFilterLine() string {
	search := MutedStyle.Render("type to search")
	if m.search != "" {
		search = NormalStyle.Render(m.search) + SelectedStyle.Render("█")
	}
	parts := []string{MutedStyle.Render("search ") + search}

	state := m.ctrl.State()
	focused := m.focusedFilter()
	for _, name := range m.def.List.Filters {
		label := name + ": " + state.Value(name)
		if name == focused {
			parts = append(parts, FilterFocusStyle.Render(label))
		} else {
			parts = append(parts, FilterKeyStyle.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func (m ResourceModel[T]) renderDetail() string {
	item := *m.detail
	out := components.Table(m.def.Label(item), tableRows(m.def.Detail(item)), m.renderWidth())
	if m.actionErr != nil {
		out += "\n\n" + components.ErrorBox("Action failed", errorText(m.actionErr), m.renderWidth())
	}
	return out
}

// Hints lists the keys that work in the current state.
func (m ResourceModel[T]) Hints() []string {
	if m.dialog != dialogNone {
		return nil
	}
	var hints []string
	if m.view == resourceViewDetail {
		hints = append(hints, components.Hint("esc", "back"))
	} else {
		hints = append(hints,
			components.Hint("a-z", "search"),
			components.Hint("↑/↓", "move"),
			components.Hint("←/→", "page"),
			components.Hint("enter", "details"),
		)
		if len(m.def.List.Filters) > 0 {
			hints = append(hints, components.Hint("tab", "filter"), components.Hint("ctrl+f", "cycle"))
		}
	}
	hints = append(hints, components.Hint("ctrl+r", "reload"))
	if m.def.Remove != nil {
		hints = append(hints, components.Hint("ctrl+d", "delete"))
	}
	if m.def.SetStatus != nil {
		hints = append(hints, components.Hint("ctrl+s", "status"))
	}
	return hints
}

// errorText renders err for the user, pointing at login when the session
// was rejected.
func errorText(err error) string {
	text := api.UserMessage(err)
	if api.IsUnauthorized(err) {
		return text + "\n\nYour session was rejected. Run `resale login` and restart."
	}
	return text + "\n\nctrl+r to retry"
}

func tableColumns(cols []resource.Column) []components.TableColumn {
	out := make([]components.TableColumn, len(cols))
	for i, c := range cols {
		out[i] = components.TableColumn{Header: c.Header, Width: c.Width}
		if c.Right {
			out[i].Align = lipgloss.Right
		}
	}
	return out
}

func tableRows(fields []resource.Field) []components.TableRow {
	out := make([]components.TableRow, len(fields))
	for i, f := range fields {
		out[i] = components.TableRow{Label: f.Label, Value: f.Value}
	}
	return out
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return 0
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
