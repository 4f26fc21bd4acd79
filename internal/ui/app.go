package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/gravitrone/resale-admin/cli/internal/api"
	"github.com/gravitrone/resale-admin/cli/internal/config"
	"github.com/gravitrone/resale-admin/cli/internal/placeholder"
	"github.com/gravitrone/resale-admin/cli/internal/resource"
	"github.com/gravitrone/resale-admin/cli/internal/ui/components"
)

// tabModel is one screen behind a tab.
type tabModel interface {
	Key() string
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tabModel, tea.Cmd)
	View() string
	Hints() []string
	// Idle reports whether esc may return focus to the tab bar.
	Idle() bool
}

// routedMsg is a message addressed to the tab with the matching key.
type routedMsg interface {
	route() string
}

// --- App Model ---

// App is the root TUI model that routes between tabs.
type App struct {
	config  *config.Config
	log     *zap.Logger
	tabs    []tabModel
	started []bool
	tab     int
	tabNav  bool
	help    bool
	width   int
	height  int
}

// NewApp creates the root model with every admin tab.
func NewApp(client *api.Client, cfg *config.Config, log *zap.Logger) App {
	if log == nil {
		log = zap.NewNop()
	}
	size := cfg.ListPageSize()
	tabs := []tabModel{
		NewReportsModel(client, log),
		newResourceModel(sized(resource.Orders(client), size), log),
		newResourceModel(sized(resource.Leads(placeholder.DefaultDelay), size), log),
		newResourceModel(sized(resource.Pricing(placeholder.DefaultDelay), size), log),
		newResourceModel(sized(resource.Products(client), size), log),
		newResourceModel(sized(resource.Categories(client), size), log),
		newResourceModel(sized(resource.SuperCategories(client), size), log),
		newResourceModel(sized(resource.SeriesList(client), size), log),
		newResourceModel(sized(resource.Users(client), size), log),
		newResourceModel(sized(resource.Defects(client), size), log),
	}
	return newApp(tabs, cfg, log)
}

func newApp(tabs []tabModel, cfg *config.Config, log *zap.Logger) App {
	return App{
		config:  cfg,
		log:     log,
		tabs:    tabs,
		started: make([]bool, len(tabs)),
		tabNav:  true,
	}
}

func sized[T any](def resource.Definition[T], pageSize int) resource.Definition[T] {
	def.List.PageSize = pageSize
	return def
}

func (a App) Init() tea.Cmd {
	if len(a.tabs) == 0 {
		return nil
	}
	a.started[0] = true
	return a.tabs[0].Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for i := range a.tabs {
			a.tabs[i], _ = a.tabs[i].Update(msg)
		}
		return a, nil

	case routedMsg:
		for i, t := range a.tabs {
			if t.Key() == msg.route() {
				var cmd tea.Cmd
				a.tabs[i], cmd = t.Update(msg)
				return a, cmd
			}
		}
		a.log.Debug("unrouted message", zap.String("route", msg.route()))
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.help {
			a.help = false
			return a, nil
		}
		if a.tabNav {
			return a.handleTabNavKeys(msg)
		}
		if key.Matches(msg, keys.Back) && a.tabs[a.tab].Idle() {
			a.tabNav = true
			return a, nil
		}
		return a.forward(msg)
	}
	return a, nil
}

func (a App) handleTabNavKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.Help):
		a.help = true
	case key.Matches(msg, keys.Left):
		return a.switchTab((a.tab + len(a.tabs) - 1) % len(a.tabs))
	case key.Matches(msg, keys.Right, keys.NextFilter):
		return a.switchTab((a.tab + 1) % len(a.tabs))
	case key.Matches(msg, keys.Down, keys.Enter):
		a.tabNav = false
	default:
		if idx, ok := tabIndexForKey(msg.String(), len(a.tabs)); ok && key.Matches(msg, keys.JumpTab) {
			return a.switchTab(idx)
		}
		// typing starts a search in the open tab
		if _, ok := typedText(msg); ok {
			a.tabNav = false
			return a.forward(msg)
		}
	}
	return a, nil
}

func (a App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.tabs[a.tab], cmd = a.tabs[a.tab].Update(msg)
	return a, cmd
}

func (a App) switchTab(idx int) (tea.Model, tea.Cmd) {
	a.tab = idx
	if a.started[idx] {
		return a, nil
	}
	a.started[idx] = true
	return a, a.tabs[idx].Init()
}

// --- View ---

func (a App) View() string {
	if len(a.tabs) == 0 {
		return ""
	}
	content := a.tabs[a.tab].View()
	if a.help {
		content = a.renderHelp()
	}
	return fmt.Sprintf("%s\n%s\n%s\n\n%s\n%s",
		centerBlock(RenderBanner(a.width), a.width),
		centerBlock(a.renderTabs(), a.width),
		centerBlock(a.renderSession(), a.width),
		content,
		components.StatusBar(a.statusHints(), a.width),
	)
}

func (a App) renderTabs() string {
	segments := make([]string, 0, len(a.tabs))
	for i, t := range a.tabs {
		label := fmt.Sprintf("%d %s", (i+1)%10, t.Title())
		switch {
		case i == a.tab && a.tabNav:
			segments = append(segments, TabActiveStyle.Render(label))
		case i == a.tab:
			segments = append(segments, SelectedStyle.Padding(0, 1).Render(label))
		default:
			segments = append(segments, TabInactiveStyle.Render(label))
		}
	}
	if a.width > 0 {
		return wrapTabs(segments, a.width)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func wrapTabs(segments []string, width int) string {
	var rows []string
	var current []string
	used := 0
	for _, seg := range segments {
		w := lipgloss.Width(seg)
		if used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current, used = nil, 0
		}
		current = append(current, seg)
		used += w
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return strings.Join(rows, "\n")
}

func (a App) renderSession() string {
	if a.config == nil {
		return ""
	}
	who := a.config.Email
	if who == "" {
		who = "not signed in"
	}
	return MutedStyle.Render(who + " · " + a.config.APIBaseURL(api.DefaultBaseURL))
}

func (a App) renderHelp() string {
	h := help.New()
	h.ShowAll = true
	return components.Indent(components.TitledBox("Keys", h.View(keys), a.width), 1)
}

func (a App) statusHints() []string {
	if a.help {
		return []string{components.Hint("any key", "close")}
	}
	if a.tabNav {
		return []string{
			components.Hint("←/→", "tabs"),
			components.Hint("↓", "open"),
			components.Hint("?", "help"),
			components.Hint("q", "quit"),
		}
	}
	hints := a.tabs[a.tab].Hints()
	if a.tabs[a.tab].Idle() {
		hints = append(hints, components.Hint("esc", "tabs"))
	}
	return append(hints, components.Hint("ctrl+c", "quit"))
}

// centerBlock pads every line of s by the same amount so the block sits in
// the middle of the terminal.
func centerBlock(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	widest := 0
	for _, l := range lines {
		widest = max(widest, lipgloss.Width(l))
	}
	if widest >= width {
		return s
	}
	return components.Indent(s, (width-widest)/2)
}
