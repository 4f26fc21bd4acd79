package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/resale-admin/cli/internal/config"
	"github.com/gravitrone/resale-admin/cli/internal/placeholder"
	"github.com/gravitrone/resale-admin/cli/internal/resource"
)

func testApp(t *testing.T) App {
	t.Helper()
	cfg := &config.Config{Email: "admin@example.com", BaseURL: "http://api.test"}
	return newApp([]tabModel{
		newResourceModel(resource.Leads(0), nil),
		newResourceModel(resource.Pricing(0), nil),
	}, cfg, nil)
}

func stepApp(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := a.Update(msg)
	app, ok := next.(App)
	require.True(t, ok)
	return app, cmd
}

// drain runs cmd and feeds its message back into the app.
func drain(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	if cmd == nil {
		return a
	}
	a, _ = stepApp(t, a, cmd())
	return a
}

func leadsTab(t *testing.T, a App) ResourceModel[placeholder.Lead] {
	t.Helper()
	m, ok := a.tabs[0].(ResourceModel[placeholder.Lead])
	require.True(t, ok)
	return m
}

func TestAppStartsOnFirstTab(t *testing.T) {
	a := testApp(t)
	a = drain(t, a, a.Init())

	assert.True(t, a.tabNav)
	assert.Equal(t, []bool{true, false}, a.started)
	assert.Len(t, leadsTab(t, a).ctrl.Records(), 6)

	view := a.View()
	assert.Contains(t, view, "1 Leads")
	assert.Contains(t, view, "2 Pricing")
	assert.Contains(t, view, "admin@example.com · http://api.test")
	assert.Contains(t, view, "Rahul Sharma")
}

func TestAppSwitchTabLoadsOnce(t *testing.T) {
	a := testApp(t)
	a = drain(t, a, a.Init())

	a, cmd := stepApp(t, a, press(tea.KeyRight))
	assert.Equal(t, 1, a.tab)
	require.NotNil(t, cmd)
	a = drain(t, a, cmd)
	assert.Contains(t, a.View(), "iPhone 13")

	a, cmd = stepApp(t, a, press(tea.KeyLeft))
	assert.Equal(t, 0, a.tab)
	assert.Nil(t, cmd)

	a, cmd = stepApp(t, a, runes("2"))
	assert.Equal(t, 1, a.tab)
	assert.Nil(t, cmd)

	a, _ = stepApp(t, a, press(tea.KeyTab))
	assert.Equal(t, 0, a.tab)
}

func TestAppRoutesMessagesToOwningTab(t *testing.T) {
	a := testApp(t)
	a = drain(t, a, a.Init())

	a, cmd := stepApp(t, a, press(tea.KeyRight))
	pricingLoad := cmd()
	a, _ = stepApp(t, a, press(tea.KeyLeft))
	require.Equal(t, 0, a.tab)

	a, _ = stepApp(t, a, pricingLoad)
	pricing, ok := a.tabs[1].(ResourceModel[placeholder.PriceEntry])
	require.True(t, ok)
	assert.Len(t, pricing.ctrl.Records(), 7)
	assert.Len(t, leadsTab(t, a).ctrl.Records(), 6)
}

func TestAppTypingStartsSearch(t *testing.T) {
	a := testApp(t)
	a = drain(t, a, a.Init())

	a, _ = stepApp(t, a, runes("r"))
	assert.False(t, a.tabNav)
	assert.Equal(t, "r", leadsTab(t, a).search)

	// esc first clears the search, then returns to the tab bar
	a, _ = stepApp(t, a, press(tea.KeyEsc))
	assert.False(t, a.tabNav)
	assert.Empty(t, leadsTab(t, a).search)

	a, _ = stepApp(t, a, press(tea.KeyEsc))
	assert.True(t, a.tabNav)
}

func TestAppFocusListAndNavigate(t *testing.T) {
	a := testApp(t)
	a = drain(t, a, a.Init())

	a, _ = stepApp(t, a, press(tea.KeyDown))
	assert.False(t, a.tabNav)

	a, _ = stepApp(t, a, press(tea.KeyDown))
	assert.Equal(t, 1, leadsTab(t, a).cursor)

	// q is a search character once the list has focus
	a, cmd := stepApp(t, a, runes("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, "q", leadsTab(t, a).search)
}

func TestAppQuit(t *testing.T) {
	a := testApp(t)

	_, cmd := stepApp(t, a, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	a, _ = stepApp(t, a, press(tea.KeyDown))
	_, cmd = stepApp(t, a, press(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppHelpOverlay(t *testing.T) {
	a := testApp(t)

	a, _ = stepApp(t, a, runes("?"))
	assert.True(t, a.help)
	assert.Contains(t, a.View(), "cycle the chosen filter")

	a, _ = stepApp(t, a, runes("x"))
	assert.False(t, a.help)
	assert.True(t, a.tabNav)
}

func TestAppWindowSizeReachesEveryTab(t *testing.T) {
	a := testApp(t)
	a, _ = stepApp(t, a, tea.WindowSizeMsg{Width: 140, Height: 40})

	assert.Equal(t, 140, leadsTab(t, a).width)
	pricing := a.tabs[1].(ResourceModel[placeholder.PriceEntry])
	assert.Equal(t, 140, pricing.width)
}

func TestSizedOverridesPageSize(t *testing.T) {
	def := sized(resource.Leads(0), 3)
	assert.Equal(t, 3, def.List.PageSize)
}
