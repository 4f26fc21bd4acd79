package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuitBindings(t *testing.T) {
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, keys.ForceQuit))
	assert.True(t, key.Matches(runes("q"), keys.Quit))
	assert.False(t, key.Matches(runes("a"), keys.Quit, keys.ForceQuit))
}

func TestArrowBindings(t *testing.T) {
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyUp}, keys.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, keys.Down))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyLeft}, keys.Left))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRight}, keys.Right))
	assert.False(t, key.Matches(runes("j"), keys.Down))
	assert.False(t, key.Matches(runes("k"), keys.Up))
}

func TestActionBindingsUseControlKeys(t *testing.T) {
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlR}, keys.Reload))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlD}, keys.Delete))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, keys.Status))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlF}, keys.CycleFilter))
	// plain letters stay free for typing a search
	for _, r := range "rdsfu" {
		assert.False(t, key.Matches(runes(string(r)), keys.Reload, keys.Delete, keys.Status, keys.CycleFilter, keys.ClearSearch))
	}
}

func TestEnterAndBackBindings(t *testing.T) {
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, keys.Enter))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace}, keys.Enter))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, keys.Back))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyBackspace}, keys.Backspace))
	assert.True(t, key.Matches(runes("Y"), keys.Confirm))
	assert.True(t, key.Matches(runes("n"), keys.Cancel))
}

func TestFullHelpListsEveryAction(t *testing.T) {
	var descs []string
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			descs = append(descs, b.Help().Desc)
		}
	}
	assert.Contains(t, descs, "cycle the chosen filter")
	assert.Contains(t, descs, "delete the selected record")
	assert.Contains(t, descs, "jump to a tab")
}

func TestTypedText(t *testing.T) {
	text, ok := typedText(runes("mac"))
	assert.True(t, ok)
	assert.Equal(t, "mac", text)

	text, ok = typedText(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, ok)
	assert.Equal(t, " ", text)

	_, ok = typedText(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	assert.False(t, ok)
	_, ok = typedText(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.False(t, ok)
}

func TestTabIndexForKey(t *testing.T) {
	idx, ok := tabIndexForKey("1", 10)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = tabIndexForKey("0", 10)
	assert.True(t, ok)
	assert.Equal(t, 9, idx)

	_, ok = tabIndexForKey("0", 9)
	assert.False(t, ok)
	_, ok = tabIndexForKey("x", 10)
	assert.False(t, ok)
	_, ok = tabIndexForKey("12", 10)
	assert.False(t, ok)
}
