package components

import "github.com/charmbracelet/lipgloss"

// Palette shared by every component. The ui package mirrors these values in
// its own styles.
var (
	colorPrimary   = lipgloss.Color("#2f8f83")
	colorLabel     = lipgloss.Color("#4f7aa8")
	colorText      = lipgloss.Color("#d7d9da")
	colorMuted     = lipgloss.Color("#9ba0bf")
	colorBorder    = lipgloss.Color("#2b3742")
	colorRowActive = lipgloss.Color("#1f2a30")
	colorKeyCap    = lipgloss.Color("#8aa3a0")
	colorInk       = lipgloss.Color("#14181c")
	colorErrBorder = lipgloss.Color("#7a2f3a")
	colorErrHeader = lipgloss.Color("#e06c75")
	colorErrBody   = lipgloss.Color("#d6b5b5")
	colorWarning   = lipgloss.Color("#d19a4b")
)
