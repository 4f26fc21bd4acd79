package ui

import "github.com/charmbracelet/lipgloss"

// --- Palette ---

// Hex values match the components theme so tabs and boxes agree.
var (
	ColorPrimary = lipgloss.Color("#2f8f83") // teal
	ColorFilter  = lipgloss.Color("#4f7aa8") // steel blue
	ColorInk     = lipgloss.Color("#14181c") // text on filled chips
	ColorText    = lipgloss.Color("#d7d9da")
	ColorMuted   = lipgloss.Color("#9ba0bf")
	ColorNotice  = lipgloss.Color("#3f866b") // green
	ColorBusy    = lipgloss.Color("#d19a4b") // amber
	ColorBorder  = lipgloss.Color("#2b3742")
)

// --- Styles ---

var (
	// Tab bar: the focused tab is a filled chip while the bar has focus.
	TabActiveStyle   = lipgloss.NewStyle().Foreground(ColorInk).Background(ColorPrimary).Bold(true).Padding(0, 1)
	TabInactiveStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	NormalStyle   = lipgloss.NewStyle().Foreground(ColorText)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)

	// NoticeStyle marks a finished action, BusyStyle one in flight.
	NoticeStyle = lipgloss.NewStyle().Foreground(ColorNotice)
	BusyStyle   = lipgloss.NewStyle().Foreground(ColorBusy)

	FilterKeyStyle   = lipgloss.NewStyle().Foreground(ColorFilter)
	FilterFocusStyle = lipgloss.NewStyle().Foreground(ColorInk).Background(ColorFilter).Padding(0, 1)
)
