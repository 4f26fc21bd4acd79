package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Themes lists the accepted values of the theme config key.
var Themes = []string{"dark", "mono"}

// ApplyTheme selects the colour scheme for every renderer in the process.
// An empty name keeps the terminal's detected profile.
func ApplyTheme(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return nil
	case "mono":
		lipgloss.SetColorProfile(termenv.Ascii)
		return nil
	default:
		return fmt.Errorf("unknown theme %q (want %s)", name, strings.Join(Themes, " or "))
	}
}
