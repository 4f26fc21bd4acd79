package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
██████  ███████ ███████  █████  ██      ███████
██   ██ ██      ██      ██   ██ ██      ██
██████  █████   ███████ ███████ ██      █████
██   ██ ██           ██ ██   ██ ██      ██
██   ██ ███████ ███████ ██   ██ ███████ ███████`

const bannerSubtitle = "Device Resale Marketplace • Admin Console"

// RenderBanner returns the styled banner. Terminals narrower than the art
// get a one-line wordmark instead.
func RenderBanner(width int) string {
	lines := strings.Split(strings.TrimPrefix(bannerArt, "\n"), "\n")

	artWidth := 0
	for _, line := range lines {
		artWidth = max(artWidth, lipgloss.Width(line))
	}
	blockWidth := max(artWidth, lipgloss.Width(bannerSubtitle))

	if width > 0 && width < blockWidth {
		return "\n" + SelectedStyle.Render("resale") + MutedStyle.Render(" admin") + "\n"
	}

	art := lipgloss.NewStyle().Foreground(ColorPrimary).Width(artWidth).Render(strings.Join(lines, "\n"))
	center := lipgloss.NewStyle().Width(blockWidth).Align(lipgloss.Center)
	subtitle := center.Foreground(ColorMuted).Render(bannerSubtitle)
	underline := center.Foreground(ColorBorder).Render(strings.Repeat("─", lipgloss.Width(bannerSubtitle)))

	return "\n" + center.Render(art) + "\n\n" + subtitle + "\n" + underline + "\n"
}
