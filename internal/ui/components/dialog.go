package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			Width(52)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	dialogFieldStyle = lipgloss.NewStyle().
				Foreground(colorLabel)

	dialogWarnStyle = lipgloss.NewStyle().
			Foreground(colorWarning)
)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	body := boxMutedStyle.Render(SanitizeText(message))
	hint := boxMutedStyle.Render("\n\ny: confirm | n: cancel")
	return dialogStyle.Render(dialogTitleStyle.Render(title) + "\n\n" + body + hint)
}

// InputDialog renders a text prompt. When options is non-empty the accepted
// values are listed under the field and the ones matching the typed prefix
// are highlighted.
func InputDialog(title, input string, options []string, problem string) string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(dialogFieldStyle.Render("> " + SanitizeOneLine(input) + "█"))

	if len(options) > 0 {
		prefix := strings.ToLower(strings.TrimSpace(input))
		rendered := make([]string, 0, len(options))
		for _, opt := range options {
			if prefix != "" && strings.HasPrefix(opt, prefix) {
				rendered = append(rendered, boxValueStyle.Bold(true).Render(opt))
			} else {
				rendered = append(rendered, boxMutedStyle.Render(opt))
			}
		}
		b.WriteString("\n\n")
		b.WriteString(strings.Join(rendered, boxMutedStyle.Render(" · ")))
	}
	if problem != "" {
		b.WriteString("\n\n")
		b.WriteString(dialogWarnStyle.Render(SanitizeOneLine(problem)))
	}
	b.WriteString(boxMutedStyle.Render("\n\nenter: submit | esc: cancel"))
	return dialogStyle.Render(b.String())
}
