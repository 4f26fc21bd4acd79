package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxBorder        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(1, 2)
	boxHeaderStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	boxLabelStyle    = lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
	boxValueStyle    = lipgloss.NewStyle().Foreground(colorText)
	boxMutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorBorder      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorErrBorder).Padding(1, 2)
	errorHeaderStyle = lipgloss.NewStyle().Foreground(colorErrHeader).Bold(true)
	errorBodyStyle   = lipgloss.NewStyle().Foreground(colorErrBody)
)

// boxWidth uses most of a wide terminal for tables, capped at 120 columns.
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	w := width * 90 / 100
	if w < 40 {
		w = 40
	}
	if w > 120 {
		w = 120
	}
	return w
}

func safeBoxWidth(width int) int {
	w := boxWidth(width)
	if width > 0 && w > width {
		return width
	}
	return w
}

// Box renders content inside a bordered box.
func Box(content string, width int) string {
	return boxBorder.Width(safeBoxWidth(width)).Render(content)
}

// BoxContentWidth returns the inner content width excluding border and padding.
func BoxContentWidth(width int) int {
	w := safeBoxWidth(width)
	// border 2, padding 4
	if w <= 6 {
		return 0
	}
	return w - 6
}

// ClampTextWidth flattens text to one line and truncates it to width cells.
func ClampTextWidth(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	if width == 1 {
		return "…"
	}
	return truncateRunes(cleaned, width-1) + "…"
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	header := ""
	if title != "" {
		header = errorHeaderStyle.Render(title) + "\n\n"
	}
	body := errorBodyStyle.Render(SanitizeText(message))
	return errorBorder.Width(safeBoxWidth(width)).Render(header + body)
}

// TitledBox renders a box with the title set into the top border.
func TitledBox(title, content string, width int) string {
	boxed := boxBorder.Width(safeBoxWidth(width)).Render(content)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middle := lineWidth - 2
	label := fmt.Sprintf(" %s ", SanitizeOneLine(title))
	if lipgloss.Width(label) > middle-2 {
		label = truncateRunes(label, max(middle-2, 0))
	}
	// title sits two cells in from the left corner
	right := middle - 2 - lipgloss.Width(label)
	if right < 0 {
		right = 0
	}

	borderStyle := lipgloss.NewStyle().Foreground(colorBorder)
	lines[0] = borderStyle.Render(border.TopLeft+strings.Repeat(border.Top, 2)) +
		boxHeaderStyle.Render(label) +
		borderStyle.Render(strings.Repeat(border.Top, right)+border.TopRight)
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// TableRow is a single label/value pair of a detail table.
type TableRow struct {
	Label string
	Value string
}

// Table renders label/value rows with aligned labels inside a titled box.
func Table(title string, rows []TableRow, width int) string {
	if len(rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(SanitizeOneLine(r.Label)))
	}
	if labelWidth > 24 {
		labelWidth = 24
	}

	contentWidth := BoxContentWidth(width)
	valueWidth := 0
	if contentWidth > 0 {
		valueWidth = max(contentWidth-labelWidth-2, 4)
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := boxLabelStyle.Render(padRight(ClampTextWidth(r.Label, labelWidth), labelWidth))
		lines = append(lines, label+"  "+boxValueStyle.Render(ClampTextWidth(r.Value, valueWidth)))
	}
	return TitledBox(title, strings.Join(lines, "\n"), width)
}

// Indent adds left padding to every line of a multi-line string.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
