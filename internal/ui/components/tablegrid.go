package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn is one column of a record grid. Width is the preferred width
// in cells; Align positions the text inside it.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

const gridLeftOffset = 2

var (
	gridLineStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	gridHeaderStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Bold(true)

	gridActiveRowStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorRowActive).
				Bold(true)

	gridActiveSepStyle = lipgloss.NewStyle().
				Foreground(colorBorder).
				Background(colorRowActive)
)

// TableGrid renders rows under a header, separated by vertical rules, and
// highlights the row at index active (-1 for none). Every line is exactly
// tableWidth cells wide.
func TableGrid(columns []TableColumn, rows [][]string, tableWidth int, active int) string {
	if tableWidth <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", tableWidth)
	}

	border := lipgloss.RoundedBorder()
	cols := fitColumns(columns, tableWidth)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}

	out := make([]string, 0, len(rows)+2)
	out = append(out, gridRow(cols, headers, border.Left, tableWidth, gridHeaderStyle, gridLineStyle))
	out = append(out, gridRule(cols, border.Middle, border.Top, tableWidth))
	for i, row := range rows {
		cell, sep := lipgloss.NewStyle(), gridLineStyle
		if i == active {
			cell, sep = gridActiveRowStyle, gridActiveSepStyle
		}
		out = append(out, gridRow(cols, row, border.Left, tableWidth, cell, sep))
	}
	return strings.Join(out, "\n")
}

// fitColumns scales preferred widths so the columns and their separators
// fill the available width. Shrinking never takes a column below 3 cells.
func fitColumns(columns []TableColumn, tableWidth int) []TableColumn {
	fitted := make([]TableColumn, len(columns))
	copy(fitted, columns)

	available := tableWidth - gridLeftOffset - (len(fitted) - 1)
	if available < len(fitted) {
		available = len(fitted)
	}

	preferred := 0
	for i := range fitted {
		if fitted[i].Width < 3 {
			fitted[i].Width = 3
		}
		preferred += fitted[i].Width
	}

	used := 0
	for i := range fitted {
		w := fitted[i].Width * available / preferred
		if w < 1 {
			w = 1
		}
		fitted[i].Width = w
		used += w
	}
	last := len(fitted) - 1
	fitted[last].Width += available - used
	if fitted[last].Width < 1 {
		fitted[last].Width = 1
	}
	return fitted
}

func gridRow(columns []TableColumn, cells []string, sep string, tableWidth int, cellStyle, sepStyle lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridLeftOffset))
	for i, col := range columns {
		if i > 0 {
			b.WriteString(sepStyle.Inline(true).Render(sep))
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		b.WriteString(cellStyle.Inline(true).Render(gridCell(text, col.Width, col.Align)))
	}
	return padRight(b.String(), tableWidth)
}

func gridRule(columns []TableColumn, cross, horiz string, tableWidth int) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = strings.Repeat(horiz, col.Width)
	}
	line := strings.Repeat(" ", gridLeftOffset) + strings.Join(parts, cross)
	return gridLineStyle.Inline(true).Render(padRight(line, tableWidth))
}

func gridCell(text string, width int, align lipgloss.Position) string {
	clamped := ClampTextWidth(text, width)
	pad := width - lipgloss.Width(clamped)
	if pad <= 0 {
		return clamped
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + clamped + strings.Repeat(" ", pad-left)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}
