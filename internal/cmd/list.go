package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gravitrone/resale-admin/cli/internal/resource"
	"github.com/gravitrone/resale-admin/cli/internal/ui/components"
)

// ListCmd returns the `resale list` command.
func ListCmd() *cobra.Command {
	var (
		search   string
		filters  []string
		page     int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "Print one page of an admin list",
		Long: "Print one page of an admin list.\n\n" +
			"Lists: orders, leads, pricing, products, categories, super-categories,\n" +
			"series, users, defects.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFilters(filters)
			if err != nil {
				return err
			}
			s, err := LoadSession()
			if err != nil {
				return err
			}
			defer s.Close()

			entry, err := resource.Lookup(s.Client, 0, args[0])
			if err != nil {
				return err
			}
			if pageSize <= 0 {
				pageSize = s.Config.ListPageSize()
			}
			snap, err := entry.Snapshot(cmd.Context(), resource.ListOptions{
				Search:   search,
				Filters:  values,
				Page:     page,
				PageSize: pageSize,
				Logger:   s.Log,
			})
			if err != nil {
				return fmt.Errorf("list %s: %w", entry.Name(), err)
			}
			return writeSnapshot(cmd.OutOrStdout(), snap)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive search term")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "exact filter as key=value (repeatable)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "records per page (default from config)")
	return cmd
}

func parseFilters(raw []string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for _, f := range raw {
		key, value, ok := strings.Cut(f, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q (want key=value)", f)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

func writeSnapshot(w io.Writer, snap resource.Snapshot) error {
	var b strings.Builder
	b.WriteString(snap.Title + "\n")

	if len(snap.Rows) == 0 {
		if snap.Loaded == 0 {
			b.WriteString("no records found\n")
		} else {
			b.WriteString("no records match the search and filters\n")
		}
	} else {
		rows := make([][]string, len(snap.Rows))
		for i, r := range snap.Rows {
			rows[i] = make([]string, len(r))
			for j, cell := range r {
				rows[i][j] = components.SanitizeOneLine(cell)
			}
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(snap.Headers...).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				style := lipgloss.NewStyle().Padding(0, 1)
				if row == table.HeaderRow {
					return style.Bold(true)
				}
				if col < len(snap.Right) && snap.Right[col] {
					style = style.Align(lipgloss.Right)
				}
				return style
			})
		b.WriteString(t.String() + "\n")
	}

	fmt.Fprintf(&b, "%d of %d · page %d/%d\n", snap.Matched, snap.Loaded, snap.Page, snap.Pages)
	if len(snap.Summary) > 0 {
		parts := make([]string, len(snap.Summary))
		for i, f := range snap.Summary {
			parts[i] = f.Label + ": " + f.Value
		}
		b.WriteString(strings.Join(parts, "  ·  ") + "\n")
	}
	if snap.Note != "" {
		b.WriteString(snap.Note + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
