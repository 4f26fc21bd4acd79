package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/resale-admin/cli/internal/resource"
)

// DeleteCmd returns the `resale delete` command.
func DeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <resource> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadSession()
			if err != nil {
				return err
			}
			defer s.Close()

			entry, err := resource.Lookup(s.Client, 0, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprintf(out, "delete %s %s? this cannot be undone [y/N]: ", entry.Name(), args[1])
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(out, "aborted")
					return nil
				}
			}

			if err := entry.Delete(cmd.Context(), args[1]); err != nil {
				return err
			}
			fmt.Fprintf(out, "deleted %s %s\n", entry.Name(), args[1])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
