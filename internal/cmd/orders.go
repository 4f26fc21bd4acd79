package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/resale-admin/cli/internal/api"
	"github.com/gravitrone/resale-admin/cli/internal/listview"
)

// OrdersCmd returns the `resale orders` command group.
func OrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage buy orders",
	}
	cmd.AddCommand(ordersStatusCmd())
	return cmd
}

func ordersStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Move an order to a new status",
		Long:  "Move an order to a new status.\n\nStatuses: " + strings.Join(api.OrderStatuses, ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadSession()
			if err != nil {
				return err
			}
			defer s.Close()

			status := strings.ToLower(strings.TrimSpace(args[1]))
			order, err := s.Client.UpdateOrderStatus(cmd.Context(), args[0], api.OrderStatusInput{Status: status})
			if err != nil {
				return fmt.Errorf("update order %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "order %s is now %s\n",
				listview.Or(order.OrderNumber, args[0]), listview.Or(order.Status, status))
			return nil
		},
	}
}
