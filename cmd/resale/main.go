package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/resale-admin/cli/internal/cmd"
	"github.com/gravitrone/resale-admin/cli/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resale",
		Short: "Resale - device marketplace admin console",
		Long:  "Resale admin console: browse orders, leads, pricing, the catalog, and users, and print reports.",
		RunE: func(c *cobra.Command, _ []string) error {
			return runTUI(c.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.ListCmd())
	root.AddCommand(cmd.ReportCmd())
	root.AddCommand(cmd.UploadCmd())
	root.AddCommand(cmd.OrdersCmd())
	root.AddCommand(cmd.CreateCmd())
	root.AddCommand(cmd.UpdateCmd())
	root.AddCommand(cmd.DeleteCmd())
	return root
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(ctx context.Context) error {
	s, err := cmd.LoadSession()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Println("not logged in. run 'resale login' first.")
		}
		return err
	}
	defer s.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	s.Log.Info("starting console", zap.String("base_url", s.Client.BaseURL()))
	app := ui.NewApp(s.Client, s.Config, s.Log)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
