package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gravitrone/resale-admin/cli/internal/api"
	"github.com/gravitrone/resale-admin/cli/internal/config"
)

// RunInteractiveLogin prompts for email and password, calls the login
// endpoint, and saves the session into the existing config. The API root is
// baseURL, then RESALE_BASE_URL, then the saved one, then the default.
func RunInteractiveLogin(ctx context.Context, in io.Reader, out io.Writer, baseURL string) error {
	cfg, err := config.Stored()
	if err != nil {
		return err
	}
	env, err := config.Env()
	if err != nil {
		return err
	}
	root := firstNonEmpty(baseURL, env.BaseURL, cfg.BaseURL, api.DefaultBaseURL)

	reader := bufio.NewReader(in)

	fmt.Fprint(out, "email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}

	fmt.Fprint(out, "password: ")
	password, err := readPassword(in, reader, out)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	client := api.NewClient(root, api.Credentials{})
	resp, err := client.Login(ctx, api.LoginInput{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("login failed: %s", api.UserMessage(err))
	}
	if resp.Token == "" {
		return fmt.Errorf("login failed: server returned no token")
	}

	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.Token = resp.Token
	cfg.Email = email
	cfg.UserName = resp.User.Name
	cfg.Role = resp.User.Role
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	who := resp.User.Name
	if who == "" {
		who = email
	}
	fmt.Fprintf(out, "logged in as %s\n", who)
	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// readPassword reads without echo when in is a terminal and falls back to a
// plain line otherwise.
func readPassword(in io.Reader, reader *bufio.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		return string(b), err
	}
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// LoginCmd returns the `resale login` command.
func LoginCmd() *cobra.Command {
	var baseURL string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the marketplace backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunInteractiveLogin(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), baseURL)
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "", "API root, e.g. https://api.example.com/api")
	return cmd
}
