package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/resale-admin/cli/internal/resource"
)

const payloadHelp = `The payload is a YAML or JSON document whose keys match the API fields,
for example:

  name: iPhone 15
  category: 65f1c0...
  basePrice: 42000
  variants:
    - name: 128GB
      price: 42000

Use -f - to read the payload from stdin.`

// CreateCmd returns the `resale create` command.
func CreateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create <resource> -f <payload>",
		Short: "Create a record from a YAML or JSON payload",
		Long:  "Create a record.\n\n" + payloadHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, file)
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
			label, err := entry.Create(cmd.Context(), payload)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s %s\n", entry.Name(), label)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "payload file, or - for stdin")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// UpdateCmd returns the `resale update` command.
func UpdateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "update <resource> <id> -f <payload>",
		Short: "Replace a record from a YAML or JSON payload",
		Long:  "Replace a record. Fields missing from the payload are cleared.\n\n" + payloadHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, file)
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
			label, err := entry.Update(cmd.Context(), args[1], payload)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s %s\n", entry.Name(), label)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "payload file, or - for stdin")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// readPayload loads a YAML or JSON document and re-encodes it as JSON.
func readPayload(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("payload is empty")
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return out, nil
}
