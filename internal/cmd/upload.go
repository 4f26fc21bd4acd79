package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// UploadCmd returns the `resale upload` command.
func UploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload an image and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open image: %w", err)
			}
			defer f.Close()

			s, err := LoadSession()
			if err != nil {
				return err
			}
			defer s.Close()

			url, err := s.Client.UploadImage(cmd.Context(), args[0], f)
			if err != nil {
				return fmt.Errorf("upload: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}
