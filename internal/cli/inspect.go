package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewInspectCommand creates the "inspect" subcommand: complete a
// presentation and print its structure report.
func NewInspectCommand(opts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Complete a presentation and print its structure report",
		RunE: func(cmd *cobra.Command, args []string) error {
			grp, err := loadAndBuild(file)
			if err != nil {
				return err
			}

			report := grp.Report()

			switch opts.Format {
			case "json":
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), report.String())
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "presentation file (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
