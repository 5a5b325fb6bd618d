package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VosDeMens/Group-Theory-Sandbox/group"
	"github.com/VosDeMens/Group-Theory-Sandbox/notation"
)

// queryResult is one answered word query, in human notation.
type queryResult struct {
	Word   string `json:"word"`
	Result string `json:"result"`
}

// NewReduceCommand creates the "reduce" subcommand: print the
// canonical form of each argument word.
func NewReduceCommand(opts *RootOptions) *cobra.Command {
	return newQueryCommand(opts, "reduce", "Print the canonical form of each word",
		func(grp *group.Group, word string) (string, error) {
			return grp.CanonicalForm(word)
		})
}

// NewInverseCommand creates the "inverse" subcommand: print the
// canonical inverse of each argument word.
func NewInverseCommand(opts *RootOptions) *cobra.Command {
	return newQueryCommand(opts, "inverse", "Print the canonical inverse of each word",
		func(grp *group.Group, word string) (string, error) {
			return grp.Inverse(word)
		})
}

// newQueryCommand builds a per-word query command; reduce and inverse
// differ only in the group method they call.
func newQueryCommand(
	opts *RootOptions,
	use, short string,
	query func(*group.Group, string) (string, error),
) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   use + " WORD...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grp, err := loadAndBuild(file)
			if err != nil {
				return err
			}

			results := make([]queryResult, 0, len(args))
			for _, arg := range args {
				plain, err := query(grp, arg)
				if err != nil {
					return fmt.Errorf("%s %q: %w", use, arg, err)
				}
				results = append(results, queryResult{Word: arg, Result: notation.Compress(plain)})
			}

			switch opts.Format {
			case "json":
				data, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return fmt.Errorf("encode results: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", r.Word, r.Result)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "presentation file (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
