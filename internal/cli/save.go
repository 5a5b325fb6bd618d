package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VosDeMens/Group-Theory-Sandbox/internal/store"
	"github.com/VosDeMens/Group-Theory-Sandbox/notation"
)

// NewSaveCommand creates the "save" subcommand: complete a
// presentation and cache the result in a SQLite database.
func NewSaveCommand(_ *RootOptions) *cobra.Command {
	var file, dbPath string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Complete a presentation and cache it in a database",
		RunE: func(cmd *cobra.Command, args []string) error {
			grp, err := loadAndBuild(file)
			if err != nil {
				return err
			}

			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if err = st.Save(grp); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d elements)\n", grp.Name(), grp.SinkCount())

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "presentation file (YAML)")
	cmd.Flags().StringVar(&dbPath, "db", "groups.db", "database file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// NewListCommand creates the "list" subcommand: print cached group
// names in ascending order.
func NewListCommand(_ *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.List()
			if err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "groups.db", "database file")

	return cmd
}

// NewShowCommand creates the "show" subcommand: print a cached
// group's snapshot without recompleting it.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a cached group's snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			snap, err := st.Load(args[0])
			if err != nil {
				return err
			}

			switch opts.Format {
			case "json":
				data, err := json.MarshalIndent(snap, "", "  ")
				if err != nil {
					return fmt.Errorf("encode snapshot: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Group with name: %s\n\n", snap.Name)
				fmt.Fprintln(cmd.OutOrStdout(), "Sinks:")
				sinks := make([]string, len(snap.Sinks))
				for i, s := range snap.Sinks {
					sinks[i] = notation.Compress(s)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%v\n\n", sinks)
				fmt.Fprintln(cmd.OutOrStdout(), "Prime reductibles:")
				for _, r := range snap.Rules {
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", notation.Compress(r.Left), notation.Compress(r.Right))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "groups.db", "database file")

	return cmd
}
