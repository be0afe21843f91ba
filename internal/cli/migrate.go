package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long:  "Apply the embedded schema migrations for the configured driver. With --down, revert the latest one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := rootOpts.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if down {
				version, err := store.Rollback(ctx)
				if err != nil {
					return err
				}
				if version == "" {
					fmt.Fprintln(out, "nothing to roll back")
					return nil
				}
				rootOpts.log.Info("migration reverted", zap.String("version", version))
				fmt.Fprintf(out, "rolled back %s\n", version)
				return nil
			}

			applied, err := store.Migrate(ctx)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(out, "schema is up to date")
				return nil
			}
			for _, version := range applied {
				rootOpts.log.Info("migration applied", zap.String("version", version))
				fmt.Fprintf(out, "applied %s\n", version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "revert the most recent migration")
	return cmd
}
