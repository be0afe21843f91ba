package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/manifesto/internal/core/services"
)

func NewAuditCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Recount every ledger and report drifted aggregates",
		Long: `Recount reactions, ballots and signatures and compare them with the
counters stored on each debate, poll and petition. Exits with status 1
when any aggregate disagrees with its ledger.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := rootOpts.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			drifts, err := services.NewAuditService(store, services.WithLogger(rootOpts.log)).AuditAll(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(drifts) == 0 {
				fmt.Fprintln(out, "no drift")
				return nil
			}
			for _, d := range drifts {
				fmt.Fprintf(out, "%s %s\n  stored: %s\n  ledger: %s\n", d.Kind, d.ID, d.Stored, d.Ledger)
			}
			return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d aggregates drifted from their ledger", len(drifts))}
		},
	}
}
