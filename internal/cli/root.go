// Package cli implements manifestoctl, the operator tool for the engagement ledger.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/manifesto/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/manifesto/internal/config"
	"go.uber.org/zap"
)

// Exit codes for manifestoctl.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the command ran and found a problem, e.g. audit drift
	ExitCommandError = 2
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// GetExitCode returns ExitCommandError for errors that are not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// RootOptions holds the global flags. Empty values fall back to the environment.
type RootOptions struct {
	Driver      string
	DatabaseURL string
	SQLitePath  string

	log *zap.Logger
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "manifestoctl",
		Short:         "Operate the engagement ledger",
		Long:          "Schema migrations, user seeding, ledger audits and moderation transitions for debates, polls and petitions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.log != nil {
				return nil
			}
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "store driver: postgres or sqlite (default $STORE_DRIVER)")
	cmd.PersistentFlags().StringVar(&opts.DatabaseURL, "database-url", "", "PostgreSQL connection string (default $DATABASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.SQLitePath, "sqlite-path", "", "SQLite database file (default $SQLITE_PATH)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewAuditCommand(opts))
	cmd.AddCommand(NewDebateCommand(opts))
	cmd.AddCommand(NewPollCommand(opts))
	cmd.AddCommand(NewPetitionCommand(opts))

	return cmd
}

// openStore resolves the connection settings through the config loader so the
// CLI and the server read the same environment.
func (o *RootOptions) openStore(ctx context.Context) (*sqlstore.Store, error) {
	var args []string
	if o.Driver != "" {
		args = append(args, "-driver", o.Driver)
	}
	if o.DatabaseURL != "" {
		args = append(args, "-database-url", o.DatabaseURL)
	}
	if o.SQLitePath != "" {
		args = append(args, "-sqlite-path", o.SQLitePath)
	}

	cfg, err := config.Load(args)
	if err != nil {
		return nil, &ExitError{Code: ExitCommandError, Message: "invalid configuration", Err: err}
	}

	store, err := sqlstore.Open(ctx, cfg.StoreDriver, cfg.DSN())
	if err != nil {
		return nil, &ExitError{Code: ExitCommandError, Message: "cannot open store", Err: err}
	}
	return store, nil
}
