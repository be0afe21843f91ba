package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/manifesto/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/manifesto/internal/core/services"
)

func NewDebateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "debate", Short: "Moderate debates"}
	cmd.AddCommand(transition(rootOpts, "archive <debate-id>", "Archive a debate; it stops accepting reactions", "archived",
		func(ctx context.Context, store *sqlstore.Store, id uuid.UUID, opts []services.Option) error {
			return services.NewDebateService(store, nil, opts...).Archive(ctx, id)
		}))
	return cmd
}

func NewPollCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "poll", Short: "Moderate polls"}
	cmd.AddCommand(transition(rootOpts, "close <poll-id>", "Close a poll to further votes", "closed",
		func(ctx context.Context, store *sqlstore.Store, id uuid.UUID, opts []services.Option) error {
			return services.NewPollService(store, nil, opts...).Close(ctx, id)
		}))
	return cmd
}

func NewPetitionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "petition", Short: "Moderate petitions"}
	cmd.AddCommand(transition(rootOpts, "complete <petition-id>", "Mark an active or successful petition as completed", "completed",
		func(ctx context.Context, store *sqlstore.Store, id uuid.UUID, opts []services.Option) error {
			return services.NewPetitionService(store, nil, opts...).Complete(ctx, id)
		}))
	return cmd
}

type transitionFunc func(ctx context.Context, store *sqlstore.Store, id uuid.UUID, opts []services.Option) error

func transition(rootOpts *RootOptions, use, short, done string, apply transitionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("invalid id %q", args[0]), Err: err}
			}

			ctx := cmd.Context()
			store, err := rootOpts.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := apply(ctx, store, id, []services.Option{services.WithLogger(rootOpts.log)}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", done, id)
			return nil
		},
	}
}
