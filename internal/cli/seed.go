package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"github.com/vncsmyrnk/manifesto/internal/core/services"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout accepted by seed:
//
//	users:
//	  - name: Ana Souza
//	    email: ana@example.org
//	    avatar_url: https://example.org/ana.png
//
// plus the optional departments, leaders, projects and parliament sections
// described on governmentSeed.
type seedFile struct {
	Users          []seedUser `yaml:"users"`
	governmentSeed `yaml:",inline"`
}

type seedUser struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Email     string `yaml:"email"`
	AvatarURL string `yaml:"avatar_url"`
}

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Upsert users and government records from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, gov, err := readSeed(args[0])
			if err != nil {
				return &ExitError{Code: ExitCommandError, Message: "invalid seed file", Err: err}
			}

			ctx := cmd.Context()
			store, err := rootOpts.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			opts := []services.Option{services.WithLogger(rootOpts.log)}
			n, err := services.NewUserService(store, opts...).Import(ctx, users)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d users\n", n)

			if len(gov.Departments)+len(gov.Leaders)+len(gov.Projects)+len(gov.Parliament) == 0 {
				return nil
			}
			if err := services.NewGovernmentService(store, opts...).Import(ctx, gov); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d departments, %d leaders, %d projects, %d parliament items\n",
				len(gov.Departments), len(gov.Leaders), len(gov.Projects), len(gov.Parliament))
			return nil
		},
	}
}

func readSeed(path string) ([]*domain.User, ports.GovernmentRecords, error) {
	var gov ports.GovernmentRecords
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, gov, err
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, gov, err
	}

	users := make([]*domain.User, 0, len(file.Users))
	for i, u := range file.Users {
		user := &domain.User{Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL}
		if u.ID != "" {
			if user.ID, err = uuid.Parse(u.ID); err != nil {
				return nil, gov, fmt.Errorf("user %d: invalid id %q", i+1, u.ID)
			}
		}
		users = append(users, user)
	}
	return users, file.records(), nil
}
