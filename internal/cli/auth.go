package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/blogkit/blog"
	"github.com/kbukum/blogkit/credential"
)

func (c *cli) newLoginCommand() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			env, err := s.blog.Login(ctx, username, password)
			if err != nil {
				return err
			}
			user := env.Data.User
			if user.Username == "" {
				user.Username = username
			}
			return s.out.Done(user, "Logged in as %s", user.Username)
		}),
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (required)")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

func (c *cli) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			if err := s.blog.Logout(); err != nil {
				return err
			}
			return s.out.Done(map[string]bool{"loggedOut": true}, "Logged out")
		}),
	}
}

type whoami struct {
	blog.User `yaml:",inline"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
}

func (c *cli) newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in author",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			token, err := s.tokens.RequireToken()
			if errors.Is(err, credential.ErrNoToken) {
				return errors.New("not logged in, run `blogctl login`")
			}
			if err != nil {
				return err
			}
			env, err := s.blog.AuthorInfo(ctx)
			if err != nil {
				return err
			}

			out := whoami{User: env.Data}
			if exp, ok := credential.Expiry(token); ok {
				out.ExpiresAt = &exp
			}
			return s.out.Print(out, func(t *Table) {
				t.KV("ID", out.ID, "Name", out.Name, "Username", out.Username, "Email", out.Email)
				if out.ExpiresAt != nil {
					t.KV("Expires", out.ExpiresAt.Local().Format(time.RFC3339))
				}
			})
		}),
	}
}
