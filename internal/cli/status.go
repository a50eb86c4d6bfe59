package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/blogkit/bootstrap"
	"github.com/kbukum/blogkit/component"
	"github.com/kbukum/blogkit/credential"
	"github.com/kbukum/blogkit/version"
)

type statusReport struct {
	Version    string                      `json:"version" yaml:"version"`
	BaseURL    string                      `json:"baseUrl" yaml:"baseUrl"`
	LoggedIn   bool                        `json:"loggedIn" yaml:"loggedIn"`
	Components []bootstrap.ComponentStatus `json:"components" yaml:"components"`
}

func (c *cli) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the client's components and login state",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			token, err := s.tokens.Token()
			if err != nil {
				return err
			}
			r := statusReport{
				Version:    version.Get().Short(),
				BaseURL:    s.cfg.API.BaseURL,
				LoggedIn:   token != "",
				Components: s.app.Status(ctx),
			}
			if err := s.out.Print(r, func(t *Table) {
				t.Header("component", "type", "status", "details")
				for _, cs := range r.Components {
					details := cs.Details
					if cs.Message != "" {
						details += " (" + cs.Message + ")"
					}
					t.Row(cs.Name, cs.Type, cs.Status, details)
				}
			}); err != nil {
				return err
			}
			if !r.LoggedIn {
				s.out.Warnf("\nNot logged in.")
			} else if exp, ok := credential.Expiry(token); ok {
				s.out.Notef("\nLogged in, token expires %s", exp.Local().Format("2006-01-02 15:04"))
			}
			for _, cs := range r.Components {
				if cs.Status == component.StatusUnhealthy {
					s.out.Warnf("%s is unhealthy", cs.Name)
				}
			}
			return nil
		}),
	}
}

func (c *cli) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the blogctl version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			out := c.printer()
			if !out.Structured() {
				_, err := cmd.OutOrStdout().Write([]byte(info.String() + "\n"))
				return err
			}
			return out.Print(info, nil)
		},
	}
}
