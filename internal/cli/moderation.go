package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/blogkit/blog"
	"github.com/kbukum/blogkit/httpclient/envelope"
)

// statusFlag registers --status, an optional audit status filter.
func statusFlag(cmd *cobra.Command, status **int) {
	var v int
	cmd.Flags().IntVar(&v, "status", 0, "audit status: 1 approved, 0 pending")
	prev := cmd.PreRun
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("status") {
			*status = blog.Int(v)
		}
		if prev != nil {
			prev(cmd, args)
		}
	}
}

// newIDActionCommand builds "<use> <id>" commands that call one id based
// moderation endpoint.
func (c *cli) newIDActionCommand(use, short, done string, action func(s *session, ctx context.Context, id int) (*envelope.Envelope[string], error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: c.runE(func(ctx context.Context, s *session, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			env, err := action(s, ctx, id)
			if err != nil {
				return err
			}
			return s.out.Done(env, done, id)
		}),
	}
}

func (c *cli) newCommentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comments",
		Aliases: []string{"comment"},
		Short:   "Moderate comments",
	}

	var (
		page   blog.Page
		filter blog.CommentFilter
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List comments",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			env, err := s.blog.PageComments(ctx, page, filter)
			if err != nil {
				return err
			}
			p := env.Data
			return s.out.Print(p, func(t *Table) {
				t.Header("id", "name", "article", "content", "approved", "created")
				for _, cm := range p.Result {
					t.Row(cm.ID, cm.Name, truncate(cm.ArticleTitle, 24), truncate(cm.Content, 40), yesNo(cm.AuditStatus), cm.CreateTime)
				}
				pageFooter(t, p.Page, p.Pages, p.Total)
			})
		}),
	}
	pageFlags(list, &page)
	list.Flags().StringVar(&filter.Key, "key", "", "keyword")
	list.Flags().StringVar(&filter.Content, "content", "", "content keyword")
	statusFlag(list, &filter.Status)

	cmd.AddCommand(list,
		c.newIDActionCommand("audit", "Approve a comment", "Approved comment %d",
			func(s *session, ctx context.Context, id int) (*envelope.Envelope[string], error) {
				return s.blog.AuditComment(ctx, id)
			}),
	)
	return cmd
}

func (c *cli) newWallsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "walls",
		Aliases: []string{"wall"},
		Short:   "Moderate message wall entries",
	}

	var (
		page   blog.Page
		filter blog.WallFilter
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List wall messages",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			env, err := s.blog.PageWalls(ctx, page, filter)
			if err != nil {
				return err
			}
			p := env.Data
			return s.out.Print(p, func(t *Table) {
				t.Header("id", "name", "category", "content", "approved", "choice", "created")
				for _, w := range p.Result {
					cate := ""
					if w.Cate != nil {
						cate = w.Cate.Name
					}
					t.Row(w.ID, w.Name, cate, truncate(w.Content, 40), yesNo(w.AuditStatus), yesNo(w.IsChoice), w.CreateTime)
				}
				pageFooter(t, p.Page, p.Pages, p.Total)
			})
		}),
	}
	pageFlags(list, &page)
	list.Flags().StringVar(&filter.Key, "key", "", "keyword")
	list.Flags().IntVar(&filter.CateID, "cate", 0, "wall category id")
	statusFlag(list, &filter.Status)

	cmd.AddCommand(list,
		c.newIDActionCommand("audit", "Approve a wall message", "Approved wall message %d",
			func(s *session, ctx context.Context, id int) (*envelope.Envelope[string], error) {
				return s.blog.AuditWall(ctx, id)
			}),
		c.newIDActionCommand("choice", "Toggle the featured flag of a wall message", "Toggled featured flag of wall message %d",
			func(s *session, ctx context.Context, id int) (*envelope.Envelope[string], error) {
				return s.blog.ToggleWallChoice(ctx, id)
			}),
	)
	return cmd
}

func (c *cli) newLinksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "links",
		Aliases: []string{"link"},
		Short:   "Moderate friend links",
	}

	var (
		page   blog.Page
		filter blog.LinkFilter
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List friend links",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			env, err := s.blog.PageLinks(ctx, page, filter)
			if err != nil {
				return err
			}
			p := env.Data
			return s.out.Print(p, func(t *Table) {
				t.Header("id", "title", "url", "type", "approved")
				for _, l := range p.Result {
					typ := ""
					if l.Type != nil {
						typ = l.Type.Name
					}
					t.Row(l.ID, truncate(l.Title, 32), l.URL, typ, yesNo(l.AuditStatus))
				}
				pageFooter(t, p.Page, p.Pages, p.Total)
			})
		}),
	}
	pageFlags(list, &page)
	list.Flags().StringVar(&filter.Key, "key", "", "keyword")
	statusFlag(list, &filter.Status)

	cmd.AddCommand(list,
		c.newIDActionCommand("audit", "Approve a friend link", "Approved link %d",
			func(s *session, ctx context.Context, id int) (*envelope.Envelope[string], error) {
				return s.blog.AuditLink(ctx, id)
			}),
	)
	return cmd
}
