package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/blogkit/blog"
	"github.com/kbukum/blogkit/httpclient/envelope"
)

func (c *cli) newArticlesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "articles",
		Aliases: []string{"article"},
		Short:   "Browse and manage articles",
	}
	cmd.AddCommand(
		c.newArticlesListCommand(),
		c.newArticlesGetCommand(),
		c.newArticlesDeleteCommand(),
		c.newArticlesBatchDeleteCommand(),
		c.newArticlesPickCommand("random", "Show random articles", (*blog.Client).RandomArticles),
		c.newArticlesPickCommand("hot", "Show the most viewed articles", (*blog.Client).HotArticles),
	)
	return cmd
}

func (c *cli) newArticlesListCommand() *cobra.Command {
	var (
		page    blog.Page
		filter  blog.ArticleFilter
		draft   bool
		deleted bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles, newest first",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			env, err := s.blog.ListArticles(ctx, page, filter)
			if err != nil {
				return err
			}
			p := env.Data
			return s.out.Print(p, func(t *Table) {
				t.Header("id", "title", "categories", "views", "comments", "created")
				for _, a := range p.Result {
					t.Row(a.ID, truncate(a.Title, 48), categoryNames(a.CateList), a.View, a.Comment, a.CreateTime)
				}
				pageFooter(t, p.Page, p.Pages, p.Total)
			})
		}),
	}
	pageFlags(cmd, &page)
	f := cmd.Flags()
	f.StringVar(&filter.Key, "key", "", "title keyword")
	f.IntVar(&filter.CateID, "cate", 0, "category id")
	f.IntVar(&filter.TagID, "tag", 0, "tag id")
	f.BoolVar(&draft, "draft", false, "list drafts only")
	f.BoolVar(&deleted, "deleted", false, "list the recycle bin")
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		if cmd.Flags().Changed("draft") {
			filter.IsDraft = blog.Int(boolInt(draft))
		}
		if cmd.Flags().Changed("deleted") {
			filter.IsDel = blog.Int(boolInt(deleted))
		}
	}
	return cmd
}

func (c *cli) newArticlesGetCommand() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one article",
		Args:  cobra.ExactArgs(1),
		RunE: c.runE(func(ctx context.Context, s *session, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			env, err := s.blog.GetArticle(ctx, id, password)
			if err != nil {
				return err
			}
			a := env.Data
			return s.out.Print(a, func(t *Table) {
				t.KV("ID", a.ID, "Title", a.Title, "Description", a.Description,
					"Categories", categoryNames(a.CateList), "Tags", tagNames(a.TagList),
					"Views", a.View, "Comments", a.Comment, "Created", a.CreateTime)
				if a.Prev != nil {
					t.KV("Previous", fmt.Sprintf("%d %s", a.Prev.ID, a.Prev.Title))
				}
				if a.Next != nil {
					t.KV("Next", fmt.Sprintf("%d %s", a.Next.ID, a.Next.Title))
				}
			})
		}),
	}
	cmd.Flags().StringVar(&password, "password", "", "password of an encrypted article")
	return cmd
}

func (c *cli) newArticlesDeleteCommand() *cobra.Command {
	var permanent bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Move an article to the recycle bin, or delete it for good",
		Args:  cobra.ExactArgs(1),
		RunE: c.runE(func(ctx context.Context, s *session, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			env, err := s.blog.DeleteArticle(ctx, id, boolInt(permanent))
			if err != nil {
				return err
			}
			if permanent {
				return s.out.Done(env, "Deleted article %d", id)
			}
			return s.out.Done(env, "Moved article %d to the recycle bin", id)
		}),
	}
	cmd.Flags().BoolVar(&permanent, "permanent", false, "delete for good instead of moving to the recycle bin")
	return cmd
}

func (c *cli) newArticlesBatchDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch-delete <id>...",
		Short: "Delete several articles in one request",
		Args:  cobra.MinimumNArgs(1),
		RunE: c.runE(func(ctx context.Context, s *session, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			env, err := s.blog.BatchDeleteArticles(ctx, ids)
			if err != nil {
				return err
			}
			return s.out.Done(env, "Deleted %d articles", len(ids))
		}),
	}
}

type articlePicker func(c *blog.Client, ctx context.Context, n int) (*envelope.Envelope[[]blog.Article], error)

func (c *cli) newArticlesPickCommand(use, short string, pick articlePicker) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			env, err := pick(s.blog, ctx, count)
			if err != nil {
				return err
			}
			return s.out.Print(env.Data, func(t *Table) {
				t.Header("id", "title", "views", "comments")
				for _, a := range env.Data {
					t.Row(a.ID, truncate(a.Title, 48), a.View, a.Comment)
				}
			})
		}),
	}
	cmd.Flags().IntVarP(&count, "count", "n", blog.DefaultCount, "number of articles")
	return cmd
}

func categoryNames(cs []blog.Category) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

func tagNames(ts []blog.Tag) string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
