package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/blogkit/blog"
	"github.com/kbukum/blogkit/httpclient/envelope"
)

func (c *cli) newTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Browse tags",
	}
	var counts bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List all tags",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			if counts {
				return printCounts(ctx, s, s.blog.TagArticleCount)
			}
			env, err := s.blog.ListTags(ctx)
			if err != nil {
				return err
			}
			return s.out.Print(env.Data, func(t *Table) {
				t.Header("id", "name")
				for _, tag := range env.Data {
					t.Row(tag.ID, tag.Name)
				}
			})
		}),
	}
	list.Flags().BoolVar(&counts, "counts", false, "show article counts per tag")
	cmd.AddCommand(list)
	return cmd
}

func (c *cli) newCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cate"},
		Short:   "Browse categories",
	}
	var (
		pattern string
		counts  bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			if counts {
				return printCounts(ctx, s, s.blog.CategoryArticleCount)
			}
			env, err := s.blog.ListCategories(ctx, pattern)
			if err != nil {
				return err
			}
			return s.out.Print(env.Data, func(t *Table) {
				t.Header("id", "name", "mark", "type", "order")
				var walk func(cs []blog.Category, depth int)
				walk = func(cs []blog.Category, depth int) {
					for _, cate := range cs {
						t.Row(cate.ID, strings.Repeat("  ", depth)+cate.Name, cate.Mark, cate.Type, cate.Order)
						walk(cate.Children, depth+1)
					}
				}
				walk(env.Data, 0)
			})
		}),
	}
	list.Flags().StringVar(&pattern, "pattern", blog.PatternRecursion, "listing shape: recursion, list or tree")
	list.Flags().BoolVar(&counts, "counts", false, "show article counts per category")
	cmd.AddCommand(list)
	return cmd
}

func printCounts(ctx context.Context, s *session, fetch func(context.Context) (*envelope.Envelope[[]blog.ArticleCount], error)) error {
	env, err := fetch(ctx)
	if err != nil {
		return err
	}
	return s.out.Print(env.Data, func(t *Table) {
		t.Header("id", "name", "articles")
		for _, n := range env.Data {
			t.Row(n.ID, n.Name, n.Count)
		}
	})
}
