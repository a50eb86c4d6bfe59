package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kbukum/blogkit/blog"
)

// configView is a site or page config block with its value decoded.
type configView struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func decodeRaw(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	return v, nil
}

func (c *cli) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read site configuration",
	}
	var page bool
	get := &cobra.Command{
		Use:   "get <name>",
		Short: "Show a named site config block",
		Args:  cobra.ExactArgs(1),
		RunE: c.runE(func(ctx context.Context, s *session, args []string) error {
			var view configView
			if page {
				env, err := s.blog.GetPageConfigByName(ctx, args[0])
				if err != nil {
					return err
				}
				view = configView{ID: env.Data.ID, Name: env.Data.Name, Notes: env.Data.Notes}
				if view.Value, err = decodeRaw(env.Data.Value); err != nil {
					return err
				}
			} else {
				env, err := s.blog.GetWebConfigByName(ctx, args[0])
				if err != nil {
					return err
				}
				view = configView{ID: env.Data.ID, Name: env.Data.Name, Notes: env.Data.Notes}
				if view.Value, err = decodeRaw(env.Data.Value); err != nil {
					return err
				}
			}
			return s.out.Print(view, valueTable(view.Value))
		}),
	}
	get.Flags().BoolVar(&page, "page", false, "read a page config instead of a site config")
	cmd.AddCommand(get)
	return cmd
}

// valueTable renders a JSON object as sorted key/value rows. Other shapes
// fall back to JSON.
func valueTable(v any) func(t *Table) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return func(t *Table) {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		t.Header("key", "value")
		for _, k := range keys {
			val := obj[k]
			switch val.(type) {
			case map[string]any, []any:
				b, _ := json.Marshal(val)
				val = truncate(string(b), 60)
			}
			t.Row(k, val)
		}
	}
}

// parseDate accepts any common date notation and returns it in
// blog.DateLayout. Empty input stays empty.
func parseDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := dateparse.ParseLocal(s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.Format(blog.DateLayout), nil
}

func (c *cli) newStatsCommand() *cobra.Command {
	var typ, from, to string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show site statistics",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			q := blog.StatisticsQuery{Type: blog.StatisticsType(typ)}
			var err error
			if q.StartDate, err = parseDate(from); err != nil {
				return err
			}
			if q.EndDate, err = parseDate(to); err != nil {
				return err
			}
			env, err := s.blog.Statistics(ctx, q)
			if err != nil {
				return err
			}
			report, err := decodeRaw(env.Data)
			if err != nil {
				return err
			}
			return s.out.Print(report, valueTable(report))
		}),
	}
	f := cmd.Flags()
	f.StringVar(&typ, "type", string(blog.StatisticsBasic), "report: basic, overview, new-visitor or basic-overview")
	f.StringVar(&from, "from", "", "start date, e.g. 2024-01-01 or \"Jan 2, 2024\"")
	f.StringVar(&to, "to", "", "end date")
	return cmd
}

func (c *cli) newRssCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rss",
		Short: "Browse the aggregated friend feeds",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List feed entries",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			env, err := s.blog.ListRss(ctx)
			if err != nil {
				return err
			}
			return s.out.Print(env.Data, func(t *Table) {
				t.Header("author", "title", "url", "created")
				for _, r := range env.Data {
					t.Row(r.Author, truncate(r.Title, 40), r.URL, r.CreateTime)
				}
			})
		}),
	})
	return cmd
}

// Overview is the site summary printed by `blogctl overview`.
type Overview struct {
	Articles     int       `json:"articles" yaml:"articles"`
	Categories   int       `json:"categories" yaml:"categories"`
	Tags         int       `json:"tags" yaml:"tags"`
	Comments     int       `json:"comments" yaml:"comments"`
	WallMessages int       `json:"wallMessages" yaml:"wallMessages"`
	Links        int       `json:"links" yaml:"links"`
	Took         string    `json:"took" yaml:"took"`
	At           time.Time `json:"at" yaml:"at"`
}

// overviewPage asks paging endpoints for their total only.
var overviewPage = blog.Page{Page: 1, Size: 1}

func (c *cli) newOverviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Count the site's content, querying endpoints concurrently",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			start := time.Now()
			var o Overview
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				env, err := s.blog.ListArticles(ctx, overviewPage, blog.ArticleFilter{})
				if err == nil {
					o.Articles = env.Data.Total
				}
				return err
			})
			g.Go(func() error {
				env, err := s.blog.ListCategories(ctx, blog.PatternList)
				if err == nil {
					o.Categories = len(env.Data)
				}
				return err
			})
			g.Go(func() error {
				env, err := s.blog.ListTags(ctx)
				if err == nil {
					o.Tags = len(env.Data)
				}
				return err
			})
			g.Go(func() error {
				env, err := s.blog.PageComments(ctx, overviewPage, blog.CommentFilter{})
				if err == nil {
					o.Comments = env.Data.Total
				}
				return err
			})
			g.Go(func() error {
				env, err := s.blog.PageWalls(ctx, overviewPage, blog.WallFilter{})
				if err == nil {
					o.WallMessages = env.Data.Total
				}
				return err
			})
			g.Go(func() error {
				env, err := s.blog.PageLinks(ctx, overviewPage, blog.LinkFilter{})
				if err == nil {
					o.Links = env.Data.Total
				}
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}
			o.Took = time.Since(start).Round(time.Millisecond).String()
			o.At = start

			return s.out.Print(o, func(t *Table) {
				t.Header("content", "count")
				t.Row("articles", o.Articles)
				t.Row("categories", o.Categories)
				t.Row("tags", o.Tags)
				t.Row("comments", o.Comments)
				t.Row("wall messages", o.WallMessages)
				t.Row("links", o.Links)
			})
		}),
	}
}
