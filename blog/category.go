package blog

import (
	"context"
	"fmt"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

// ListCategories lists categories as a tree ("recursion", the default) or
// a flat list ("list").
func (c *Client) ListCategories(ctx context.Context, pattern string) (*envelope.Envelope[[]Category], error) {
	if pattern == "" {
		pattern = PatternRecursion
	}
	return rest.Post[[]Category](ctx, c.api, "/cate/list", nil, rest.WithParams(map[string]any{"pattern": pattern}))
}

func (c *Client) PageCategories(ctx context.Context, page Page) (*envelope.Envelope[Paginate[Category]], error) {
	return rest.Post[Paginate[Category]](ctx, c.api, "/cate/paging", nil, rest.WithParams(page.params(DefaultSize)))
}

func (c *Client) GetCategory(ctx context.Context, id int) (*envelope.Envelope[Category], error) {
	return rest.Get[Category](ctx, c.api, fmt.Sprintf("/cate/%d", id), nil)
}

func (c *Client) CreateCategory(ctx context.Context, cate Category) (*envelope.Envelope[string], error) {
	return rest.Post[string](ctx, c.api, "/cate", cate)
}

func (c *Client) UpdateCategory(ctx context.Context, cate Category) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, "/cate", cate)
}

func (c *Client) DeleteCategory(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, fmt.Sprintf("/cate/%d", id), nil)
}

// CategoryArticleCount returns the number of articles in each category.
func (c *Client) CategoryArticleCount(ctx context.Context) (*envelope.Envelope[[]ArticleCount], error) {
	return rest.Get[[]ArticleCount](ctx, c.api, "/cate/article/count", nil)
}
