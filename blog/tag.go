package blog

import (
	"context"
	"fmt"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

func (c *Client) ListTags(ctx context.Context) (*envelope.Envelope[[]Tag], error) {
	return rest.Post[[]Tag](ctx, c.api, "/tag/list", nil)
}

func (c *Client) PageTags(ctx context.Context, page Page) (*envelope.Envelope[Paginate[Tag]], error) {
	return rest.Post[Paginate[Tag]](ctx, c.api, "/tag/paging", nil, rest.WithParams(page.params(DefaultSize)))
}

func (c *Client) GetTag(ctx context.Context, id int) (*envelope.Envelope[Tag], error) {
	return rest.Get[Tag](ctx, c.api, fmt.Sprintf("/tag/%d", id), nil)
}

func (c *Client) CreateTag(ctx context.Context, tag Tag) (*envelope.Envelope[string], error) {
	return rest.Post[string](ctx, c.api, "/tag", tag)
}

func (c *Client) UpdateTag(ctx context.Context, tag Tag) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, "/tag", tag)
}

func (c *Client) DeleteTag(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, fmt.Sprintf("/tag/%d", id), nil)
}

// TagArticleCount returns the number of articles carrying each tag.
func (c *Client) TagArticleCount(ctx context.Context) (*envelope.Envelope[[]ArticleCount], error) {
	return rest.Get[[]ArticleCount](ctx, c.api, "/tag/article/count", nil)
}
