package blog

import (
	"context"
	"fmt"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

func (c *Client) ListComments(ctx context.Context, filter CommentFilter) (*envelope.Envelope[[]Comment], error) {
	return rest.Post[[]Comment](ctx, c.api, "/comment/list", filter)
}

func (c *Client) PageComments(ctx context.Context, page Page, filter CommentFilter) (*envelope.Envelope[Paginate[Comment]], error) {
	return rest.Post[Paginate[Comment]](ctx, c.api, "/comment/paging", filter, rest.WithParams(page.params(DefaultSize)))
}

// ArticleComments pages through the comment tree of one article.
func (c *Client) ArticleComments(ctx context.Context, articleID int, page Page) (*envelope.Envelope[Paginate[Comment]], error) {
	return rest.Post[Paginate[Comment]](ctx, c.api, fmt.Sprintf("/comment/article/%d", articleID), nil,
		rest.WithParams(page.params(DefaultSize)))
}

func (c *Client) CreateComment(ctx context.Context, comment Comment) (*envelope.Envelope[string], error) {
	return rest.Post[string](ctx, c.api, "/comment", comment)
}

func (c *Client) UpdateComment(ctx context.Context, comment Comment) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, "/comment", comment)
}

func (c *Client) DeleteComment(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, fmt.Sprintf("/comment/%d", id), nil)
}

// AuditComment approves a pending comment.
func (c *Client) AuditComment(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, fmt.Sprintf("/comment/audit/%d", id), nil)
}
