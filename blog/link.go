package blog

import (
	"context"
	"fmt"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

func (c *Client) ListLinks(ctx context.Context, filter LinkFilter) (*envelope.Envelope[[]Link], error) {
	return rest.Post[[]Link](ctx, c.api, "/link/list", filter)
}

func (c *Client) PageLinks(ctx context.Context, page Page, filter LinkFilter) (*envelope.Envelope[Paginate[Link]], error) {
	return rest.Post[Paginate[Link]](ctx, c.api, "/link/paging", filter, rest.WithParams(page.params(DefaultSize)))
}

func (c *Client) LinkTypes(ctx context.Context) (*envelope.Envelope[[]LinkType], error) {
	return rest.Get[[]LinkType](ctx, c.api, "/link/type", nil)
}

func (c *Client) CreateLink(ctx context.Context, link Link) (*envelope.Envelope[string], error) {
	return rest.Post[string](ctx, c.api, "/link", link)
}

func (c *Client) UpdateLink(ctx context.Context, link Link) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, "/link", link)
}

func (c *Client) DeleteLink(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, fmt.Sprintf("/link/%d", id), nil)
}

// AuditLink approves a submitted link.
func (c *Client) AuditLink(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, fmt.Sprintf("/link/audit/%d", id), nil)
}
