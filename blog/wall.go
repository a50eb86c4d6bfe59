package blog

import (
	"context"
	"fmt"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

func (c *Client) ListWalls(ctx context.Context, filter WallFilter) (*envelope.Envelope[[]Wall], error) {
	return rest.Post[[]Wall](ctx, c.api, "/wall/list", filter)
}

func (c *Client) PageWalls(ctx context.Context, page Page, filter WallFilter) (*envelope.Envelope[Paginate[Wall]], error) {
	return rest.Post[Paginate[Wall]](ctx, c.api, "/wall/paging", filter, rest.WithParams(page.params(DefaultSize)))
}

func (c *Client) WallCategories(ctx context.Context) (*envelope.Envelope[[]WallCategory], error) {
	return rest.Get[[]WallCategory](ctx, c.api, "/wall/cate", nil)
}

func (c *Client) CreateWall(ctx context.Context, wall Wall) (*envelope.Envelope[string], error) {
	return rest.Post[string](ctx, c.api, "/wall", wall)
}

func (c *Client) UpdateWall(ctx context.Context, wall Wall) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, "/wall", wall)
}

func (c *Client) DeleteWall(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, fmt.Sprintf("/wall/%d", id), nil)
}

// AuditWall approves a pending wall message.
func (c *Client) AuditWall(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, fmt.Sprintf("/wall/audit/%d", id), nil)
}

// ToggleWallChoice features or unfeatures a wall message.
func (c *Client) ToggleWallChoice(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, fmt.Sprintf("/wall/choice/%d", id), nil)
}
