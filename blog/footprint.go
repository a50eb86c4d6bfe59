package blog

import (
	"context"
	"fmt"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

func (c *Client) ListFootprints(ctx context.Context, filter ListFilter) (*envelope.Envelope[[]Footprint], error) {
	return rest.Post[[]Footprint](ctx, c.api, "/footprint/list", filter)
}

func (c *Client) CreateFootprint(ctx context.Context, fp Footprint) (*envelope.Envelope[string], error) {
	return rest.Post[string](ctx, c.api, "/footprint", fp)
}

func (c *Client) UpdateFootprint(ctx context.Context, fp Footprint) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, "/footprint", fp)
}

func (c *Client) DeleteFootprint(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, fmt.Sprintf("/footprint/%d", id), nil)
}
