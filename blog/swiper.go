package blog

import (
	"context"
	"fmt"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

func (c *Client) ListSwipers(ctx context.Context) (*envelope.Envelope[[]Swiper], error) {
	return rest.Post[[]Swiper](ctx, c.api, "/swiper/list", nil)
}

func (c *Client) PageSwipers(ctx context.Context, page Page) (*envelope.Envelope[Paginate[Swiper]], error) {
	return rest.Post[Paginate[Swiper]](ctx, c.api, "/swiper/paging", nil, rest.WithParams(page.params(DefaultSize)))
}

func (c *Client) CreateSwiper(ctx context.Context, s Swiper) (*envelope.Envelope[string], error) {
	return rest.Post[string](ctx, c.api, "/swiper", s)
}

func (c *Client) UpdateSwiper(ctx context.Context, s Swiper) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, "/swiper", s)
}

func (c *Client) DeleteSwiper(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, fmt.Sprintf("/swiper/%d", id), nil)
}
