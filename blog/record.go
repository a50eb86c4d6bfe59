package blog

import (
	"context"
	"fmt"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

func (c *Client) ListRecords(ctx context.Context, filter ListFilter) (*envelope.Envelope[[]Record], error) {
	return rest.Post[[]Record](ctx, c.api, "/record/list", filter)
}

func (c *Client) PageRecords(ctx context.Context, page Page, filter ListFilter) (*envelope.Envelope[Paginate[Record]], error) {
	return rest.Post[Paginate[Record]](ctx, c.api, "/record/paging", filter, rest.WithParams(page.params(DefaultSize)))
}

func (c *Client) CreateRecord(ctx context.Context, record Record) (*envelope.Envelope[string], error) {
	return rest.Post[string](ctx, c.api, "/record", record)
}

func (c *Client) UpdateRecord(ctx context.Context, record Record) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, "/record", record)
}

func (c *Client) DeleteRecord(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, fmt.Sprintf("/record/%d", id), nil)
}
