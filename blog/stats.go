package blog

import (
	"context"
	"encoding/json"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

// Statistics fetches a site statistics report. The report shape depends on
// the type and is returned undecoded.
func (c *Client) Statistics(ctx context.Context, q StatisticsQuery) (*envelope.Envelope[json.RawMessage], error) {
	if q.Type == "" {
		q.Type = StatisticsBasic
	}
	return rest.Get[json.RawMessage](ctx, c.api, "/statis", q)
}

func (c *Client) ListRss(ctx context.Context) (*envelope.Envelope[[]Rss], error) {
	return rest.Get[[]Rss](ctx, c.api, "/rss/list", nil)
}

func (c *Client) PageRss(ctx context.Context, page Page) (*envelope.Envelope[Paginate[Rss]], error) {
	return rest.Post[Paginate[Rss]](ctx, c.api, "/rss/paging", nil, rest.WithParams(page.params(DefaultSize)))
}
