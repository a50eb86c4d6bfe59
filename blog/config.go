package blog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

func (c *Client) ListWebConfigs(ctx context.Context) (*envelope.Envelope[[]WebConfig], error) {
	return rest.Get[[]WebConfig](ctx, c.api, "/web_config/list", nil)
}

func (c *Client) GetWebConfig(ctx context.Context, id int) (*envelope.Envelope[WebConfig], error) {
	return rest.Get[WebConfig](ctx, c.api, fmt.Sprintf("/web_config/%d", id), nil)
}

func (c *Client) GetWebConfigByName(ctx context.Context, name string) (*envelope.Envelope[WebConfig], error) {
	return rest.Get[WebConfig](ctx, c.api, "/web_config/name/"+url.PathEscape(name), nil)
}

// UpdateWebConfig replaces the JSON value of a site config block.
func (c *Client) UpdateWebConfig(ctx context.Context, id int, value map[string]any) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, fmt.Sprintf("/web_config/json/%d", id), value)
}

func (c *Client) ListPageConfigs(ctx context.Context) (*envelope.Envelope[[]PageConfig], error) {
	return rest.Get[[]PageConfig](ctx, c.api, "/page_config/list", nil)
}

func (c *Client) GetPageConfigByName(ctx context.Context, name string) (*envelope.Envelope[PageConfig], error) {
	return rest.Get[PageConfig](ctx, c.api, "/page_config/name/"+url.PathEscape(name), nil)
}
