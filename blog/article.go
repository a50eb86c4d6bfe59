package blog

import (
	"context"
	"fmt"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

// ListArticles pages through articles matching filter.
func (c *Client) ListArticles(ctx context.Context, page Page, filter ArticleFilter) (*envelope.Envelope[Paginate[Article]], error) {
	return rest.Post[Paginate[Article]](ctx, c.api, "/article/paging", filter, rest.WithParams(page.params(DefaultSize)))
}

// GetArticle fetches one article. password unlocks encrypted articles and
// is omitted when empty.
func (c *Client) GetArticle(ctx context.Context, id int, password string) (*envelope.Envelope[Article], error) {
	return rest.Get[Article](ctx, c.api, fmt.Sprintf("/article/%d", id), map[string]any{"password": optional(password)})
}

func (c *Client) CreateArticle(ctx context.Context, article Article) (*envelope.Envelope[string], error) {
	return rest.Post[string](ctx, c.api, "/article", article)
}

func (c *Client) UpdateArticle(ctx context.Context, article Article) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, "/article", article)
}

// DeleteArticle deletes an article. isDel 0 moves it to the recycle bin;
// 1 removes it for good.
func (c *Client) DeleteArticle(ctx context.Context, id, isDel int) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, fmt.Sprintf("/article/%d/%d", id, isDel), nil)
}

func (c *Client) BatchDeleteArticles(ctx context.Context, ids []int) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, "/article/batch", ids)
}

// RandomArticles returns n random articles (default 5).
func (c *Client) RandomArticles(ctx context.Context, n int) (*envelope.Envelope[[]Article], error) {
	return rest.Get[[]Article](ctx, c.api, "/article/random", count(n))
}

// HotArticles returns the n most viewed articles (default 5).
func (c *Client) HotArticles(ctx context.Context, n int) (*envelope.Envelope[[]Article], error) {
	return rest.Get[[]Article](ctx, c.api, "/article/hot", count(n))
}

func (c *Client) ArticlesByCategory(ctx context.Context, cateID int, page Page) (*envelope.Envelope[Paginate[Article]], error) {
	return rest.Get[Paginate[Article]](ctx, c.api, fmt.Sprintf("/article/cate/%d", cateID), page.params(DefaultSize))
}

func (c *Client) ArticlesByTag(ctx context.Context, tagID int, page Page) (*envelope.Envelope[Paginate[Article]], error) {
	return rest.Get[Paginate[Article]](ctx, c.api, fmt.Sprintf("/article/tag/%d", tagID), page.params(DefaultSize))
}

// RecordArticleView bumps the view counter of an article.
func (c *Client) RecordArticleView(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Get[string](ctx, c.api, fmt.Sprintf("/article/view/%d", id), nil)
}
