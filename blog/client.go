package blog

import (
	"fmt"

	"github.com/kbukum/blogkit/credential"
	"github.com/kbukum/blogkit/httpclient"
	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
	"github.com/kbukum/blogkit/logger"
)

// Endpoint defaults.
const (
	DefaultPage      = 1
	DefaultSize      = 10
	DefaultFileSize  = 20
	DefaultCount     = 5
	PatternRecursion = "recursion"
	PatternList      = "list"
	PatternTree      = "tree"
)

// Client calls the blog backend.
type Client struct {
	api    rest.Doer
	tokens *credential.Provider
	log    *logger.Logger
}

// New builds a transport client for cfg and wraps it. Outgoing requests get
// a request id and, when tokens holds one, a bearer token; responses are
// checked against the envelope. A nil tokens keeps the token in memory.
func New(cfg httpclient.Config, tokens *credential.Provider, log *logger.Logger, opts ...httpclient.Option) (*Client, error) {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	if tokens == nil {
		tokens = credential.NewProvider(credential.NewMemoryStore(), log)
	}
	cfg.ApplyDefaults()

	api, err := httpclient.New(cfg, append(Options(tokens, log), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("blog: %w", err)
	}
	return NewWithDoer(api, tokens, log), nil
}

// Options returns the transport options New applies: logging, a request
// id and bearer token on every request, and envelope checking on every
// response. Use them to build the transport elsewhere, for example through
// httpclient.NewComponent, and wrap it with NewWithDoer.
func Options(tokens httpclient.TokenSource, log *logger.Logger) []httpclient.Option {
	return []httpclient.Option{
		httpclient.WithLogger(log),
		httpclient.WithRequestMiddleware(httpclient.RequestID(), httpclient.BearerAuth(tokens)),
		httpclient.WithResponseMiddleware(envelope.Middleware(log)),
	}
}

// NewWithDoer wraps an already configured transport. The caller is
// responsible for its middleware chain.
func NewWithDoer(api rest.Doer, tokens *credential.Provider, log *logger.Logger) *Client {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	if tokens == nil {
		tokens = credential.NewProvider(credential.NewMemoryStore(), log)
	}
	return &Client{api: api, tokens: tokens, log: log.WithComponent("blog")}
}

// Tokens returns the credential provider used for bearer auth.
func (c *Client) Tokens() *credential.Provider { return c.tokens }

// Page selects a 1-based page. Zero fields take the endpoint default.
type Page struct {
	Page int
	Size int
}

func (p Page) params(defaultSize int) map[string]any {
	page, size := p.Page, p.Size
	if page <= 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = defaultSize
	}
	return map[string]any{"page": page, "size": size}
}

func count(n int) map[string]any {
	if n <= 0 {
		n = DefaultCount
	}
	return map[string]any{"count": n}
}

// optional returns nil for an empty string so the query parameter is
// left out.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
