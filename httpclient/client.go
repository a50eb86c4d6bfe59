package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/http2"

	"github.com/kbukum/blogkit/logger"
	"github.com/kbukum/blogkit/observability"
)

const tracerName = "github.com/kbukum/blogkit/httpclient"

// Client sends requests to a single backend and runs them through the
// configured middleware chains. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     Config
	request    []RequestMiddleware
	response   []ResponseMiddleware
	log        *logger.Logger
	tracer     trace.Tracer
	metrics    *observability.ClientMetrics
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("httpclient: invalid config: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.GetGlobalLogger()
	}
	if o.tracer == nil {
		o.tracer = otel.GetTracerProvider()
	}

	transport := o.transport
	if transport == nil {
		t, err := newTransport(cfg)
		if err != nil {
			return nil, err
		}
		transport = t
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config:   cfg,
		request:  o.request,
		response: o.response,
		log:      o.log.WithComponent("httpclient").WithFields(logger.Fields("client", cfg.Name)),
		tracer:   o.tracer.Tracer(tracerName),
		metrics:  o.metrics,
	}, nil
}

func newTransport(cfg Config) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		transport.TLSClientConfig = tlsCfg
	}

	if cfg.DisableHTTP2 {
		transport.ForceAttemptHTTP2 = false
		transport.TLSNextProto = map[string]func(string, *tls.Conn) http.RoundTripper{}
		return transport, nil
	}
	if err := http2.ConfigureTransport(transport); err != nil {
		return nil, fmt.Errorf("httpclient: configure http2: %w", err)
	}
	return transport, nil
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Do executes an HTTP request and returns the complete response. Every
// outcome, including a request that could not be built, passes through the
// response middleware chain. Do never retries.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	resp, err := c.send(ctx, req)
	resp, err = chainResponse(c.response, resp, err)

	status := 0
	if resp != nil {
		status = resp.StatusCode
		span.SetAttributes(semconv.HTTPResponseStatusCode(status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if c.metrics != nil {
		c.metrics.RecordRequest(ctx, c.config.Name, req.Method, status, outcome(err), time.Since(start))
	}
	return resp, err
}

func (c *Client) send(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	httpReq = chainRequest(c.request, httpReq)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		semconv.HTTPRequestMethodKey.String(httpReq.Method),
		semconv.URLFull(httpReq.URL.String()),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	c.log.Debug("sending request", logger.Fields(
		logger.FieldMethod, httpReq.Method,
		logger.FieldURL, httpReq.URL.String(),
		logger.FieldRequestID, httpReq.Header.Get(HeaderRequestID),
	))

	raw, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyNetError(ctx, httpReq, err)
	}
	defer func() { _ = raw.Body.Close() }()

	body, err := io.ReadAll(raw.Body)
	if err != nil {
		return nil, classifyNetError(ctx, httpReq, fmt.Errorf("read response body: %w", err))
	}

	resp := &Response{
		StatusCode: raw.StatusCode,
		Headers:    raw.Header,
		Body:       body,
		Method:     httpReq.Method,
		URL:        httpReq.URL.String(),
		RequestID:  httpReq.Header.Get(HeaderRequestID),
	}
	if statusErr := ClassifyStatus(httpReq, raw.StatusCode, body); statusErr != nil {
		return resp, statusErr
	}
	return resp, nil
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := req.Path
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	query := url.Values{}
	for _, params := range req.Params {
		encoded, err := EncodeQuery(params)
		if err != nil {
			return nil, &Error{Kind: KindEncode, Method: req.Method, URL: target, Err: fmt.Errorf("encode query: %w", err)}
		}
		mergeQuery(query, encoded)
	}
	mergeQuery(query, req.Query)

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		e := &Error{Kind: KindEncode, Method: req.Method, URL: target, Err: fmt.Errorf("encode body: %w", err)}
		return nil, e
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, &Error{Kind: KindEncode, Method: req.Method, URL: target, Err: err}
	}

	if len(query) > 0 {
		q := httpReq.URL.Query()
		mergeQuery(q, query)
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	// Multipart bodies always carry their own boundary.
	if _, ok := req.Body.(*MultipartBody); ok {
		httpReq.Header.Set("Content-Type", contentType)
	} else if body != nil && contentType != "" && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	switch v := body.(type) {
	case nil:
		return nil, "", nil
	case *MultipartBody:
		return v.encode()
	case JSON:
		data, err := json.Marshal(v.Value)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain; charset=utf-8", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// classifyNetError maps a failed round trip onto a transport error kind.
func classifyNetError(ctx context.Context, req *http.Request, err error) *Error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return newError(KindCanceled, req, err)
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return newError(KindTimeout, req, err)
	}
	return newError(KindConnection, req, err)
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if e, ok := AsTransport(err); ok {
		return e.Kind.String()
	}
	return "business"
}
