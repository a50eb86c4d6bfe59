package httpclient

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/blogkit/logger"
	"github.com/kbukum/blogkit/observability"
)

// RequestMiddleware inspects or rewrites an outgoing request before it is
// sent. It must return a request; returning nil keeps the input unchanged.
// Request middleware cannot fail.
type RequestMiddleware func(*http.Request) *http.Request

// ResponseMiddleware sees every completed call: err is nil for a 2xx
// response and a transport *Error otherwise (resp may still carry the
// status and body). It returns the pair handed to the next middleware.
type ResponseMiddleware func(resp *Response, err error) (*Response, error)

// Option configures a Client at construction.
type Option func(*options)

type options struct {
	request   []RequestMiddleware
	response  []ResponseMiddleware
	log       *logger.Logger
	tracer    trace.TracerProvider
	metrics   *observability.ClientMetrics
	transport http.RoundTripper
}

// WithRequestMiddleware appends request middleware. Middleware runs in the
// order it was added.
func WithRequestMiddleware(mw ...RequestMiddleware) Option {
	return func(o *options) { o.request = append(o.request, mw...) }
}

// WithResponseMiddleware appends response middleware. Middleware runs in
// the order it was added.
func WithResponseMiddleware(mw ...ResponseMiddleware) Option {
	return func(o *options) { o.response = append(o.response, mw...) }
}

// WithLogger sets the client logger. Defaults to the global logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTracerProvider sets the provider for client spans. Defaults to the
// global OpenTelemetry provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracer = tp }
}

// WithMetrics records per-request metrics on m.
func WithMetrics(m *observability.ClientMetrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTransport replaces the underlying round tripper. TLS and HTTP/2
// settings from Config are ignored when a transport is supplied.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

func chainRequest(mws []RequestMiddleware, req *http.Request) *http.Request {
	for _, mw := range mws {
		if next := mw(req); next != nil {
			req = next
		}
	}
	return req
}

func chainResponse(mws []ResponseMiddleware, resp *Response, err error) (*Response, error) {
	for _, mw := range mws {
		resp, err = mw(resp, err)
	}
	return resp, err
}
