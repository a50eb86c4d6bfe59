package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kbukum/blogkit/httpclient"
	"github.com/kbukum/blogkit/httpclient/envelope"
)

// Doer sends a request. *httpclient.Client implements it.
type Doer interface {
	Do(ctx context.Context, req httpclient.Request) (*httpclient.Response, error)
}

var _ Doer = (*httpclient.Client)(nil)

// Option configures a single call.
type Option func(*call)

type call struct {
	params  []any
	query   url.Values
	headers map[string]string
}

// WithParams serialises params into the query string (see httpclient.EncodeQuery).
// Useful for mutating verbs whose endpoint takes both a body and query values.
// Repeated calls merge; values for the same key accumulate.
func WithParams(params any) Option {
	return func(c *call) {
		if params != nil {
			c.params = append(c.params, params)
		}
	}
}

// WithQuery adds raw query values.
func WithQuery(q url.Values) Option {
	return func(c *call) {
		if c.query == nil {
			c.query = url.Values{}
		}
		for k, vs := range q {
			c.query[k] = append(c.query[k], vs...)
		}
	}
}

// WithHeader sets a request header.
func WithHeader(key, value string) Option {
	return func(c *call) {
		if c.headers == nil {
			c.headers = map[string]string{}
		}
		c.headers[key] = value
	}
}

// Get performs a GET request. params, if non-nil, become the query string
// and merge with any WithParams options.
func Get[T any](ctx context.Context, c Doer, path string, params any, opts ...Option) (*envelope.Envelope[T], error) {
	return do[T](ctx, c, http.MethodGet, path, nil, append([]Option{WithParams(params)}, opts...)...)
}

// Post performs a POST request with data as the JSON body. Strings and
// byte slices are JSON-encoded too.
func Post[T any](ctx context.Context, c Doer, path string, data any, opts ...Option) (*envelope.Envelope[T], error) {
	return do[T](ctx, c, http.MethodPost, path, jsonBody{data}, opts...)
}

// Patch performs a PATCH request with data as the JSON body.
func Patch[T any](ctx context.Context, c Doer, path string, data any, opts ...Option) (*envelope.Envelope[T], error) {
	return do[T](ctx, c, http.MethodPatch, path, jsonBody{data}, opts...)
}

// Delete performs a DELETE request. data, if non-nil, is sent as the JSON body.
func Delete[T any](ctx context.Context, c Doer, path string, data any, opts ...Option) (*envelope.Envelope[T], error) {
	return do[T](ctx, c, http.MethodDelete, path, jsonBody{data}, opts...)
}

// Upload performs a multipart POST.
func Upload[T any](ctx context.Context, c Doer, path string, body *httpclient.MultipartBody, opts ...Option) (*envelope.Envelope[T], error) {
	if body == nil {
		body = &httpclient.MultipartBody{}
	}
	return do[T](ctx, c, http.MethodPost, path, body, opts...)
}

// jsonBody marks a body for a JSON verb; the Content-Type header is sent
// even when the payload is nil.
type jsonBody struct {
	data any
}

func do[T any](ctx context.Context, c Doer, method, path string, body any, opts ...Option) (*envelope.Envelope[T], error) {
	var cl call
	for _, opt := range opts {
		opt(&cl)
	}

	req := httpclient.Request{
		Method:  method,
		Path:    path,
		Query:   cl.query,
		Params:  cl.params,
		Headers: cl.headers,
	}

	switch b := body.(type) {
	case jsonBody:
		if req.Headers == nil {
			req.Headers = map[string]string{}
		}
		req.Headers["Content-Type"] = "application/json"
		if b.data != nil {
			req.Body = httpclient.JSON{Value: b.data}
		}
	case *httpclient.MultipartBody:
		req.Body = b
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return envelope.Decode[T](resp)
}
