package httpclient

import (
	"net/http"
	"net/url"
)

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PATCH, DELETE, ...).
	Method string
	// Path is appended to the client's BaseURL. A full URL is used as-is.
	Path string
	// Query holds URL query parameters, merged with any query in Path.
	Query url.Values
	// Params are serialised with EncodeQuery and merged into the query
	// string before Query. A value that cannot be encoded fails the request
	// with KindEncode.
	Params []any
	// Headers are request-specific headers (override client defaults).
	Headers map[string]string
	// Body is the request body. Accepts nil, io.Reader, []byte, string,
	// *MultipartBody, JSON, or any value that will be JSON-encoded.
	Body any
}

// JSON is a body that is always JSON-encoded, including strings and byte
// slices, which are otherwise sent raw.
type JSON struct {
	Value any
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers http.Header
	// Body is the raw response body.
	Body []byte
	// Method and URL echo the request that produced this response.
	Method string
	URL    string
	// RequestID is the X-Request-ID sent with the request, if any.
	RequestID string
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Header returns the first value of a response header.
func (r *Response) Header(key string) string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers.Get(key)
}
