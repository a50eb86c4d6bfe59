package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies transport-level failures.
type ErrorKind int

const (
	// KindTimeout indicates the request exceeded the client timeout or ctx deadline.
	KindTimeout ErrorKind = iota
	// KindConnection indicates a network failure (refused, DNS, reset).
	KindConnection
	// KindAuth indicates HTTP 401 or 403.
	KindAuth
	// KindNotFound indicates HTTP 404.
	KindNotFound
	// KindRateLimit indicates HTTP 429.
	KindRateLimit
	// KindClient indicates any other 4xx status.
	KindClient
	// KindServer indicates a 5xx status.
	KindServer
	// KindEncode indicates the request could not be built.
	KindEncode
	// KindCanceled indicates the caller canceled the context.
	KindCanceled
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindRateLimit:
		return "rate_limit"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	case KindEncode:
		return "encode"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Error is a transport-level failure: the request never produced a 2xx
// response. It is never used for failures reported inside a response envelope.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// StatusCode is the HTTP status code (0 for network-level errors).
	StatusCode int
	// Method and URL identify the request.
	Method string
	URL    string
	// Body is the response body for status errors (may be nil).
	Body []byte
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	target := e.Method + " " + e.URL
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("httpclient: %s %s: HTTP %d", e.Kind, target, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("httpclient: %s %s: %v", e.Kind, target, e.Err)
	default:
		return fmt.Sprintf("httpclient: %s %s", e.Kind, target)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether repeating the request could succeed. The client
// never retries on its own; this is a hint for callers.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindTimeout, KindConnection, KindRateLimit, KindServer:
		return true
	default:
		return false
	}
}

func newError(kind ErrorKind, req *http.Request, err error) *Error {
	e := &Error{Kind: kind, Err: err}
	if req != nil {
		e.Method = req.Method
		e.URL = req.URL.String()
	}
	return e
}

// ClassifyStatus converts a non-2xx status into a transport error.
// Returns nil for 2xx status codes.
func ClassifyStatus(req *http.Request, statusCode int, body []byte) *Error {
	var kind ErrorKind
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		kind = KindAuth
	case statusCode == http.StatusNotFound:
		kind = KindNotFound
	case statusCode == http.StatusTooManyRequests:
		kind = KindRateLimit
	case statusCode >= 400 && statusCode < 500:
		kind = KindClient
	default:
		// 5xx and the odd 1xx/3xx that escaped redirect handling.
		kind = KindServer
	}
	e := newError(kind, req, nil)
	e.StatusCode = statusCode
	e.Body = body
	return e
}

// AsTransport returns the transport error in err's chain, if any.
func AsTransport(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	_, ok := AsTransport(err)
	return ok
}

func isKind(err error, kind ErrorKind) bool {
	e, ok := AsTransport(err)
	return ok && e.Kind == kind
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool { return isKind(err, KindTimeout) }

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool { return isKind(err, KindConnection) }

// IsAuth checks if an error is an authentication error.
func IsAuth(err error) bool { return isKind(err, KindAuth) }

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsServerError checks if an error is a server error.
func IsServerError(err error) bool { return isKind(err, KindServer) }

// IsRetryable checks if an error is a retryable transport error.
func IsRetryable(err error) bool {
	e, ok := AsTransport(err)
	return ok && e.Retryable()
}
