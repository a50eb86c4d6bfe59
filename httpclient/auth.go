package httpclient

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kbukum/blogkit/logger"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-ID"

// TokenSource supplies the current auth token. An empty token means the
// request is sent unauthenticated.
type TokenSource interface {
	Token() (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() (string, error)

// Token implements TokenSource.
func (f TokenFunc) Token() (string, error) { return f() }

// StaticToken is a fixed token.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() (string, error) { return string(s), nil }

// BearerAuth sets "Authorization: Bearer <token>" whenever src yields a
// non-empty token and leaves the request untouched otherwise. A read
// failure is logged and treated as no token.
func BearerAuth(src TokenSource) RequestMiddleware {
	return func(req *http.Request) *http.Request {
		if src == nil {
			return req
		}
		token, err := src.Token()
		if err != nil {
			logger.WithComponent("httpclient").Debug("token unavailable, sending unauthenticated",
				logger.Fields(logger.FieldURL, req.URL.Path, logger.FieldError, err.Error()))
			return req
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return req
	}
}

// RequestID tags requests that do not already carry an X-Request-ID with a
// random UUID.
func RequestID() RequestMiddleware {
	return func(req *http.Request) *http.Request {
		if req.Header.Get(HeaderRequestID) == "" {
			req.Header.Set(HeaderRequestID, uuid.NewString())
		}
		return req
	}
}

// StaticHeaders sets the given headers on every request, overriding
// existing values.
func StaticHeaders(headers map[string]string) RequestMiddleware {
	return func(req *http.Request) *http.Request {
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req
	}
}
