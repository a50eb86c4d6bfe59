// Package httpclient is the transport layer for a single JSON backend.
//
// A Client resolves request paths against a base URL, encodes JSON and
// multipart bodies, and runs every call through two middleware chains:
// request middleware (request ids, bearer auth) before sending and response
// middleware (envelope validation, see httpclient/envelope) after. Non-2xx
// statuses and network failures surface as *Error. The client never retries.
//
//	c, err := httpclient.New(httpclient.Config{BaseURL: "http://localhost:8080/api"},
//	    httpclient.WithRequestMiddleware(
//	        httpclient.RequestID(),
//	        httpclient.BearerAuth(tokens),
//	    ),
//	    httpclient.WithResponseMiddleware(envelope.Middleware(log)),
//	)
//
//	resp, err := c.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/tag/list",
//	})
//
// The typed verbs in httpclient/rest sit on top of Do.
package httpclient
