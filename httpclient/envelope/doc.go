// Package envelope implements the backend's response envelope
// {"code", "message", "data"} and the response middleware that turns a
// non-200 envelope code into a business error.
//
// Two error tiers reach callers:
//
//   - *httpclient.Error: the HTTP exchange itself failed (status, network, timeout).
//   - *envelope.Error: the exchange succeeded but the backend reported a failure.
//
// Use httpclient.IsTransport and envelope.IsBusiness to tell them apart.
package envelope
