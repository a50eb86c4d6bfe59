// Package rest is the typed verb facade over httpclient: one generic
// function per HTTP method, each returning the full decoded envelope.
//
//	env, err := rest.Get[[]blog.Tag](ctx, client, "/tag/list", nil)
//	env, err := rest.Post[string](ctx, client, "/user/login", creds)
//	env, err := rest.Delete[any](ctx, client, "/article/batch", ids)
//
// GET never sends a body; params are serialised into the query string.
// POST, PATCH and DELETE always send Content-Type: application/json and
// send a body only when data is non-nil. Upload sends multipart/form-data.
// Errors from the client's middleware come back unchanged.
package rest
