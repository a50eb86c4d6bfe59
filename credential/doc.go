// Package credential holds the auth token used by the blog API client.
//
// A Store persists string values under well-known keys; the token lives
// under KeyToken. MemoryStore keeps values for the life of the process and
// FileStore persists them as JSON through an afero filesystem, by default
// in ~/.blogctl/credentials.json with 0600 permissions.
//
// Provider sits on top of a Store and implements httpclient.TokenSource.
// When the stored token is a JWT whose exp claim has passed, Provider
// clears it and reports no token, so the next request goes out
// unauthenticated instead of carrying a dead credential.
//
//	store, _ := credential.New(credential.Config{}, afero.NewOsFs(), log)
//	tokens := credential.NewProvider(store, log)
//	client, _ := httpclient.New(cfg,
//	    httpclient.WithRequestMiddleware(httpclient.BearerAuth(tokens)))
package credential
