// Package testutil provides test infrastructure for blogkit.
//
// Backend is a fake blog backend: a gin engine served by httptest under
// /api that answers with {code, message, data} envelopes and records every
// request it receives. It implements TestComponent, so it can be started
// through the component registry or bound to a test with T.
//
//	func TestAuthor(t *testing.T) {
//	    backend := testutil.NewBackend()
//	    backend.Reply(http.MethodGet, "/user/author", blog.User{Name: "admin"})
//	    testutil.T(t).Setup(backend)
//
//	    c, _ := blog.New(httpclient.Config{BaseURL: backend.URL()}, nil, logger.Nop())
//	    env, err := c.AuthorInfo(ctx)
//	    ...
//	    last := backend.LastRequest()
//	}
package testutil
