// Package blog is the typed API surface of the blog backend.
//
// Each Client method fixes an endpoint path, an HTTP verb and a payload
// shape for one backend operation and delegates to the httpclient/rest
// facade. Methods return the full response envelope on success. Failures
// come back unchanged from the pipeline: *httpclient.Error for transport
// failures and *envelope.Error when the backend answers with a code other
// than 200. The surface itself performs no validation.
//
// Pages are 1-based. A zero Page takes the endpoint default of page 1 and
// 10 items (20 for file listings).
//
//	tokens := credential.NewProvider(store, log)
//	c, err := blog.New(httpclient.Config{BaseURL: "http://localhost:8080/api"}, tokens, log)
//	if err != nil {
//	    return err
//	}
//	if _, err := c.Login(ctx, "admin", "secret"); err != nil {
//	    return err
//	}
//	author, err := c.AuthorInfo(ctx)
package blog
