// Package observability wires OpenTelemetry tracing and metrics export and
// the instruments recorded for outbound API calls.
//
//	p, err := observability.Setup(ctx, observability.Config{
//	    ServiceName: "blogctl",
//	    Endpoint:    "localhost:4318",
//	    Insecure:    true,
//	})
//	defer p.Shutdown(ctx)
//
//	metrics, err := observability.NewClientMetrics(observability.Meter("blogctl"))
//	client, err := httpclient.New(cfg, httpclient.WithMetrics(metrics))
//
// Without an endpoint Setup is a no-op and the global providers stay no-op.
package observability
