// Package cli implements the blogctl command line client.
//
// Every API command loads the configuration, builds a bootstrap.App with a
// telemetry component and the blog API client component, runs as the
// app's task and prints its result as a table, JSON or YAML.
package cli
