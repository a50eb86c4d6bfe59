// Package component defines lifecycle interfaces and an ordered registry
// for the long-lived parts of a blogkit process.
//
// Components start in registration order and stop in reverse order.
// blogctl registers its telemetry exporters before the API client so the
// client is closed first and its last spans are still flushed.
package component
