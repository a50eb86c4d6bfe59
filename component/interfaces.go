package component

import "context"

// HealthStatus represents the health state of a component.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// Health holds health information for a component.
type Health struct {
	Name    string       `json:"name" yaml:"name"`
	Status  HealthStatus `json:"status" yaml:"status"`
	Message string       `json:"message,omitempty" yaml:"message,omitempty"`
}

// Component is a lifecycle-managed part of a blogkit process: the API
// client, the telemetry exporters, or a fake backend in tests.
type Component interface {
	// Name returns the unique name of the component for registration.
	Name() string

	// Start initializes and starts the component.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the component and releases resources.
	Stop(ctx context.Context) error

	// Health returns the current health status of the component.
	Health(ctx context.Context) Health
}

// Description is a one-line self report of a component.
type Description struct {
	// Name is the display name. If empty, the component's Name() is used.
	Name string `json:"name" yaml:"name"`
	// Type categorizes the component: "http-client", "telemetry", "fake-backend".
	Type string `json:"type" yaml:"type"`
	// Details is a human-readable one-liner, e.g. the base URL.
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Describable is optionally implemented by components that can describe
// their configuration.
type Describable interface {
	Describe() Description
}
