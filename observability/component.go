package observability

import (
	"context"
	"sync"

	"github.com/kbukum/blogkit/component"
)

// Component runs Setup on Start and flushes exporters on Stop.
type Component struct {
	cfg      Config
	mu       sync.Mutex
	provider *Provider
}

var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a telemetry component for cfg.
func NewComponent(cfg Config) *Component {
	cfg.ApplyDefaults()
	return &Component{cfg: cfg}
}

// Name implements component.Component.
func (c *Component) Name() string { return "telemetry" }

// Start installs the exporters when an endpoint is configured.
func (c *Component) Start(ctx context.Context) error {
	p, err := Setup(ctx, c.cfg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.provider = p
	c.mu.Unlock()
	return nil
}

// Stop flushes pending spans and metrics.
func (c *Component) Stop(ctx context.Context) error {
	c.mu.Lock()
	p := c.provider
	c.provider = nil
	c.mu.Unlock()
	if p == nil {
		return nil
	}
	return p.Shutdown(ctx)
}

// Health implements component.Component. Disabled export is healthy.
func (c *Component) Health(_ context.Context) component.Health {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := component.Health{Name: c.Name(), Status: component.StatusHealthy}
	switch {
	case c.provider == nil:
		h.Status, h.Message = component.StatusUnhealthy, "not started"
	case !c.provider.Enabled():
		h.Message = "export disabled"
	}
	return h
}

// Describe implements component.Describable.
func (c *Component) Describe() component.Description {
	details := "disabled"
	if c.cfg.Enabled() {
		details = c.cfg.Endpoint
	}
	return component.Description{Name: c.Name(), Type: "otlp-http", Details: details}
}
