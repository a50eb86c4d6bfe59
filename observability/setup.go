package observability

import (
	"context"
	"time"

	"github.com/hashicorp/go-multierror"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config configures telemetry export. Export is disabled while Endpoint is empty.
type Config struct {
	ServiceName    string        `yaml:"-" mapstructure:"-"`
	ServiceVersion string        `yaml:"-" mapstructure:"-"`
	Environment    string        `yaml:"-" mapstructure:"-"`
	Endpoint       string        `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure       bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	Interval       time.Duration `yaml:"interval" mapstructure:"interval"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.ServiceVersion == "" {
		c.ServiceVersion = "dev"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.Interval <= 0 {
		c.Interval = 15 * time.Second
	}
}

// Enabled reports whether telemetry should be exported.
func (c *Config) Enabled() bool {
	return c.Endpoint != ""
}

// Provider owns the tracer and meter providers created by Setup.
type Provider struct {
	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// Setup initializes tracing and metrics export. With export disabled it
// returns an empty Provider and the global no-op providers stay in place.
func Setup(ctx context.Context, cfg Config) (*Provider, error) {
	cfg.ApplyDefaults()
	p := &Provider{}
	if !cfg.Enabled() {
		return p, nil
	}

	tp, err := InitTracer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	p.tracer = tp

	mp, err := InitMeter(ctx, cfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	p.meter = mp
	return p, nil
}

// Enabled reports whether Setup installed exporters.
func (p *Provider) Enabled() bool {
	return p.tracer != nil
}

// Shutdown flushes and stops both providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	var result *multierror.Error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
