package cli

import (
	"path/filepath"

	"github.com/kbukum/blogkit/config"
	"github.com/kbukum/blogkit/credential"
	"github.com/kbukum/blogkit/httpclient"
	"github.com/kbukum/blogkit/observability"
	"github.com/kbukum/blogkit/validation"
	"github.com/kbukum/blogkit/version"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Outputs lists the accepted output formats.
var Outputs = []string{OutputTable, OutputJSON, OutputYAML}

// Config is the blogctl configuration. It is read from blogctl's config.yml
// and .env files and the environment, e.g. API_BASE_URL or
// TELEMETRY_ENDPOINT, then overridden by flags.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	API         httpclient.Config    `yaml:"api" mapstructure:"api"`
	Credentials credential.Config    `yaml:"credentials" mapstructure:"credentials"`
	Telemetry   observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
	Output      string               `yaml:"output" mapstructure:"output"`

	homeDir string
}

// ApplyDefaults fills in zero-value fields. Logging stays at warn unless
// debug is set, so command output is not interleaved with log lines.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = version.Product
	}
	if c.Version == "" {
		c.Version = version.Get().Short()
	}
	if c.Logging.Level == "" && !c.Debug {
		c.Logging.Level = "warn"
	}
	c.ServiceConfig.ApplyDefaults()

	c.API.ApplyDefaults()
	if c.API.Headers == nil {
		c.API.Headers = map[string]string{}
	}
	if _, ok := c.API.Headers["User-Agent"]; !ok {
		c.API.Headers["User-Agent"] = version.UserAgent()
	}

	if c.Credentials.Path == "" && c.homeDir != "" {
		c.Credentials.Path = filepath.Join(c.homeDir, credential.DefaultDir, credential.DefaultFile)
	}
	c.Credentials.ApplyDefaults()

	c.Telemetry.ServiceName = c.Name
	c.Telemetry.ServiceVersion = c.Version
	c.Telemetry.Environment = c.Environment
	c.Telemetry.ApplyDefaults()

	if c.Output == "" {
		c.Output = OutputTable
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	return validation.New().
		Merge("", c.ServiceConfig.Validate()).
		Merge("api", c.API.Validate()).
		Merge("credentials", c.Credentials.Validate()).
		Merge("telemetry", validation.Validate(&c.Telemetry)).
		OneOf("output", c.Output, Outputs).
		Err()
}
