package credential

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/kbukum/blogkit/logger"
	"github.com/kbukum/blogkit/validation"
)

// Store providers.
const (
	ProviderFile   = "file"
	ProviderMemory = "memory"
)

// DefaultDir and DefaultFile locate the credential file under the user's
// home directory.
const (
	DefaultDir  = ".blogctl"
	DefaultFile = "credentials.json"
)

// Config selects and configures the credential store.
type Config struct {
	// Provider is "file" (default) or "memory".
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Path overrides the credential file location for the file provider.
	Path string `yaml:"path" mapstructure:"path"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderFile
	}
	if c.Provider == ProviderFile && c.Path == "" {
		c.Path = DefaultPath()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	v := validation.New().OneOf("provider", c.Provider, []string{ProviderFile, ProviderMemory})
	if c.Provider == ProviderFile {
		v.Required("path", c.Path)
	}
	return v.Err()
}

// DefaultPath returns ~/.blogctl/credentials.json, falling back to the
// working directory when no home directory is known.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(DefaultDir, DefaultFile)
	}
	return filepath.Join(home, DefaultDir, DefaultFile)
}

// New builds the Store selected by cfg. fs backs the file provider; nil
// means the OS filesystem.
func New(cfg Config, fs afero.Fs, log *logger.Logger) (Store, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("credential: invalid config: %w", err)
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}

	switch cfg.Provider {
	case ProviderMemory:
		log.WithComponent("credential").Debug("using in-memory credential store")
		return NewMemoryStore(), nil
	default:
		if fs == nil {
			fs = afero.NewOsFs()
		}
		log.WithComponent("credential").Debug("using credential file", logger.Fields("path", cfg.Path))
		return NewFileStore(fs, cfg.Path), nil
	}
}
