package bootstrap

import (
	"github.com/kbukum/blogkit/config"
)

// Config is the constraint for application config types. Any struct that
// embeds config.ServiceConfig satisfies it through promoted methods, as
// long as its own ApplyDefaults and Validate cover the embedded fields.
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
