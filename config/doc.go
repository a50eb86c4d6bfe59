// Package config loads blogkit configuration from YAML files, .env files
// and the process environment.
//
// Applications embed ServiceConfig in their own struct and call LoadConfig:
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    API httpclient.Config `yaml:"api" mapstructure:"api"`
//	}
//
//	var cfg Config
//	err := config.LoadConfig("blogctl", &cfg)
//
// Environment variables are bound to nested keys by splitting on
// underscores, so API_BASE_URL sets api.base_url.
package config
