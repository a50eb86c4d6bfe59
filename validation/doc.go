// Package validation validates blogkit configuration structs.
//
// Two styles are supported. Struct tags, checked with go-playground/validator:
//
//	type Config struct {
//	    BaseURL string        `mapstructure:"base_url" validate:"required,url"`
//	    Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
//	}
//	err := validation.Validate(cfg)
//
// And programmatic checks collected into one error:
//
//	v := validation.New()
//	v.Required("name", c.Name).OneOf("environment", c.Environment, envs)
//	err := v.Err()
//
// Both return a *multierror.Error whose entries are *FieldError values, so
// callers can report every problem at once.
package validation
