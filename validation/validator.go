package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// FieldError describes why a single configuration field is invalid.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validator collects field errors programmatically.
type Validator struct {
	errs *multierror.Error
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a field error.
func (v *Validator) AddError(field, message string) *Validator {
	v.errs = multierror.Append(v.errs, &FieldError{Field: field, Message: message})
	return v
}

// Merge appends every field error from err, which is typically the result
// of a nested Validate call. Non-field errors are kept as-is.
func (v *Validator) Merge(prefix string, err error) *Validator {
	if err == nil {
		return v
	}
	if merr, ok := err.(*multierror.Error); ok {
		for _, e := range merr.Errors {
			v.Merge(prefix, e)
		}
		return v
	}
	if fe, ok := err.(*FieldError); ok && prefix != "" {
		return v.AddError(prefix+"."+fe.Field, fe.Message)
	}
	v.errs = multierror.Append(v.errs, err)
	return v
}

// HasErrors reports whether any error was recorded.
func (v *Validator) HasErrors() bool {
	return v.errs.ErrorOrNil() != nil
}

// Errors returns the recorded field errors.
func (v *Validator) Errors() []*FieldError {
	if v.errs == nil {
		return nil
	}
	out := make([]*FieldError, 0, len(v.errs.Errors))
	for _, e := range v.errs.Errors {
		if fe, ok := e.(*FieldError); ok {
			out = append(out, fe)
		}
	}
	return out
}

// Err returns nil when nothing was recorded, otherwise the aggregated error.
func (v *Validator) Err() error {
	if v.errs == nil {
		return nil
	}
	v.errs.ErrorFormat = formatErrors
	return v.errs.ErrorOrNil()
}

// Required checks that value is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// OneOf checks that value is one of allowed.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if !slices.Contains(allowed, value) {
		v.AddError(field, fmt.Sprintf("must be one of [%s] (got: %s)", strings.Join(allowed, ", "), value))
	}
	return v
}

// Min checks that value is at least minVal.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	if value < minVal {
		v.AddError(field, fmt.Sprintf("must be at least %d", minVal))
	}
	return v
}

// Custom records message when condition is false.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

func formatErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
