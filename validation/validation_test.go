package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
)

type endpointConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Format  string        `mapstructure:"format" validate:"omitempty,oneof=json yaml table"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(endpointConfig{BaseURL: "http://localhost:8080/api", Timeout: time.Second})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_CollectsEveryField(t *testing.T) {
	err := Validate(endpointConfig{BaseURL: "not a url", Format: "xml"})
	if err == nil {
		t.Fatal("expected error")
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("expected *multierror.Error, got %T", err)
	}
	if len(merr.Errors) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(merr.Errors), err)
	}

	msg := err.Error()
	for _, want := range []string{"base_url: must be a valid URL", "timeout: must be greater than 0", "format: must be one of"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestValidate_NestedNamespace(t *testing.T) {
	type outer struct {
		API endpointConfig `mapstructure:"api"`
	}
	err := Validate(outer{API: endpointConfig{Timeout: time.Second}})
	if err == nil || !strings.Contains(err.Error(), "api.base_url: is required") {
		t.Fatalf("expected nested field path, got %v", err)
	}
}

func TestValidator_Programmatic(t *testing.T) {
	v := New()
	v.Required("name", "").
		OneOf("environment", "qa", []string{"development", "production"}).
		Min("size", 0, 1).
		Custom(true, "ignored", "never recorded")

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if got := len(v.Errors()); got != 3 {
		t.Fatalf("expected 3 errors, got %d", got)
	}
	if v.Errors()[0].Field != "name" {
		t.Errorf("expected first field 'name', got %q", v.Errors()[0].Field)
	}
}

func TestValidator_EmptyIsNil(t *testing.T) {
	v := New()
	if v.HasErrors() {
		t.Error("expected no errors")
	}
	if err := v.Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestValidator_MergePrefixesFields(t *testing.T) {
	nested := New().Required("base_url", "").Err()

	v := New().Merge("api", nested).Merge("logging", errors.New("logging.level must be one of"))
	errs := v.Err()
	if errs == nil {
		t.Fatal("expected merged errors")
	}
	if !strings.Contains(errs.Error(), "api.base_url: is required") {
		t.Errorf("expected prefixed field, got %q", errs.Error())
	}
	if !strings.Contains(errs.Error(), "logging.level") {
		t.Errorf("expected plain error kept, got %q", errs.Error())
	}
}
