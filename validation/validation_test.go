package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/sheetfeed/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("url", "https://example.com")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("url", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("url", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorMinAndRange(t *testing.T) {
	v := New()
	v.Min("indent", 0, 0).Range("port", 8080, 0, 65535)
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}

	v2 := New()
	v2.Min("indent", -1, 0).Range("port", 70000, 0, 65535)
	if len(v2.Errors()) != 2 {
		t.Errorf("expected 2 errors, got %v", v2.Errors())
	}
}

func TestValidatorOneOf(t *testing.T) {
	allowed := []string{"json", "yaml"}

	v := New()
	v.OneOf("format", "yaml", allowed).OneOf("format", "", allowed)
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}

	v2 := New()
	v2.OneOf("format", "xml", allowed)
	if !v2.HasErrors() {
		t.Fatal("expected error for disallowed value")
	}
	if !strings.Contains(v2.Errors()[0].Message, "json, yaml") {
		t.Errorf("expected allowed values in message, got %q", v2.Errors()[0].Message)
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "x", "never")
	if v.HasErrors() {
		t.Error("expected no error when condition holds")
	}

	v2 := New()
	v2.Custom(false, "x", "custom error")
	if !v2.HasErrors() {
		t.Fatal("expected error")
	}
	if v2.Errors()[0].Message != "custom error" {
		t.Errorf("expected 'custom error', got %q", v2.Errors()[0].Message)
	}
}

func TestValidatorValidate(t *testing.T) {
	if appErr := New().Required("url", "x").Validate(); appErr != nil {
		t.Error("expected nil for valid input")
	}

	v := New()
	v.Required("url", "")
	v.OneOf("format", "xml", []string{"json"})
	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected error")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if appErr.Details == nil {
		t.Fatal("expected details in error")
	}
	if !strings.Contains(appErr.Message, "url") || !strings.Contains(appErr.Message, "format") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
}

func TestStructValidate(t *testing.T) {
	type Output struct {
		Format string `mapstructure:"format" validate:"required,oneof=json yaml"`
		Indent int    `mapstructure:"indent" validate:"gte=0"`
	}
	type Root struct {
		Output Output `mapstructure:"output"`
		Port   int    `yaml:"port" validate:"lte=65535"`
	}

	if err := Validate(Root{Output: Output{Format: "json"}}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}

	err := Validate(Root{Output: Output{Format: "xml", Indent: -1}, Port: 70000})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"output.format", "output.indent", "port"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestRequiredFunc(t *testing.T) {
	if err := Required("url", "value"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	for _, blank := range []string{"", "  "} {
		err := Required("url", blank)
		if !errors.HasCode(err, errors.ErrCodeMissingField) {
			t.Errorf("Required(%q): expected MISSING_FIELD, got %v", blank, err)
		}
	}
}
