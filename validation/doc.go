// Package validation validates configuration and request input.
//
// Struct tag validation (go-playground/validator) checks configuration
// sections; field names in messages come from their mapstructure keys:
//
//	type Config struct {
//	    Port int `mapstructure:"port" validate:"gte=0,lte=65535"`
//	}
//	err := validation.Validate(cfg)
//
// Programmatic validation collects errors for ad hoc input such as query
// parameters and CLI flags:
//
//	v := validation.New()
//	v.Required("url", raw).OneOf("format", format, []string{"json", "yaml"})
//	err := v.Validate()
//
// Both report an INVALID_INPUT AppError listing every failed field. The
// package-level Required reports a single MISSING_FIELD error instead.
package validation
