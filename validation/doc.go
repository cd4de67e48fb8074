// Package validation provides input validation for seqkit tools.
//
// It supports struct tag validation (using the validator library) for
// configuration, and programmatic validation with error collection for
// command arguments.
//
// # Struct Tag Validation
//
//	type OutputConfig struct {
//	    Format string `mapstructure:"format" validate:"oneof=json yaml"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("by", by).OneOf("by", by, []string{"id", "name"})
//	if appErr := v.Validate(); appErr != nil {
//	    return appErr
//	}
package validation
