package bind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag consulted for field-to-key mapping.
const TagName = "config"

// FieldError describes one field that failed binding or validation.
type FieldError struct {
	// Path is the dotted configuration path of the field, empty when the
	// decoder could not attribute the failure to a single field.
	Path string
	// Rule is the validation tag that failed, empty for decode failures.
	Rule string
	// Message is a human-readable description.
	Message string
}

// ValidationError aggregates every field failure from one Bind call.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return "invalid configuration: " + e.Fields[0].Message
	}
	return fmt.Sprintf("invalid configuration: %d fields failed", len(e.Fields))
}

// Bind decodes raw into target, a pointer to a struct, then validates it.
// Fields already set on target act as defaults; keys absent from raw leave
// them alone. Coercion is weakly typed, so a "8080" from an environment
// variable satisfies an int field. All failures are collected into a single
// *ValidationError.
func Bind(raw map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return decodeError(err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(target); err != nil {
		var ferrs validator.ValidationErrors
		if !errors.As(err, &ferrs) {
			return fmt.Errorf("validate configuration: %w", err)
		}
		verr := &ValidationError{}
		for _, fe := range ferrs {
			verr.Fields = append(verr.Fields, FieldError{
				Path:    fieldPath(fe.Namespace()),
				Rule:    fe.Tag(),
				Message: fmt.Sprintf("%s failed rule %q", fieldPath(fe.Namespace()), fe.Tag()),
			})
		}
		return verr
	}
	return nil
}

func decodeError(err error) error {
	var merr *mapstructure.Error
	if !errors.As(err, &merr) {
		return fmt.Errorf("decode configuration: %w", err)
	}
	verr := &ValidationError{}
	for _, msg := range merr.Errors {
		verr.Fields = append(verr.Fields, FieldError{Message: msg})
	}
	return verr
}

// fieldPath turns a validator namespace like "Config.Server.Port" into the
// dotted configuration path "server.port".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}
