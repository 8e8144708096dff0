package validation

import (
	"strings"

	"github.com/goliatone/go-formstate/pkg/form"
)

// DefaultFormError is reported as the form-level error whenever any field
// fails validation.
const DefaultFormError = "Sorry! There was a problem processing your submission."

// FieldRules attaches rules to a field name. Rules run in order and every
// failing rule contributes its message.
type FieldRules struct {
	Name  string
	Rules []Rule
}

// Option configures a text validator.
type Option func(*textConfig)

type textConfig struct {
	formError string
	trim      bool
}

// WithFormError overrides the form-level message. An empty message disables
// the form-level error.
func WithFormError(message string) Option {
	return func(cfg *textConfig) {
		cfg.formError = message
	}
}

// WithoutTrim validates raw values instead of whitespace-trimmed ones.
func WithoutTrim() Option {
	return func(cfg *textConfig) {
		cfg.trim = false
	}
}

// Text builds a form.Validator for string fields. Every field in the map gets
// an entry in FieldErrors, empty when it passes; fields without rules always
// pass.
func Text(rules []FieldRules, opts ...Option) form.Validator[string] {
	cfg := textConfig{formError: DefaultFormError, trim: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	byName := make(map[string][]Rule, len(rules))
	for _, entry := range rules {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		byName[name] = append(byName[name], entry.Rules...)
	}

	return func(fields form.Fields[string]) form.ValidationResult {
		errs := make(form.FieldErrors, fields.Len())
		fields.Each(func(name, value string) bool {
			if cfg.trim {
				value = strings.TrimSpace(value)
			}
			messages := []string{}
			for _, rule := range byName[name] {
				if rule == nil {
					continue
				}
				if message := rule(value); message != "" {
					messages = append(messages, message)
				}
			}
			errs[name] = messages
			return true
		})

		result := form.ValidationResult{FieldErrors: errs}
		if errs.HasErrors() {
			result.FormError = cfg.formError
		}
		return result
	}
}
