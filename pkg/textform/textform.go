package textform

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/validation"
)

// TextField describes one text input of a text form.
type TextField struct {
	Name     string          `json:"name" yaml:"name"`
	Label    string          `json:"label,omitempty" yaml:"label,omitempty"`
	Help     string          `json:"help,omitempty" yaml:"help,omitempty"`
	Secret   bool            `json:"secret,omitempty" yaml:"secret,omitempty"`
	Validate *TextValidation `json:"validate,omitempty" yaml:"validate,omitempty"`
}

// TextValidation lists the checks applied to a field's trimmed value.
type TextValidation struct {
	MaxLength   int  `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Email       bool `json:"email,omitempty" yaml:"email,omitempty"`
	Required    bool `json:"required,omitempty" yaml:"required,omitempty"`
	AllowMarkup bool `json:"allowMarkup,omitempty" yaml:"allowMarkup,omitempty"`
}

// DisplayLabel returns the label, falling back to the field name.
func (f TextField) DisplayLabel() string {
	if label := strings.TrimSpace(f.Label); label != "" {
		return label
	}
	return f.Name
}

// Default returns the demo field set: a free-form name, an optional e-mail
// address and two required favourites.
func Default() []TextField {
	return []TextField{
		{Name: "name", Label: "Your name"},
		{Name: "email", Label: "E-mail address", Validate: &TextValidation{Email: true}},
		{Name: "favoriteColor", Label: "Favorite color", Validate: &TextValidation{MaxLength: 12, Required: true}},
		{Name: "favoriteFruit", Label: "Favorite fruit", Validate: &TextValidation{Required: true}},
	}
}

// Check trims names and rejects empty or duplicate ones.
func Check(fields []TextField) ([]TextField, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	out := make([]TextField, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for idx, field := range fields {
		field.Name = strings.TrimSpace(field.Name)
		if field.Name == "" {
			return nil, fmt.Errorf("%w (index %d)", ErrFieldNameMissing, idx)
		}
		if _, exists := seen[field.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, field.Name)
		}
		seen[field.Name] = struct{}{}
		out = append(out, field)
	}
	return out, nil
}

// Rules maps field definitions onto validation rules. Messages are reported
// in this order: max length, e-mail, required, markup.
func Rules(fields []TextField) []validation.FieldRules {
	out := make([]validation.FieldRules, 0, len(fields))
	for _, field := range fields {
		var rules []validation.Rule
		allowMarkup := false
		if v := field.Validate; v != nil {
			if v.MaxLength > 0 {
				rules = append(rules, validation.MaxLength(v.MaxLength))
			}
			if v.Email {
				rules = append(rules, validation.Email())
			}
			if v.Required {
				rules = append(rules, validation.Required())
			}
			allowMarkup = v.AllowMarkup
		}
		if !allowMarkup {
			rules = append(rules, validation.NoMarkup())
		}
		out = append(out, validation.FieldRules{Name: strings.TrimSpace(field.Name), Rules: rules})
	}
	return out
}

// Validator builds the form validator for fields.
func Validator(fields []TextField, opts ...validation.Option) form.Validator[string] {
	return validation.Text(Rules(fields), opts...)
}

// InitialValues seeds every field with an empty string, in definition order.
func InitialValues(fields []TextField) (form.Fields[string], error) {
	seed := make([]form.Field[string], 0, len(fields))
	for _, field := range fields {
		seed = append(seed, form.F(field.Name, ""))
	}
	return form.NewFields(seed...)
}

// NewEngine checks fields and returns an engine over empty initial values.
func NewEngine(fields []TextField, opts ...form.Option) (*form.Engine[string], error) {
	checked, err := Check(fields)
	if err != nil {
		return nil, err
	}
	initial, err := InitialValues(checked)
	if err != nil {
		return nil, err
	}
	return form.New(initial, Validator(checked), opts...)
}
