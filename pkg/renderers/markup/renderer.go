package markup

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/textform"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const defaultTemplate = "templates/form.tmpl"

// Option configures the renderer.
type Option func(*Renderer)

// WithAction sets the form action attribute.
func WithAction(action string) Option {
	return func(r *Renderer) {
		r.action = strings.TrimSpace(action)
	}
}

// WithMethod overrides the form method (POST by default).
func WithMethod(method string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(method); trimmed != "" {
			r.method = strings.ToUpper(trimmed)
		}
	}
}

// WithSubmitLabel overrides the submit button label.
func WithSubmitLabel(label string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			r.submitLabel = trimmed
		}
	}
}

// WithTemplate replaces the embedded template with a pongo2 template string.
func WithTemplate(source string) Option {
	return func(r *Renderer) {
		r.source = source
	}
}

// Renderer turns a text form snapshot into HTML. Values are auto-escaped.
type Renderer struct {
	action      string
	method      string
	submitLabel string
	source      string
	tpl         *pongo2.Template
}

// New compiles the template and returns a renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		method:      "POST",
		submitLabel: "Submit",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.source == "" {
		data, err := embeddedTemplates.ReadFile(defaultTemplate)
		if err != nil {
			return nil, fmt.Errorf("markup: read template: %w", err)
		}
		r.source = string(data)
	}

	tpl, err := pongo2.FromString(r.source)
	if err != nil {
		return nil, fmt.Errorf("markup: compile template: %w", err)
	}
	r.tpl = tpl
	return r, nil
}

// Render renders state. fields supplies labels and help text; the rendered
// order follows the form's field order.
func (r *Renderer) Render(id string, state form.State[string], fields []textform.TextField) (string, error) {
	if r == nil || r.tpl == nil {
		return "", errors.New("markup: renderer is not initialised")
	}
	out, err := r.tpl.Execute(r.context(id, state, fields))
	if err != nil {
		return "", fmt.Errorf("markup: render: %w", err)
	}
	return out, nil
}

// RenderTo writes the rendered form to w.
func (r *Renderer) RenderTo(w io.Writer, id string, state form.State[string], fields []textform.TextField) error {
	out, err := r.Render(id, state, fields)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (r *Renderer) context(id string, state form.State[string], fields []textform.TextField) pongo2.Context {
	meta := make(map[string]textform.TextField, len(fields))
	for _, field := range fields {
		meta[field.Name] = field
	}

	bindings := form.DeriveBindings[string](state, nil)
	items := make([]map[string]any, 0, len(bindings))
	for _, binding := range bindings {
		field := meta[binding.Name]
		field.Name = binding.Name
		inputType := "text"
		if field.Secret {
			inputType = "password"
		}
		items = append(items, map[string]any{
			"id":       id + "-" + binding.Name,
			"name":     binding.Name,
			"label":    field.DisplayLabel(),
			"help":     field.Help,
			"type":     inputType,
			"value":    binding.Value,
			"errors":   binding.Errors,
			"disabled": binding.Disabled,
		})
	}

	return pongo2.Context{
		"form": map[string]any{
			"id":       id,
			"action":   r.action,
			"method":   r.method,
			"status":   state.Status.String(),
			"error":    state.VisibleFormError(),
			"disabled": state.Disabled(),
			"submit":   r.submitLabel,
		},
		"fields": items,
	}
}
