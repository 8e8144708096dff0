package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/textform"
)

// Host drives a text form from the terminal. It renders bindings as prompts,
// forwards change, blur and submit events to the engine and repeats until the
// engine reports a successful submission.
type Host struct {
	driver         PromptDriver
	theme          Theme
	maxAttempts    int
	confirm        bool
	confirmMessage string
}

// New constructs a host with defaults (survey driver, unlimited attempts).
func New(options ...Option) *Host {
	h := &Host{
		driver:         NewSurveyDriver(nil),
		theme:          Theme{ErrorPrefix: "  ! "},
		confirmMessage: "Submit?",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	return h
}

// Run prompts every field, submits, and re-prompts only the fields whose
// errors became visible until the submission succeeds. It returns the final
// field values.
func (h *Host) Run(ctx context.Context, engine *form.Engine[string], fields []textform.TextField) (form.Fields[string], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if engine == nil {
		return form.Fields[string]{}, ErrNilEngine
	}

	pending := fields
	for attempt := 1; ; attempt++ {
		for _, field := range pending {
			if err := h.promptField(ctx, engine, field); err != nil {
				return form.Fields[string]{}, err
			}
		}

		if h.confirm {
			ok, err := h.driver.Confirm(ctx, ConfirmConfig{Message: h.confirmMessage, Default: true})
			if err != nil {
				return form.Fields[string]{}, err
			}
			if !ok {
				pending = fields
				continue
			}
		}

		engine.SubmitHandler()(nil)
		state := engine.State()
		if state.Status == form.StatusSubmissionSucceeded {
			return state.Fields, nil
		}

		if msg := state.VisibleFormError(); msg != "" {
			if err := h.driver.Info(ctx, h.theme.ErrorPrefix+msg); err != nil {
				return form.Fields[string]{}, err
			}
		}
		if h.maxAttempts > 0 && attempt >= h.maxAttempts {
			return form.Fields[string]{}, fmt.Errorf("%w (%d)", ErrTooManyAttempts, attempt)
		}
		pending = invalidFields(state, fields)
	}
}

func (h *Host) promptField(ctx context.Context, engine *form.Engine[string], field textform.TextField) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	binding, err := engine.Field(field.Name)
	if err != nil {
		return err
	}
	if binding.Disabled {
		return nil
	}

	for _, msg := range binding.Errors {
		if err := h.driver.Info(ctx, fmt.Sprintf("%s%s: %s", h.theme.ErrorPrefix, field.DisplayLabel(), msg)); err != nil {
			return err
		}
	}

	cfg := InputConfig{
		Message: field.DisplayLabel(),
		Default: binding.Value,
		Help:    field.Help,
	}
	var value string
	if field.Secret {
		value, err = h.driver.Password(ctx, cfg)
	} else {
		value, err = h.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}

	if err := binding.OnChange(value); err != nil {
		return err
	}
	return binding.OnBlur()
}

func invalidFields(state form.State[string], fields []textform.TextField) []textform.TextField {
	out := make([]textform.TextField, 0, len(fields))
	for _, field := range fields {
		if len(state.VisibleErrors(field.Name)) > 0 {
			out = append(out, field)
		}
	}
	if len(out) == 0 {
		// form-level error only; let the user revisit everything
		return fields
	}
	return out
}
