package form

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
)

// SubmitEvent is the host's submit trigger. PreventDefault suppresses the
// host's own submit or navigation behaviour.
type SubmitEvent interface {
	PreventDefault()
}

// SubmitHandler is bound to the host's submit control.
type SubmitHandler func(SubmitEvent)

// Engine owns the state of one form instance. Every action is applied
// atomically to the current state; callbacks, listeners and signals run after
// the lock is released.
type Engine[V any] struct {
	id       string
	validate Validator[V]
	cfg      config

	mu    sync.Mutex
	state State[V]
}

var _ Dispatcher[string] = (*Engine[string])(nil)

// New validates the initial values and returns an engine in StatusInitial.
func New[V any](initial Fields[V], validate Validator[V], opts ...Option) (*Engine[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	if err := checkCallbacks(cfg, initial); err != nil {
		return nil, err
	}

	state, err := Initialize(initial, validate)
	if err != nil {
		return nil, err
	}

	cfg.logger = cfg.logger.With(slog.String("form_id", cfg.id))
	cfg.logger.Debug("form initialized",
		slog.Int("fields", initial.Len()),
		slog.Bool("valid", !state.hasErrors()),
	)

	return &Engine[V]{
		id:       cfg.id,
		validate: validate,
		cfg:      cfg,
		state:    state,
	}, nil
}

// ID returns the form instance id.
func (e *Engine[V]) ID() string {
	return e.id
}

// State returns a deep copy of the current state.
func (e *Engine[V]) State() State[V] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Status returns the current status.
func (e *Engine[V]) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Status
}

// SetFieldValue replaces the value of name and re-validates the form.
func (e *Engine[V]) SetFieldValue(name string, value V) error {
	return e.apply(func(state State[V]) (State[V], Action, error) {
		next, err := SetFieldValue(state, e.validate, name, value)
		return next, SetFieldValues[V]{Field: name, Fields: next.Fields}, err
	}, name)
}

// TouchField marks name as touched.
func (e *Engine[V]) TouchField(name string) error {
	return e.apply(func(state State[V]) (State[V], Action, error) {
		action := TouchFieldAction{Field: name}
		next, err := Reduce(state, action)
		return next, action, err
	}, name)
}

// Submit evaluates the last validation result and returns the resulting
// status. Submitting a succeeded form is a no-op.
func (e *Engine[V]) Submit() Status {
	var status Status
	_ = e.apply(func(state State[V]) (State[V], Action, error) {
		action := submitAction(state)
		next, err := Reduce(state, action)
		status = next.Status
		return next, action, err
	}, "")
	return status
}

// Dispatch applies action to the current state with the same guarantees as
// SetFieldValue, TouchField and Submit: a SetFieldValues map is re-validated
// with the engine's validator (any carried Result is ignored) and submit
// actions are decided from the current errors.
func (e *Engine[V]) Dispatch(action Action) error {
	switch a := action.(type) {
	case SetFieldValues[V]:
		return e.apply(func(state State[V]) (State[V], Action, error) {
			if state.Disabled() {
				return state, a, ErrFormDisabled
			}
			if err := sameKeys(state.Fields, a.Fields); err != nil {
				return state, a, err
			}
			a.Result = e.validate(a.Fields)
			next, err := Reduce(state, a)
			return next, a, err
		}, a.Field)
	case TouchFieldAction:
		return e.TouchField(a.Field)
	case SubmitSucceeded, SubmitFailed:
		e.Submit()
		return nil
	default:
		return e.apply(func(state State[V]) (State[V], Action, error) {
			next, err := Reduce(state, action)
			return next, action, err
		}, "")
	}
}

// Field derives the binding for name from the current state.
func (e *Engine[V]) Field(name string) (FieldBinding[V], error) {
	return DeriveFieldBinding(e.State(), name, e)
}

// Bindings derives bindings for every field in declaration order.
func (e *Engine[V]) Bindings() []FieldBinding[V] {
	return DeriveBindings(e.State(), e)
}

// SubmitHandler returns a handler for the host's submit trigger. It prevents
// the host's default behaviour before submitting.
func (e *Engine[V]) SubmitHandler() SubmitHandler {
	return func(event SubmitEvent) {
		if event != nil {
			event.PreventDefault()
		}
		e.Submit()
	}
}

func (e *Engine[V]) apply(step func(State[V]) (State[V], Action, error), field string) error {
	prev, next, action, err := e.transition(step)
	if err != nil {
		e.rejected(action, field, err)
		return err
	}
	e.committed(prev, next, action, field)
	return nil
}

func (e *Engine[V]) transition(step func(State[V]) (State[V], Action, error)) (prev, next State[V], action Action, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev = e.state
	next, action, err = step(prev)
	if err == nil {
		e.state = next
	}
	return prev, next, action, err
}

func (e *Engine[V]) rejected(action Action, field string, err error) {
	e.cfg.logger.Warn("form action rejected",
		slog.String("action", ActionName(action)),
		slog.String("field", field),
		slog.Any("error", err),
	)
	capitan.Emit(e.cfg.ctx, MutationRejected,
		KeyFormID.Field(e.id),
		KeyField.Field(field),
		KeyError.Field(err.Error()),
	)
}

func (e *Engine[V]) committed(prev, next State[V], action Action, field string) {
	switch action.(type) {
	case SetFieldValues[V]:
		e.cfg.logger.Debug("form field changed",
			slog.String("field", field),
			slog.Int("errors", len(next.FieldErrors[field])),
		)
		capitan.Emit(e.cfg.ctx, FieldChanged,
			KeyFormID.Field(e.id),
			KeyField.Field(field),
			KeyStatus.Field(next.Status.String()),
		)
	case TouchFieldAction:
		if prev.Touched[field] {
			return
		}
		e.cfg.logger.Debug("form field touched", slog.String("field", field))
		capitan.Emit(e.cfg.ctx, FieldTouched,
			KeyFormID.Field(e.id),
			KeyField.Field(field),
		)
	case SubmitFailed:
		if next.Status != StatusSubmissionFailed {
			return
		}
		count := countFieldsWithErrors(next.FieldErrors)
		e.cfg.logger.Info("form submission failed",
			slog.Int("error_count", count),
			slog.String("form_error", next.FormError),
		)
		capitan.Emit(e.cfg.ctx, SubmissionFailed,
			KeyFormID.Field(e.id),
			KeyStatus.Field(next.Status.String()),
			KeyErrorCount.Field(count),
		)
	case SubmitSucceeded:
		if prev.Status == StatusSubmissionSucceeded {
			return
		}
		e.cfg.logger.Info("form submission succeeded")
		capitan.Emit(e.cfg.ctx, SubmissionSucceeded,
			KeyFormID.Field(e.id),
			KeyStatus.Field(next.Status.String()),
		)
	}

	snapshot := next.Clone()
	for _, listener := range e.cfg.onChange {
		listener.call(snapshot)
	}

	if prev.Status != StatusSubmissionSucceeded && next.Status == StatusSubmissionSucceeded {
		for _, handler := range e.cfg.onSuccess {
			handler.call(next.Fields)
		}
	}
}

func checkCallbacks[V any](cfg config, initial Fields[V]) error {
	for i, handler := range cfg.onSuccess {
		if !handler.accepts(initial) {
			return fmt.Errorf("%w: success handler %d does not accept %T", ErrHandlerType, i, initial)
		}
	}
	state := State[V]{Fields: initial}
	for i, listener := range cfg.onChange {
		if !listener.accepts(state) {
			return fmt.Errorf("%w: change listener %d does not accept %T", ErrHandlerType, i, state)
		}
	}
	return nil
}

func countFieldsWithErrors(errs FieldErrors) int {
	count := 0
	for _, messages := range errs {
		for _, message := range messages {
			if message != "" {
				count++
				break
			}
		}
	}
	return count
}
