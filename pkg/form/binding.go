package form

import "fmt"

// Dispatcher receives the events a field binding forwards.
type Dispatcher[V any] interface {
	SetFieldValue(name string, value V) error
	TouchField(name string) error
}

// FieldBinding is the read-only projection handed to a widget. Errors is
// never nil and only lists messages once the field is touched.
type FieldBinding[V any] struct {
	Name     string
	Value    V
	Errors   []string
	Disabled bool
	OnChange func(value V) error
	OnBlur   func() error
}

// HasErrors reports whether the binding has visible errors.
func (b FieldBinding[V]) HasErrors() bool {
	return len(b.Errors) > 0
}

// DeriveFieldBinding projects state onto a binding for name. The callbacks
// dispatch to d by name, so they always act on d's current state rather than
// on the snapshot the binding was derived from. A nil dispatcher yields
// callbacks that return ErrFormDisabled.
func DeriveFieldBinding[V any](state State[V], name string, d Dispatcher[V]) (FieldBinding[V], error) {
	value, ok := state.Fields.Get(name)
	if !ok {
		return FieldBinding[V]{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	binding := FieldBinding[V]{
		Name:     name,
		Value:    value,
		Errors:   state.VisibleErrors(name),
		Disabled: state.Disabled(),
	}
	if d == nil {
		binding.OnChange = func(V) error { return ErrFormDisabled }
		binding.OnBlur = func() error { return ErrFormDisabled }
		return binding, nil
	}
	binding.OnChange = func(value V) error {
		return d.SetFieldValue(name, value)
	}
	binding.OnBlur = func() error {
		return d.TouchField(name)
	}
	return binding, nil
}

// DeriveBindings returns bindings for every field in declaration order.
func DeriveBindings[V any](state State[V], d Dispatcher[V]) []FieldBinding[V] {
	out := make([]FieldBinding[V], 0, state.Fields.Len())
	for _, name := range state.Fields.names {
		binding, err := DeriveFieldBinding(state, name, d)
		if err != nil {
			continue
		}
		out = append(out, binding)
	}
	return out
}
