package form

import "fmt"

// Initialize builds the first state for a form by validating the initial
// values, so errors are known before any interaction.
func Initialize[V any](initial Fields[V], validate Validator[V]) (State[V], error) {
	if validate == nil {
		return State[V]{}, ErrNilValidator
	}
	result := validate(initial)
	return State[V]{
		Fields:      initial,
		FieldErrors: result.FieldErrors.clone(),
		FormError:   result.FormError,
		Touched:     Touched{},
		Status:      StatusInitial,
	}, nil
}

// SetFieldValue replaces one field value and re-validates the full map.
// Touched and Status are left as they are.
func SetFieldValue[V any](state State[V], validate Validator[V], name string, value V) (State[V], error) {
	if validate == nil {
		return state, ErrNilValidator
	}
	if state.Disabled() {
		return state, ErrFormDisabled
	}
	fields, err := state.Fields.With(name, value)
	if err != nil {
		return state, err
	}
	return Reduce(state, SetFieldValues[V]{
		Field:  name,
		Fields: fields,
		Result: validate(fields),
	})
}

// TouchField marks name as touched. Repeated calls are harmless.
func TouchField[V any](state State[V], name string) (State[V], error) {
	return Reduce(state, TouchFieldAction{Field: name})
}

// Submit decides the outcome of a submit attempt from the last computed
// validation result. It does not re-run the validator.
func Submit[V any](state State[V]) State[V] {
	next, err := Reduce(state, submitAction(state))
	if err != nil {
		// submit actions never fail
		return state
	}
	return next
}

func submitAction[V any](state State[V]) Action {
	if state.hasErrors() {
		return SubmitFailed{}
	}
	return SubmitSucceeded{}
}

// Reduce applies action to state and returns the next state. The input state
// is never modified.
func Reduce[V any](state State[V], action Action) (State[V], error) {
	switch a := action.(type) {
	case SetFieldValues[V]:
		if state.Disabled() {
			return state, ErrFormDisabled
		}
		if err := sameKeys(state.Fields, a.Fields); err != nil {
			return state, err
		}
		next := state
		next.Fields = a.Fields
		next.FieldErrors = a.Result.FieldErrors.clone()
		next.FormError = a.Result.FormError
		return next, nil

	case TouchFieldAction:
		if state.Disabled() {
			return state, ErrFormDisabled
		}
		if !state.Fields.Has(a.Field) {
			return state, fmt.Errorf("%w: %q", ErrUnknownField, a.Field)
		}
		next := state
		next.Touched = state.Touched.clone()
		next.Touched[a.Field] = true
		return next, nil

	case SubmitSucceeded:
		next := state
		next.Status = StatusSubmissionSucceeded
		return next, nil

	case SubmitFailed:
		if state.Status.Terminal() {
			return state, nil
		}
		touched := make(Touched, state.Fields.Len())
		for _, name := range state.Fields.names {
			touched[name] = true
		}
		next := state
		next.Touched = touched
		next.Status = StatusSubmissionFailed
		return next, nil

	default:
		return state, fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
}

func sameKeys[V any](current, next Fields[V]) error {
	if current.Len() != next.Len() {
		return fmt.Errorf("%w: field set changed", ErrUnknownField)
	}
	for _, name := range next.names {
		if !current.Has(name) {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}
	return nil
}
