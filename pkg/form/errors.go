package form

import "errors"

var (
	// ErrUnknownField is returned when a field name is not part of the form.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrFormDisabled is returned for field mutations after a successful
	// submission.
	ErrFormDisabled = errors.New("form: form is disabled after successful submission")
	// ErrNilValidator is returned when a form is created without a validator.
	ErrNilValidator = errors.New("form: validator is required")
	// ErrEmptyFieldName signals a blank field name while building Fields.
	ErrEmptyFieldName = errors.New("form: field name is required")
	// ErrDuplicateField signals a repeated field name while building Fields.
	ErrDuplicateField = errors.New("form: duplicate field")
	// ErrUnknownAction is returned by Reduce for actions outside the form's
	// action set.
	ErrUnknownAction = errors.New("form: unknown action")
	// ErrHandlerType is returned by New when a success handler or change
	// listener was registered for a different value type.
	ErrHandlerType = errors.New("form: handler value type does not match the form")
)
