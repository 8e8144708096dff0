package form

// Action is one of the transitions the reducer understands. The set is sealed:
// SetFieldValues, TouchFieldAction, SubmitSucceeded and SubmitFailed.
type Action interface {
	actionName() string
}

// SetFieldValues replaces the whole field map together with the validation
// result computed for it. Carrying the result keeps Reduce free of validator
// calls.
type SetFieldValues[V any] struct {
	Field  string
	Fields Fields[V]
	Result ValidationResult
}

// TouchFieldAction marks a single field as touched.
type TouchFieldAction struct {
	Field string
}

// SubmitSucceeded moves the form to its terminal status.
type SubmitSucceeded struct{}

// SubmitFailed records a rejected submission and touches every field.
type SubmitFailed struct{}

func (SetFieldValues[V]) actionName() string { return "set_field_values" }
func (TouchFieldAction) actionName() string  { return "touch_field" }
func (SubmitSucceeded) actionName() string   { return "submit_succeeded" }
func (SubmitFailed) actionName() string      { return "submit_failed" }

// ActionName returns a stable identifier for logging.
func ActionName(action Action) string {
	if action == nil {
		return ""
	}
	return action.actionName()
}
