package form

// Status tracks where a form is in its submission lifecycle.
type Status string

const (
	// StatusInitial is the status of a form that was never submitted.
	StatusInitial Status = "INITIAL"
	// StatusSubmissionFailed means the last submit found validation errors.
	StatusSubmissionFailed Status = "SUBMISSION_FAILED"
	// StatusSubmissionSucceeded is terminal; the form is disabled from here on.
	StatusSubmissionSucceeded Status = "SUBMISSION_SUCCEEDED"
)

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Terminal reports whether no further transition can leave s.
func (s Status) Terminal() bool {
	return s == StatusSubmissionSucceeded
}

// FieldErrors maps field names to human-readable messages. Absent or empty
// entries mean the field is valid.
type FieldErrors map[string][]string

// HasErrors reports whether any field carries a non-empty message.
func (e FieldErrors) HasErrors() bool {
	for _, messages := range e {
		for _, message := range messages {
			if message != "" {
				return true
			}
		}
	}
	return false
}

func (e FieldErrors) clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for name, messages := range e {
		out[name] = append([]string(nil), messages...)
	}
	return out
}

// Touched records which fields the user has interacted with.
type Touched map[string]bool

func (t Touched) clone() Touched {
	out := make(Touched, len(t))
	for name, touched := range t {
		out[name] = touched
	}
	return out
}

// ValidationResult is what a Validator reports for a full field map.
type ValidationResult struct {
	FieldErrors FieldErrors
	FormError   string
}

// Valid reports whether the result carries no field or form error.
func (r ValidationResult) Valid() bool {
	return !r.FieldErrors.HasErrors() && r.FormError == ""
}

// Validator inspects the full field map and reports errors. Implementations
// must be pure and must never panic; inputs they cannot classify are reported
// as field errors.
type Validator[V any] func(Fields[V]) ValidationResult

// State is the aggregate form state. FieldErrors and FormError are always the
// output of the last validator run on Fields.
type State[V any] struct {
	Fields      Fields[V]
	FieldErrors FieldErrors
	FormError   string
	Touched     Touched
	Status      Status
}

// Clone returns a deep copy whose maps can be modified freely.
func (s State[V]) Clone() State[V] {
	s.FieldErrors = s.FieldErrors.clone()
	s.Touched = s.Touched.clone()
	return s
}

// Disabled reports whether field bindings should be rendered read-only.
func (s State[V]) Disabled() bool {
	return s.Status == StatusSubmissionSucceeded
}

// IsTouched reports whether name has been touched.
func (s State[V]) IsTouched(name string) bool {
	return s.Touched[name]
}

// VisibleErrors returns the errors for name that should be shown: only once
// the field is touched, and never nil.
func (s State[V]) VisibleErrors(name string) []string {
	messages := s.FieldErrors[name]
	if !s.Touched[name] || len(messages) == 0 {
		return []string{}
	}
	return append([]string(nil), messages...)
}

// VisibleFormError returns the form-level error once a submit attempt failed.
func (s State[V]) VisibleFormError() string {
	if s.Status != StatusSubmissionFailed {
		return ""
	}
	return s.FormError
}

// hasErrors reports whether the last validation result blocks submission.
func (s State[V]) hasErrors() bool {
	return s.FieldErrors.HasErrors() || s.FormError != ""
}
