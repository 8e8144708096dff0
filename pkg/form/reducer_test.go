package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var stateCmp = cmp.Comparer(func(a, b Fields[string]) bool {
	return cmp.Equal(a.Names(), b.Names()) && cmp.Equal(a.Map(), b.Map())
})

func requireName(fields Fields[string]) ValidationResult {
	errs := FieldErrors{}
	if fields.Value("name") == "" {
		errs["name"] = []string{"required"}
	}
	formError := ""
	if errs.HasErrors() {
		formError = "invalid"
	}
	return ValidationResult{FieldErrors: errs, FormError: formError}
}

func nameForm(t *testing.T, value string) State[string] {
	t.Helper()
	state, err := Initialize(MustFields(F("name", value)), requireName)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return state
}

func TestInitialize_RunsValidator(t *testing.T) {
	state := nameForm(t, "")

	if state.Status != StatusInitial {
		t.Fatalf("status = %s, want INITIAL", state.Status)
	}
	want := requireName(state.Fields)
	if diff := cmp.Diff(want.FieldErrors, state.FieldErrors); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if state.FormError != want.FormError {
		t.Fatalf("form error = %q, want %q", state.FormError, want.FormError)
	}
	if len(state.Touched) != 0 {
		t.Fatalf("expected empty touched map, got %v", state.Touched)
	}
}

func TestInitialize_NilValidator(t *testing.T) {
	_, err := Initialize[string](MustFields(F("name", "")), nil)
	if !errors.Is(err, ErrNilValidator) {
		t.Fatalf("expected ErrNilValidator, got %v", err)
	}
}

func TestSetFieldValue_RevalidatesAndKeepsStatus(t *testing.T) {
	state := nameForm(t, "")
	state = Submit(state)

	next, err := SetFieldValue(state, requireName, "name", "Ada")
	if err != nil {
		t.Fatalf("set field value: %v", err)
	}
	if got := next.Fields.Value("name"); got != "Ada" {
		t.Fatalf("name = %q, want Ada", got)
	}
	if next.FieldErrors.HasErrors() || next.FormError != "" {
		t.Fatalf("expected errors cleared, got %v / %q", next.FieldErrors, next.FormError)
	}
	if next.Status != StatusSubmissionFailed {
		t.Fatalf("status changed to %s", next.Status)
	}
	if diff := cmp.Diff(state.Touched, next.Touched); diff != "" {
		t.Fatalf("touched changed (-before +after):\n%s", diff)
	}
	if got := state.Fields.Value("name"); got != "" {
		t.Fatalf("input state mutated: name = %q", got)
	}
}

func TestSetFieldValue_Idempotent(t *testing.T) {
	state := nameForm(t, "")

	once, err := SetFieldValue(state, requireName, "name", "Ada")
	if err != nil {
		t.Fatalf("set once: %v", err)
	}
	twice, err := SetFieldValue(once, requireName, "name", "Ada")
	if err != nil {
		t.Fatalf("set twice: %v", err)
	}
	if diff := cmp.Diff(once, twice, stateCmp, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("state differs after repeated set (-once +twice):\n%s", diff)
	}
}

func TestSetFieldValue_UnknownField(t *testing.T) {
	state := nameForm(t, "")
	_, err := SetFieldValue(state, requireName, "email", "x")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestTouchField_OnlyChangesTouched(t *testing.T) {
	state := nameForm(t, "")

	next, err := TouchField(state, "name")
	if err != nil {
		t.Fatalf("touch: %v", err)
	}
	if !next.IsTouched("name") {
		t.Fatalf("expected name touched")
	}
	if diff := cmp.Diff(state.FieldErrors, next.FieldErrors); diff != "" {
		t.Fatalf("field errors changed:\n%s", diff)
	}
	if diff := cmp.Diff(state.Fields.Map(), next.Fields.Map()); diff != "" {
		t.Fatalf("fields changed:\n%s", diff)
	}
	if state.IsTouched("name") {
		t.Fatalf("input state mutated")
	}

	again, err := TouchField(next, "name")
	if err != nil {
		t.Fatalf("touch again: %v", err)
	}
	if diff := cmp.Diff(next.Touched, again.Touched); diff != "" {
		t.Fatalf("touch not idempotent:\n%s", diff)
	}

	if _, err := TouchField(state, "missing"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSubmit_Transitions(t *testing.T) {
	formErrorOnly := func(Fields[string]) ValidationResult {
		return ValidationResult{FormError: "server says no"}
	}
	blankMessages := func(Fields[string]) ValidationResult {
		return ValidationResult{FieldErrors: FieldErrors{"a": {""}, "b": nil}}
	}
	valid := func(Fields[string]) ValidationResult {
		return ValidationResult{FieldErrors: FieldErrors{"a": {}}}
	}

	tests := []struct {
		name     string
		validate Validator[string]
		want     Status
	}{
		{name: "form error fails", validate: formErrorOnly, want: StatusSubmissionFailed},
		{name: "blank messages pass", validate: blankMessages, want: StatusSubmissionSucceeded},
		{name: "empty lists pass", validate: valid, want: StatusSubmissionSucceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := Initialize(MustFields(F("a", ""), F("b", "")), tt.validate)
			if err != nil {
				t.Fatalf("initialize: %v", err)
			}
			next := Submit(state)
			if next.Status != tt.want {
				t.Fatalf("status = %s, want %s", next.Status, tt.want)
			}
		})
	}
}

func TestSubmit_FailureTouchesEveryField(t *testing.T) {
	validate := func(fields Fields[string]) ValidationResult {
		return ValidationResult{FieldErrors: FieldErrors{"b": {"bad"}}}
	}
	state, err := Initialize(MustFields(F("a", ""), F("b", ""), F("c", "")), validate)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	state, _ = TouchField(state, "a")

	failed := Submit(state)
	if failed.Status != StatusSubmissionFailed {
		t.Fatalf("status = %s", failed.Status)
	}
	want := Touched{"a": true, "b": true, "c": true}
	if diff := cmp.Diff(want, failed.Touched); diff != "" {
		t.Fatalf("touched mismatch (-want +got):\n%s", diff)
	}

	again := Submit(failed)
	if again.Status != StatusSubmissionFailed {
		t.Fatalf("status = %s after resubmit", again.Status)
	}
	if diff := cmp.Diff(want, again.Touched); diff != "" {
		t.Fatalf("touched changed on resubmit:\n%s", diff)
	}
}

func TestSubmit_SucceededIsTerminal(t *testing.T) {
	state := nameForm(t, "Ada")
	done := Submit(state)
	if done.Status != StatusSubmissionSucceeded {
		t.Fatalf("status = %s", done.Status)
	}

	if _, err := SetFieldValue(done, requireName, "name", ""); !errors.Is(err, ErrFormDisabled) {
		t.Fatalf("expected ErrFormDisabled, got %v", err)
	}
	if _, err := TouchField(done, "name"); !errors.Is(err, ErrFormDisabled) {
		t.Fatalf("expected ErrFormDisabled, got %v", err)
	}
	if got := Submit(done).Status; got != StatusSubmissionSucceeded {
		t.Fatalf("status = %s after resubmit", got)
	}
	failed, err := Reduce(done, SubmitFailed{})
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if failed.Status != StatusSubmissionSucceeded {
		t.Fatalf("submit failure left terminal status: %s", failed.Status)
	}
}

// Submit trusts the last computed result. A validator that would now report
// an error is not consulted again at submit time.
func TestSubmit_UsesLastValidationResult(t *testing.T) {
	calls := 0
	flaky := func(Fields[string]) ValidationResult {
		calls++
		if calls > 1 {
			return ValidationResult{FormError: "late error"}
		}
		return ValidationResult{}
	}
	state, err := Initialize(MustFields(F("name", "")), flaky)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if got := Submit(state).Status; got != StatusSubmissionSucceeded {
		t.Fatalf("status = %s, want SUBMISSION_SUCCEEDED", got)
	}
	if calls != 1 {
		t.Fatalf("validator calls = %d, want 1", calls)
	}
}

func TestReduce_RejectsForeignActions(t *testing.T) {
	state := nameForm(t, "")

	_, err := Reduce(state, SetFieldValues[int]{Fields: MustFields(F("name", 1))})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}

	other := MustFields(F("email", ""))
	_, err = Reduce(state, SetFieldValues[string]{Fields: other})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestDeriveFieldBinding_HidesErrorsUntilTouched(t *testing.T) {
	state := nameForm(t, "")

	binding, err := DeriveFieldBinding[string](state, "name", nil)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if binding.Errors == nil || len(binding.Errors) != 0 {
		t.Fatalf("expected empty non-nil errors, got %#v", binding.Errors)
	}
	if binding.Disabled {
		t.Fatalf("expected enabled binding")
	}

	touched, _ := TouchField(state, "name")
	binding, err = DeriveFieldBinding[string](touched, "name", nil)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if diff := cmp.Diff([]string{"required"}, binding.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if err := binding.OnChange("x"); !errors.Is(err, ErrFormDisabled) {
		t.Fatalf("nil dispatcher should reject changes, got %v", err)
	}

	if _, err := DeriveFieldBinding[string](state, "missing", nil); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestVisibleFormError(t *testing.T) {
	state := nameForm(t, "")
	if got := state.VisibleFormError(); got != "" {
		t.Fatalf("form error visible before submit: %q", got)
	}
	if got := Submit(state).VisibleFormError(); got != "invalid" {
		t.Fatalf("form error = %q, want invalid", got)
	}
}

func TestNewFields_RejectsBadNames(t *testing.T) {
	if _, err := NewFields(F("a", 1), F(" a ", 2)); !errors.Is(err, ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
	if _, err := NewFields(F(" ", 1)); !errors.Is(err, ErrEmptyFieldName) {
		t.Fatalf("expected ErrEmptyFieldName, got %v", err)
	}

	fields := MustFields(F("b", 2), F("a", 1))
	if diff := cmp.Diff([]string{"b", "a"}, fields.Names()); diff != "" {
		t.Fatalf("order mismatch:\n%s", diff)
	}
}
