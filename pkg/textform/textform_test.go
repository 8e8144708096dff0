package textform_test

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/testsupport"
	"github.com/goliatone/go-formstate/pkg/textform"
	"github.com/goliatone/go-formstate/pkg/validation"
)

func TestNewEngine_DefaultFields(t *testing.T) {
	engine, err := textform.NewEngine(textform.Default())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	state := engine.State()
	want := form.FieldErrors{
		"name":          {},
		"email":         {},
		"favoriteColor": {validation.MessageRequired},
		"favoriteFruit": {validation.MessageRequired},
	}
	if diff := cmp.Diff(want, state.FieldErrors); diff != "" {
		t.Fatalf("initial errors mismatch (-want +got):\n%s", diff)
	}
	if state.FormError != validation.DefaultFormError {
		t.Fatalf("form error = %q", state.FormError)
	}
	if diff := cmp.Diff([]string{"name", "email", "favoriteColor", "favoriteFruit"}, state.Fields.Names()); diff != "" {
		t.Fatalf("field order mismatch:\n%s", diff)
	}

	if got := engine.Submit(); got != form.StatusSubmissionFailed {
		t.Fatalf("status = %s", got)
	}
	if got := engine.State().VisibleFormError(); got != validation.DefaultFormError {
		t.Fatalf("visible form error = %q", got)
	}

	for name, value := range map[string]string{
		"email":         "ada@example.com",
		"favoriteColor": "  orange  ",
		"favoriteFruit": "mango",
	} {
		if err := engine.SetFieldValue(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	if got := engine.Submit(); got != form.StatusSubmissionSucceeded {
		t.Fatalf("status = %s, errors %v", got, engine.State().FieldErrors)
	}
}

func TestValidator_MessageOrder(t *testing.T) {
	fields := []textform.TextField{
		{Name: "contact", Validate: &textform.TextValidation{MaxLength: 3, Email: true, Required: true}},
	}
	validate := textform.Validator(fields)

	result := validate(form.MustFields(form.F("contact", "<b>abcd</b>")))
	want := []string{
		"Please provide a value no longer than 3 characters.",
		validation.MessageEmail,
		validation.MessageMarkup,
	}
	if diff := cmp.Diff(want, result.FieldErrors["contact"]); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck(t *testing.T) {
	if _, err := textform.Check(nil); !errors.Is(err, textform.ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
	if _, err := textform.Check([]textform.TextField{{Name: " "}}); !errors.Is(err, textform.ErrFieldNameMissing) {
		t.Fatalf("expected ErrFieldNameMissing, got %v", err)
	}
	if _, err := textform.Check([]textform.TextField{{Name: "a"}, {Name: " a"}}); !errors.Is(err, textform.ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
}

func TestLoadFile_YAMLMatchesDefault(t *testing.T) {
	fields, err := textform.LoadFile(testsupport.FixturePath("fields.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := textform.Default()
	want[2].Help = "One or two words."
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_JSON(t *testing.T) {
	fields, err := textform.LoadFS(os.DirFS(testsupport.FixturePath("")), "fields.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []textform.TextField{
		{Name: "title", Label: "Title", Validate: &textform.TextValidation{Required: true, MaxLength: 40}},
		{Name: "body", Label: "Body", Validate: &textform.TextValidation{AllowMarkup: true}},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	result := textform.Validator(fields)(form.MustFields(form.F("title", "Hi"), form.F("body", "<em>ok</em>")))
	if !result.Valid() {
		t.Fatalf("expected markup to be allowed in body: %#v", result)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := textform.Parse([]byte("  "), "empty.yaml"); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := textform.Parse([]byte("fields: [\n"), "broken.yaml"); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := textform.Parse([]byte("fields: []\n"), "none.yaml"); !errors.Is(err, textform.ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
}

func TestFromOpenAPI(t *testing.T) {
	raw := testsupport.MustReadFixture(t, "signup.openapi.yaml")

	fields, err := textform.FromOpenAPI(testsupport.Context(), raw, "createSignup")
	if err != nil {
		t.Fatalf("from openapi: %v", err)
	}
	want := []textform.TextField{
		{Name: "email", Label: "E-mail address", Validate: &textform.TextValidation{Email: true, Required: true}},
		{Name: "favoriteColor", Label: "Favorite color", Help: "One or two words.", Validate: &textform.TextValidation{MaxLength: 12, Required: true}},
		{Name: "password", Secret: true},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	if _, err := textform.FromOpenAPI(testsupport.Context(), raw, "missing"); !errors.Is(err, textform.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}
