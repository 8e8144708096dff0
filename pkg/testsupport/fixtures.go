package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/form"
)

// FixturePath resolves name inside this package's testdata directory so
// tests in any package can share fixtures.
func FixturePath(name string) string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return filepath.Join("testdata", name)
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// MustReadFixture returns the raw bytes of a shared fixture.
func MustReadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(FixturePath(name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CompareFields returns a diff between want and the values of got.
func CompareFields(want map[string]string, got form.Fields[string]) string {
	return cmp.Diff(want, got.Map())
}

// NoErrors is a validator that accepts every input.
func NoErrors[V any](form.Fields[V]) form.ValidationResult {
	return form.ValidationResult{}
}

// SubmitEvent records PreventDefault calls.
type SubmitEvent struct {
	Prevented int
}

// PreventDefault implements form.SubmitEvent.
func (e *SubmitEvent) PreventDefault() {
	e.Prevented++
}
