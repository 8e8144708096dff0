package form

import (
	"fmt"
	"strings"
)

// Field is a single name/value pair used to seed a Fields map.
type Field[V any] struct {
	Name  string
	Value V
}

// F is shorthand for Field{Name: name, Value: value}.
func F[V any](name string, value V) Field[V] {
	return Field[V]{Name: name, Value: value}
}

// Fields is an ordered, copy-on-write map from field name to value. The key
// set and order are fixed when the map is built.
type Fields[V any] struct {
	names  []string
	values map[string]V
}

// NewFields builds a Fields map preserving the supplied order. Names are
// trimmed; empty or duplicate names are rejected.
func NewFields[V any](fields ...Field[V]) (Fields[V], error) {
	out := Fields[V]{
		names:  make([]string, 0, len(fields)),
		values: make(map[string]V, len(fields)),
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return Fields[V]{}, ErrEmptyFieldName
		}
		if _, exists := out.values[name]; exists {
			return Fields[V]{}, fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
		out.names = append(out.names, name)
		out.values[name] = field.Value
	}
	return out, nil
}

// MustFields is NewFields that panics on invalid input. Intended for
// package-level fixtures and tests.
func MustFields[V any](fields ...Field[V]) Fields[V] {
	out, err := NewFields(fields...)
	if err != nil {
		panic(err)
	}
	return out
}

// Len reports the number of fields.
func (f Fields[V]) Len() int {
	return len(f.names)
}

// Names returns the field names in declaration order.
func (f Fields[V]) Names() []string {
	return append([]string(nil), f.names...)
}

// Has reports whether name is part of the key set.
func (f Fields[V]) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Get returns the value stored under name.
func (f Fields[V]) Get(name string) (V, bool) {
	value, ok := f.values[name]
	return value, ok
}

// Value returns the value stored under name or the zero value.
func (f Fields[V]) Value(name string) V {
	return f.values[name]
}

// With returns a copy of f with name set to value. The receiver is not
// modified. Unknown names yield ErrUnknownField.
func (f Fields[V]) With(name string, value V) (Fields[V], error) {
	if !f.Has(name) {
		return Fields[V]{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	values := make(map[string]V, len(f.values))
	for key, existing := range f.values {
		values[key] = existing
	}
	values[name] = value
	return Fields[V]{names: f.names, values: values}, nil
}

// Map returns a plain map copy, handy for serialisation.
func (f Fields[V]) Map() map[string]V {
	out := make(map[string]V, len(f.values))
	for key, value := range f.values {
		out[key] = value
	}
	return out
}

// Each visits fields in order until fn returns false.
func (f Fields[V]) Each(fn func(name string, value V) bool) {
	for _, name := range f.names {
		if !fn(name, f.values[name]) {
			return
		}
	}
}
