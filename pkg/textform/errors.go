package textform

import "errors"

var (
	// ErrNoFields is returned when a definition declares no fields.
	ErrNoFields = errors.New("textform: no fields defined")
	// ErrFieldNameMissing is returned for a field without a name.
	ErrFieldNameMissing = errors.New("textform: field name is required")
	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("textform: duplicate field")
	// ErrOperationNotFound is returned when an OpenAPI document lacks the
	// requested operation.
	ErrOperationNotFound = errors.New("textform: operation not found")
)
