package textform

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromOpenAPI derives text fields from the request body of operationID. Only
// string properties of an object schema become fields; maxLength, the email
// format and the required list map onto TextValidation, and title and
// description onto label and help. Fields are sorted by name.
func FromOpenAPI(ctx context.Context, raw []byte, operationID string) ([]TextField, error) {
	if len(raw) == 0 {
		return nil, errors.New("textform: openapi document is empty")
	}
	opID := strings.TrimSpace(operationID)
	if opID == "" {
		return nil, errors.New("textform: operation id is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("textform: load openapi document: %w", err)
	}

	operation := findOperation(doc, opID)
	if operation == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, opID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil || (!hasType(schema.Type, "object") && len(schema.Properties) == 0) {
		return nil, fmt.Errorf("textform: operation %q has no object request body", opID)
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]TextField, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		if prop.Type != nil && len(prop.Type.Slice()) > 0 && !hasType(prop.Type, "string") {
			continue
		}

		field := TextField{
			Name:   name,
			Label:  strings.TrimSpace(prop.Title),
			Help:   strings.TrimSpace(prop.Description),
			Secret: prop.Format == "password",
		}
		validate := TextValidation{Email: prop.Format == "email"}
		if prop.MaxLength != nil {
			validate.MaxLength = clampLength(*prop.MaxLength)
		}
		if _, ok := required[name]; ok {
			validate.Required = true
		}
		if validate != (TextValidation{}) {
			field.Validate = &validate
		}
		fields = append(fields, field)
	}

	return Check(fields)
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func hasType(types *openapi3.Types, want string) bool {
	if types == nil {
		return false
	}
	for _, value := range types.Slice() {
		if value == want {
			return true
		}
	}
	return false
}

func clampLength(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
