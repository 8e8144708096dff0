// Package textform builds string-valued forms from declarative field
// definitions. Definitions come from Go literals, JSON/YAML documents or the
// request body of an OpenAPI operation, and turn into a form.Engine whose
// validator enforces max length, e-mail, required and markup rules on the
// trimmed values.
package textform
