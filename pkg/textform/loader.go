package textform

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Fields []TextField `json:"fields" yaml:"fields"`
}

// Parse decodes a JSON or YAML definition document of the form
// `fields: [{name, label, help, validate: {...}}]`. source is only used in
// error messages.
func Parse(data []byte, source string) ([]TextField, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("textform: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = documentFile{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("textform: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}

	fields, err := Check(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("textform: file %s: %w", source, err)
	}
	return fields, nil
}

// LoadFile reads and parses a definition document from disk.
func LoadFile(path string) ([]TextField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textform: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses a definition document from fsys.
func LoadFS(fsys fs.FS, path string) ([]TextField, error) {
	if fsys == nil {
		return nil, fmt.Errorf("textform: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("textform: read %s: %w", path, err)
	}
	return Parse(data, path)
}
