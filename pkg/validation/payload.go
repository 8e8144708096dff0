package validation

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formstate/pkg/form"
)

// MapPayload converts an error payload keyed by field path (for example
// "email", "/email", "#/email" or "body.email") into a ValidationResult for a
// form with the given field names. Messages are trimmed and de-duplicated;
// paths that match no field become form-level messages joined with "; ".
// Wrap a rule engine that reports such payloads with it to satisfy the
// form.Validator contract.
func MapPayload(names []string, payload map[string][]string) form.ValidationResult {
	known := make(map[string]struct{}, len(names))
	errs := make(form.FieldErrors, len(names))
	for _, name := range names {
		known[name] = struct{}{}
		errs[name] = []string{}
	}

	var formMessages []string
	for _, path := range sortedKeys(payload) {
		messages := normalizeMessages(payload[path])
		if len(messages) == 0 {
			continue
		}
		name := fieldFromPath(path)
		if _, ok := known[name]; !ok {
			formMessages = append(formMessages, messages...)
			continue
		}
		errs[name] = normalizeMessages(append(errs[name], messages...))
	}

	return form.ValidationResult{
		FieldErrors: errs,
		FormError:   strings.Join(normalizeMessages(formMessages), "; "),
	}
}

func fieldFromPath(path string) string {
	clean := strings.TrimLeft(strings.TrimSpace(path), "#/.$")
	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	for len(parts) > 1 {
		switch strings.ToLower(parts[0]) {
		case "body", "request", "payload", "data", "attributes", "properties":
			parts = parts[1:]
			continue
		}
		break
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.ReplaceAll(strings.ReplaceAll(parts[0], "~1", "/"), "~0", "~")
}

func normalizeMessages(messages []string) []string {
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

func sortedKeys(payload map[string][]string) []string {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
