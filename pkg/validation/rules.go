package validation

import (
	"fmt"
	"html"
	"sync"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// Default messages reported by the built-in rules.
const (
	MessageRequired  = "Please fill in this field before continuing."
	MessageEmail     = "Please provide a valid e-mail address."
	MessageMarkup    = "Please remove HTML markup from this field."
	MessageMaxLength = "Please provide a value no longer than %d characters."
)

// Rule checks a single, already trimmed value and returns a message, or ""
// when the value passes.
type Rule func(value string) string

var (
	emailOnce    sync.Once
	emailChecker *playground.Validate
	markupOnce   sync.Once
	markupPolicy *bluemonday.Policy
)

// Required rejects empty values.
func Required() Rule {
	return func(value string) string {
		if value == "" {
			return MessageRequired
		}
		return ""
	}
}

// MaxLength rejects values longer than limit characters. Non-positive limits
// disable the rule.
func MaxLength(limit int) Rule {
	return func(value string) string {
		if limit <= 0 {
			return ""
		}
		if utf8.RuneCountInString(value) > limit {
			return fmt.Sprintf(MessageMaxLength, limit)
		}
		return ""
	}
}

// Email rejects non-empty values that are not e-mail addresses. Empty values
// pass; combine with Required to demand one.
func Email() Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if err := emailValidator().Var(value, "email"); err != nil {
			return MessageEmail
		}
		return ""
	}
}

// NoMarkup rejects values that carry HTML elements. Plain text containing
// entities or stray angle brackets passes.
func NoMarkup() Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if html.UnescapeString(strictPolicy().Sanitize(value)) != value {
			return MessageMarkup
		}
		return ""
	}
}

// Message overrides the message reported by rule.
func Message(rule Rule, message string) Rule {
	return func(value string) string {
		if rule == nil || rule(value) == "" {
			return ""
		}
		return message
	}
}

func emailValidator() *playground.Validate {
	emailOnce.Do(func() {
		emailChecker = playground.New()
	})
	return emailChecker
}

func strictPolicy() *bluemonday.Policy {
	markupOnce.Do(func() {
		markupPolicy = bluemonday.StrictPolicy()
	})
	return markupPolicy
}
