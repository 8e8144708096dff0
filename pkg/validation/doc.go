// Package validation provides rule-based validators for text forms. Rules are
// small functions over a trimmed string value; Text composes them into a
// form.Validator that reports one message per failing rule and a shared
// form-level error whenever any field fails.
package validation
