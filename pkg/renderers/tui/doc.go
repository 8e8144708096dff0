// Package tui hosts text forms in a terminal. Host turns each field binding
// into a prompt through a PromptDriver (survey by default), forwards answers
// as change and blur events, and resubmits until the form engine accepts the
// values.
package tui
