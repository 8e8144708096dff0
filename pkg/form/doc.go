// Package form implements a generic form-state engine. A form is a fixed,
// ordered set of typed field values plus a caller-supplied Validator; the
// engine tracks per-field errors, touched flags and the submission status
// (INITIAL, SUBMISSION_FAILED, SUBMISSION_SUCCEEDED) through a small reducer
// over a sealed action set. Hosts render FieldBinding values and forward
// change, blur and submit events back into the Engine. A successful
// submission is terminal: bindings report Disabled and field mutations return
// ErrFormDisabled. Submit trusts the last validation result rather than
// re-running the validator.
package form
