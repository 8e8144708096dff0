package form

import "github.com/zoobzio/capitan"

// Form lifecycle signals.
var (
	// FieldChanged is emitted after a field value is replaced and re-validated.
	FieldChanged = capitan.NewSignal(
		"form.field.changed",
		"Field value changed",
	)

	// FieldTouched is emitted after a field is marked touched.
	FieldTouched = capitan.NewSignal(
		"form.field.touched",
		"Field touched",
	)

	// SubmissionFailed is emitted when a submit attempt finds errors.
	SubmissionFailed = capitan.NewSignal(
		"form.submission.failed",
		"Submission rejected by validation",
	)

	// SubmissionSucceeded is emitted once, on the transition to the terminal
	// status.
	SubmissionSucceeded = capitan.NewSignal(
		"form.submission.succeeded",
		"Submission accepted",
	)

	// MutationRejected is emitted when an action is refused, for example a
	// change after a successful submission.
	MutationRejected = capitan.NewSignal(
		"form.mutation.rejected",
		"Action rejected",
	)
)

// Field keys for form events.
var (
	// KeyFormID identifies the form instance.
	KeyFormID = capitan.NewStringKey("form_id")

	// KeyField is the field the event refers to.
	KeyField = capitan.NewStringKey("field")

	// KeyStatus is the form status after the event.
	KeyStatus = capitan.NewStringKey("status")

	// KeyError is the rejection reason.
	KeyError = capitan.NewStringKey("error")

	// KeyErrorCount is the number of fields with errors at submit time.
	KeyErrorCount = capitan.NewIntKey("error_count")
)
