package draft

import "errors"

// Workflow errors are values, never panics; every failure leaves the
// state machine in a valid state.
var (
	// Configuration: the extraction capability is unreachable. The
	// attempted action fails; the workflow stays where it was.
	ErrNotConfigured = errors.New("draft: AI capability is not configured")

	// User input errors, recoverable by editing and resubmitting.
	ErrEmptyDescription = errors.New("draft: description is empty")
	ErrExtraction       = errors.New("draft: could not interpret description")

	// State errors.
	ErrBusy        = errors.New("draft: a request is already in flight")
	ErrDraftActive = errors.New("draft: a draft is already in progress")
	ErrNoDraft     = errors.New("draft: no active draft")
	ErrNoImage     = errors.New("draft: no image selected")
	ErrInvalid     = errors.New("draft: draft failed validation")

	// Generic capability error on image generation; the merchant picks a
	// different source. Quota failures never reach callers as errors.
	ErrImageGeneration = errors.New("draft: image generation failed")
)
