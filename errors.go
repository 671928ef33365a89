package pager

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNotFound indicates the target artifact no longer exists. It is
	// the only sink failure the controller recovers from; call sites
	// match it with errors.Is rather than by message text.
	ErrNotFound = errors.New("artifact not found")

	// ErrPromptDismissed indicates the actor abandoned a prompt without
	// submitting anything.
	ErrPromptDismissed = errors.New("prompt dismissed")

	// ErrValidation indicates invalid controller configuration.
	ErrValidation = errors.New("validation error")
)
