package pager

import "time"

// Status is the lifecycle state of a Session.
type Status string

const (
	StatusActive       Status = "active"
	StatusAwaitingJump Status = "awaiting_jump"
	StatusClosed       Status = "closed"
	StatusExpired      Status = "expired"
)

// Terminal reports whether the status permits no further state mutation.
func (s Status) Terminal() bool {
	return s == StatusClosed || s == StatusExpired
}

// Session is the live pagination context for one originating request.
// It is owned exclusively by the controller goroutine that created it;
// no other component reads or writes it while the session is live.
type Session struct {
	ID       string
	OwnerID  string
	List     Snapshot
	State    PageState
	Status   Status
	Deadline time.Time

	// Artifact is the writable representation of the current page.
	Artifact ArtifactRef

	// ArtifactGone records that the artifact was deleted out from under
	// the session. Once set, commits are skipped rather than re-attempted.
	ArtifactGone bool
}
