package service

import "time"

// Query modes and outcomes recorded by ListingRecorder.
const (
	QueryModeArea  = "area"
	QueryModeOwner = "owner"

	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// ListingRecorder records listing query and write activity.
type ListingRecorder interface {
	ObserveQuery(mode, outcome string, elapsed time.Duration, results int)
	ObserveWrite(op, outcome string)
}
