package usecase

import "errors"

// Business conditions, not defects. Handlers map these to user-facing
// HTTP statuses instead of 500s.
var (
	// ErrNoBedsAvailable means every bed is occupied for the requested
	// date range.
	ErrNoBedsAvailable = errors.New("no beds available for the selected dates")

	// ErrBedConflict means the reservation lost the availability race:
	// another confirmed reservation took the bed between resolve and
	// write. The caller should retry with fresh availability.
	ErrBedConflict = errors.New("bed is no longer available for the selected dates, please retry")
)
