package engine

import "errors"

// Cycle error classes. Fetch and delivery failures are isolated to one brand
// or one message; persistence failures abort the cycle.
var (
	ErrFetch           = errors.New("fetch failed")
	ErrPersistence     = errors.New("persistence failed")
	ErrDelivery        = errors.New("delivery failed")
	ErrCycleInProgress = errors.New("cycle already in progress")
)
