package srs

import "errors"

// Sentinel errors returned by the scheduler. Check with errors.Is.
var (
	// ErrInvalidTimestamp is returned when a review is recorded at an
	// instant earlier than the item's last recorded review. It indicates a
	// caller or clock bug; the item is left unchanged.
	ErrInvalidTimestamp = errors.New("srs: review time precedes last review")

	// ErrInvalidOutcome is returned for outcomes outside Fail..Easy.
	ErrInvalidOutcome = errors.New("srs: invalid outcome")
)
