package parking

import "errors"

var (
	// ErrInvalidClass is returned for a vehicle class outside the configured set.
	ErrInvalidClass = errors.New("invalid vehicle class")

	// ErrSlotUnavailable is returned when a zone has no free slot.
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrInvalidInput is returned for an empty vehicle number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when no occupied slot matches a vehicle number.
	ErrNotFound = errors.New("vehicle not found")

	// ErrInvalidState is returned for an occupy/vacate that violates the
	// slot state machine. It indicates a caller sequencing bug and is
	// never retried.
	ErrInvalidState = errors.New("invalid slot state")

	// ErrUnknownRate is returned when a zone has no configured rate.
	ErrUnknownRate = errors.New("unknown rate")
)
