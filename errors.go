package turtle

import "errors"

var (
	// ErrInvalidArgument is returned for specs with a negative order, a
	// non-positive or non-finite length, a non-finite start pose or an
	// unknown kind.
	ErrInvalidArgument = errors.New("turtle: invalid argument")

	// ErrResourceLimitExceeded is returned when a curve would need more
	// memory than the generator is configured to allow.
	ErrResourceLimitExceeded = errors.New("turtle: resource limit exceeded")

	// ErrStopped is returned when the sink ended generation early.
	ErrStopped = errors.New("turtle: stopped by sink")
)
