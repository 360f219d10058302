package timeline

import "errors"

var (
	// ErrNoActiveComposition is returned when a mutating operation runs without a bound composition
	ErrNoActiveComposition = errors.New("no active composition")

	// ErrInvalidDuration is returned for negative seconds or a non-positive resolved frame count
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidTimeFormat is returned when a time string does not use an "Ns" or "Nms" suffix
	ErrInvalidTimeFormat = errors.New("invalid time format")
)
