package lineshape

import "errors"

// Errors returned by line-shape models and operators.
var (
	// ErrDomainTooShort is returned when a domain spacing is needed but the
	// domain has fewer than two samples.
	ErrDomainTooShort = errors.New("lineshape: domain needs at least 2 samples")

	// ErrResolutionTooShort is returned when a response array is shorter than
	// the resolution it is convolved with.
	ErrResolutionTooShort = errors.New("lineshape: response shorter than resolution")

	// ErrDegenerateResolution is returned when the resolution sums to zero
	// and cannot normalize a convolution.
	ErrDegenerateResolution = errors.New("lineshape: resolution sums to zero")

	// ErrIllFormedDomain is returned when a domain cannot be mirrored because
	// it lacks positive or negative samples.
	ErrIllFormedDomain = errors.New("lineshape: domain needs positive and negative samples")

	ErrEmptyData      = errors.New("lineshape: empty data")
	ErrLengthMismatch = errors.New("lineshape: length mismatch")
)
