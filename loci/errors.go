package loci

import "errors"

// Sentinel errors for solver construction and locus evaluation.
var (
	// ErrInvalidParameter indicates physically invalid motor parameters:
	// non-positive inductance or pole-pair count, a missing topology
	// variant, non-positive magnet flux for IPMSM, or non-finite values.
	ErrInvalidParameter = errors.New("loci: invalid motor parameters")

	// ErrInvalidArgument indicates an invalid sweep request: maximum
	// current not positive (or not finite), or fewer than two samples.
	ErrInvalidArgument = errors.New("loci: sweep requires iMax > 0 and n >= 2")

	// ErrNumericDomain indicates the MTPV quadratic produced a negative
	// discriminant, i.e. the requested current range is inconsistent with
	// the machine parameters.
	ErrNumericDomain = errors.New("loci: negative discriminant in MTPV solve")
)
