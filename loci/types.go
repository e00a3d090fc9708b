// Package loci - machine topology variants, motor parameters, and the
// Locus sequence type shared by the MTPA/MTPV solvers.
package loci

// Machine is the closed set of supported machine topologies. Exactly two
// variants exist: SyRM and IPMSM. The variant carries the data that only
// its formulas use, so topology-specific behavior is part of the type
// rather than an optional field probed at call time.
type Machine interface {
	// machineVariant seals the set; only SyRM and IPMSM implement it.
	machineVariant()
}

// SyRM selects the synchronous reluctance branch: no permanent magnet,
// zero magnet flux linkage.
type SyRM struct {
	// IDMin, when non-nil, is the minimum d-axis current [A] floored onto
	// every MTPA d-axis sample. nil disables clamping entirely; a non-nil
	// zero still clamps negative excursions to zero - the two are not
	// interchangeable.
	IDMin *float64
}

func (SyRM) machineVariant() {}

// IPMSM selects the interior permanent-magnet branch.
type IPMSM struct {
	// PsiF is the permanent-magnet flux linkage [Vs]. Must be positive;
	// a machine without magnet flux is a SyRM, not an IPMSM.
	PsiF float64
}

func (IPMSM) machineVariant() {}

// MotorParams holds the electrical parameters of a synchronous machine.
// Magnetic saturation is not modeled: Ld and Lq are constants.
type MotorParams struct {
	// PolePairs is the number of magnetic pole pairs. Must be positive.
	PolePairs int
	// Ld is the direct-axis inductance [H]. Must be positive.
	Ld float64
	// Lq is the quadrature-axis inductance [H]. Must be positive.
	Lq float64
	// Machine is the topology variant (SyRM or IPMSM). Must be non-nil.
	Machine Machine
}

// Locus is an ordered sequence of stator current space vectors [A].
// The real part of each element is the d-axis component, the imaginary
// part the q-axis component. Elements are ordered by non-decreasing
// current magnitude; index 0 is the lowest-magnitude point.
//
// An empty Locus is a defined result: for an IPMSM below the
// flux-weakening knee there is no MTPV region, and MTPV returns an empty
// locus with a nil error.
type Locus []complex128

// DAxis returns the d-axis components of the locus as a fresh slice.
func (l Locus) DAxis() []float64 {
	out := make([]float64, len(l))
	for k, i := range l {
		out[k] = real(i)
	}

	return out
}

// QAxis returns the q-axis components of the locus as a fresh slice.
func (l Locus) QAxis() []float64 {
	out := make([]float64, len(l))
	for k, i := range l {
		out[k] = imag(i)
	}

	return out
}

// Magnitudes returns the current magnitudes |i| of the locus as a fresh
// slice. Magnitudes are non-decreasing by construction.
func (l Locus) Magnitudes() []float64 {
	out := make([]float64, len(l))
	for k, i := range l {
		out[k] = abs(i)
	}

	return out
}
