package loci

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Solver computes torque and optimal-reference loci for one machine.
// It is immutable after New and safe for concurrent use: every method is
// a pure function of its arguments and the construction-time parameters,
// and every locus is a fresh allocation.
type Solver struct {
	polePairs float64 // p, as float to avoid per-call conversion
	ld        float64 // direct-axis inductance [H]
	lq        float64 // quadrature-axis inductance [H]
	psiF      float64 // PM flux linkage [Vs]; 0 on the SyRM branch
	idMin     float64 // SyRM MTPA d-axis floor [A]; valid iff hasIDMin
	hasIDMin  bool    // whether the SyRM variant carries a floor
	pm        bool    // true on the IPMSM branch
}

// New validates p and constructs a Solver.
//
// Contract:
//   - p.PolePairs >= 1, p.Ld > 0, p.Lq > 0, all finite.
//   - p.Machine is SyRM or IPMSM (nil is rejected).
//   - IPMSM requires PsiF > 0 and Ld != Lq: the MTPA/MTPV closed forms
//     divide by the saliency Ld-Lq, so a non-salient machine has no
//     solution on this branch.
//   - SyRM.IDMin, when set, must be finite.
//
// Violations return ErrInvalidParameter.
func New(p MotorParams) (*Solver, error) {
	if p.PolePairs <= 0 {
		return nil, ErrInvalidParameter
	}
	if !isPosFinite(p.Ld) || !isPosFinite(p.Lq) {
		return nil, ErrInvalidParameter
	}

	s := &Solver{
		polePairs: float64(p.PolePairs),
		ld:        p.Ld,
		lq:        p.Lq,
	}
	switch m := p.Machine.(type) {
	case SyRM:
		if m.IDMin != nil {
			if math.IsNaN(*m.IDMin) || math.IsInf(*m.IDMin, 0) {
				return nil, ErrInvalidParameter
			}
			s.idMin = *m.IDMin
			s.hasIDMin = true
		}
	case IPMSM:
		if !isPosFinite(m.PsiF) {
			return nil, ErrInvalidParameter
		}
		if p.Ld == p.Lq {
			return nil, ErrInvalidParameter
		}
		s.psiF = m.PsiF
		s.pm = true
	default:
		return nil, ErrInvalidParameter
	}

	return s, nil
}

// Torque computes the electromagnetic torque [Nm] produced by the stator
// current space vector i [A]:
//
//	psi = Ld*Re(i) + j*Lq*Im(i) + psiF
//	tau = 1.5 * p * Im(i * conj(psi))
//
// Pure function, defined for any finite input.
func (s *Solver) Torque(i complex128) float64 {
	psi := complex(s.ld*real(i)+s.psiF, s.lq*imag(i))

	return 1.5 * s.polePairs * imag(i*cmplx.Conj(psi))
}

// Torques maps Torque over a locus and returns the torques [Nm] as a
// fresh slice, index-aligned with l.
func (s *Solver) Torques(l Locus) []float64 {
	out := make([]float64, len(l))
	for k, i := range l {
		out[k] = s.Torque(i)
	}

	return out
}

// MTPA computes the Maximum Torque Per Ampere locus up to the current
// magnitude iMax [A], sampled at n points.
//
// Branches:
//   - SyRM: the stationarity condition reduces to equal d/q components,
//     so the d-axis samples ramp linearly from 0 to iMax/sqrt(2) with
//     i_q = i_d. When the variant carries IDMin, each d-axis sample below
//     the floor is raised to it (element-wise; the q-axis samples and the
//     sequence length are unchanged).
//   - IPMSM: the magnitude ramps linearly from 0 to iMax; the d-axis
//     solution is the negative root of the stationarity condition,
//     i_d = -i_a/4 - sqrt(i_a^2/16 + |i|^2/2) with i_a = psiF/(Ld-Lq),
//     and i_q = +sqrt(|i|^2 - i_d^2) (first quadrant).
//
// Errors: ErrInvalidArgument when iMax <= 0 (or not finite) or n < 2.
//
// Complexity: O(n) time, one O(n) output allocation.
func (s *Solver) MTPA(iMax float64, n int) (Locus, error) {
	if err := checkSweep(iMax, n); err != nil {
		return nil, err
	}
	if s.pm {
		return s.mtpaIPMSM(iMax, n), nil
	}

	return s.mtpaSyRM(iMax, n), nil
}

// MTPV computes the Maximum Torque Per Voltage locus up to the current
// magnitude iMax [A], sampled at n points.
//
// Branches:
//   - SyRM: every point lies at the fixed angle atan(Ld/Lq) from the
//     d-axis; the magnitude ramps linearly from 0 to iMax. A reluctance
//     machine has no magnet flux and therefore no flux-weakening knee,
//     so this branch is always populated.
//   - IPMSM with psiF/Ld < iMax: the magnitude ramps linearly from the
//     knee psiF/Ld to iMax; i_d is the negative root of the quadratic
//     a*i_d^2 + b*i_d + c = 0 with
//     k = Lq/(Ld-Lq), a = Ld^2+Lq^2, b = (2+k)*psiF*Ld,
//     c = (1+k)*psiF^2 - (Lq*|i|)^2,
//     and i_q = +sqrt(|i|^2 - i_d^2).
//   - IPMSM with psiF/Ld >= iMax: no MTPV region exists below the knee;
//     the locus is empty and the error nil.
//
// Errors:
//   - ErrInvalidArgument when iMax <= 0 (or not finite) or n < 2.
//   - ErrNumericDomain when the discriminant b^2-4ac of any sample is
//     negative (parameters inconsistent with the requested range).
//
// Complexity: O(n) time, one O(n) output allocation.
func (s *Solver) MTPV(iMax float64, n int) (Locus, error) {
	if err := checkSweep(iMax, n); err != nil {
		return nil, err
	}
	if s.pm {
		return s.mtpvIPMSM(iMax, n)
	}

	return s.mtpvSyRM(iMax, n), nil
}

// mtpaSyRM samples the 45-degree MTPA line of a reluctance machine,
// applying the optional d-axis floor after the q-axis copy so the floor
// never bends the q-axis ramp.
func (s *Solver) mtpaSyRM(iMax float64, n int) Locus {
	grid := floats.Span(make([]float64, n), 0, iMax/math.Sqrt2)

	out := make(Locus, n)
	for k, id := range grid {
		iq := id // q-axis keeps the unclamped ramp
		if s.hasIDMin && id < s.idMin {
			id = s.idMin
		}
		out[k] = complex(id, iq)
	}

	return out
}

// mtpaIPMSM samples the interior-PM MTPA curve over a linear magnitude
// ramp, taking the negative d-axis root of the stationarity condition.
func (s *Solver) mtpaIPMSM(iMax float64, n int) Locus {
	grid := floats.Span(make([]float64, n), 0, iMax)
	ia := s.psiF / (s.ld - s.lq)

	out := make(Locus, n)
	for k, absI := range grid {
		id := -ia/4 - math.Sqrt(ia*ia/16+absI*absI/2)
		out[k] = complex(id, qAxisRoot(absI, id))
	}

	return out
}

// mtpvSyRM samples the fixed-angle MTPV ray of a reluctance machine.
func (s *Solver) mtpvSyRM(iMax float64, n int) Locus {
	grid := floats.Span(make([]float64, n), 0, iMax)
	sin, cos := math.Sincos(math.Atan(s.ld / s.lq))

	out := make(Locus, n)
	for k, absI := range grid {
		out[k] = complex(absI*cos, absI*sin)
	}

	return out
}

// mtpvIPMSM samples the interior-PM MTPV curve from the flux-weakening
// knee psiF/Ld up to iMax, or returns an empty locus when the knee lies
// at or beyond iMax.
func (s *Solver) mtpvIPMSM(iMax float64, n int) (Locus, error) {
	knee := s.psiF / s.ld
	if knee >= iMax {
		return nil, nil // no MTPV region in this current range
	}

	grid := floats.Span(make([]float64, n), knee, iMax)
	k := s.lq / (s.ld - s.lq)
	a := s.ld*s.ld + s.lq*s.lq
	b := (2 + k) * s.psiF * s.ld

	out := make(Locus, n)
	for idx, absI := range grid {
		c := (1+k)*s.psiF*s.psiF - (s.lq*absI)*(s.lq*absI)
		disc := b*b - 4*a*c
		if disc < 0 {
			return nil, ErrNumericDomain
		}
		id := (-b - math.Sqrt(disc)) / (2 * a)
		out[idx] = complex(id, qAxisRoot(absI, id))
	}

	return out, nil
}

// checkSweep validates the per-call sweep arguments shared by MTPA and
// MTPV.
func checkSweep(iMax float64, n int) error {
	if !isPosFinite(iMax) || n < 2 {
		return ErrInvalidArgument
	}

	return nil
}

// qAxisRoot returns the non-negative q-axis component completing a
// current vector of magnitude absI with d-axis component id. The
// radicand is floored at zero: at the endpoints of both IPMSM loci it is
// exactly zero in exact arithmetic and may round slightly negative.
func qAxisRoot(absI, id float64) float64 {
	r := absI*absI - id*id
	if r < 0 {
		r = 0
	}

	return math.Sqrt(r)
}

// isPosFinite reports whether v is a finite positive number. NaN fails
// the comparison, infinities the explicit check.
func isPosFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// abs returns the magnitude of a current space vector.
func abs(i complex128) float64 {
	return math.Hypot(real(i), imag(i))
}
