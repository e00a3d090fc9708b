// Package pu derives per-unit base values from the nominal ratings of a
// synchronous machine.
//
// Per-unit normalization divides physical quantities by machine-specific
// base values so that drives of different power ratings become directly
// comparable. The bases follow the peak-valued space-vector convention:
//
//	u   = sqrt(2/3) * U_nom     peak phase voltage
//	i   = sqrt(2)   * I_nom     peak phase current
//	w   = 2*pi * f_nom          angular frequency
//	psi = u / w                 flux linkage
//	P   = 1.5 * u * i           power
//	tau = p * P / w             torque
//	Z   = u / i                 impedance
//	L   = psi / i               inductance
//
// ⚙️ Usage:
//
//	base, err := pu.New(pu.Ratings{
//	  Voltage:   370,  // line-to-line RMS [V]
//	  Current:   4.3,  // RMS [A]
//	  Frequency: 75,   // [Hz]
//	  PolePairs: 3,
//	})
//	idPU := id / base.Current
//
// The package has no state: New is a pure mapping from ratings to bases.
package pu
