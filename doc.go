// Package optloci computes optimal current reference loci for synchronous
// electric machines — MTPA and MTPV — and renders them as per-unit
// reference curves for drive control design.
//
// 🚀 What are these loci?
//
//	A vector-controlled synchronous drive steers its current vector along
//	precomputed curves in the d–q plane:
//	  • MTPA (Maximum Torque Per Ampere) minimizes the current needed for
//	    each torque level — the efficient low-speed trajectory.
//	  • MTPV (Maximum Torque Per Voltage) bounds the torque reachable at
//	    the voltage limit — the flux-weakening high-speed trajectory.
//
// ✨ Why choose optloci?
//
//   - Closed-form only – every point from an explicit formula, no solvers
//   - Both topologies – reluctance (SyRM) and interior-PM (IPMSM) machines
//   - Pure functions – immutable solvers, safe for concurrent use
//   - Batteries included – per-unit scaling and publication-ready figures
//
// Everything is organized under four packages:
//
//	loci/        — the core solver: torque evaluation, MTPA and MTPV sweeps
//	pu/          — per-unit base values derived from nameplate ratings
//	refplot/     — gonum/plot figures of the loci in per-unit axes
//	cmd/optloci/ — CLI wrapping the above (flags, YAML config, env vars)
//
// Quick start:
//
//	s, _ := loci.New(loci.MotorParams{
//	  PolePairs: 3, Ld: 0.036, Lq: 0.051,
//	  Machine: loci.IPMSM{PsiF: 0.545},
//	})
//	mtpa, _ := s.MTPA(20, 50)
//	fmt.Println(s.Torque(mtpa[len(mtpa)-1]))
//
// Magnetic saturation is not modeled: inductances are constants. See each
// package's doc.go and example_test.go for details.
//
//	go get github.com/katalvlaran/optloci
package optloci
