// Package loci computes the MTPA and MTPV control loci of synchronous
// machines from their electrical parameters, assuming magnetically linear
// (unsaturated) inductances.
//
// 🚀 What are MTPA / MTPV?
//
//	A current-controlled synchronous drive follows reference curves in the
//	d–q current plane:
//	  • MTPA — Maximum Torque Per Ampere: the locus that reaches each torque
//	    level with the smallest current magnitude.
//	  • MTPV — Maximum Torque Per Voltage: the locus bounding the torque
//	    reachable under a voltage limit in flux-weakening (high-speed)
//	    operation.
//
// ✨ Key features:
//   - closed-form solutions only — no iterative optimization
//   - both machine topologies: SyRM (reluctance) and IPMSM (interior PM)
//   - optional minimum d-axis current floor for SyRM drives
//   - pure, allocation-fresh evaluation: safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/optloci/loci"
//
//	s, err := loci.New(loci.MotorParams{
//	  PolePairs: 3,
//	  Ld:        0.036, // [H]
//	  Lq:        0.051, // [H]
//	  Machine:   loci.IPMSM{PsiF: 0.545}, // [Vs]
//	})
//
//	mtpa, err := s.MTPA(20, 50)     // 50 points up to 20 A peak
//	mtpv, err := s.MTPV(20, 50)     // empty below the flux-weakening knee
//	tau := s.Torque(mtpa[len(mtpa)-1])
//
// All loci are ordered by non-decreasing current magnitude. An empty MTPV
// locus is a defined result ("no MTPV region below the knee"), never an
// error.
//
// Performance: every operation is O(n) in the requested sample count with
// one output allocation.
//
// See example_test.go for runnable scenarios.
package loci
