// Package refplot renders MTPA/MTPV reference curves as per-unit plots.
//
// It is the presentation layer over loci: each function sweeps the two
// loci of a solver and produces one gonum/plot figure with per-unit axes,
// mirroring the three classic views of a drive-design handbook:
//
//  1. CurrentPlane       — the d-q current plane with both loci and the
//     current-limit arc.
//  2. TorqueVsDAxis      — d-axis current versus torque.
//  3. TorqueVsMagnitude  — torque versus current magnitude.
//
// An empty MTPV locus (IPMSM below the flux-weakening knee) simply drops
// that series; it is never an error. Solver errors propagate unwrapped,
// so callers can match them with errors.Is against the loci sentinels.
package refplot
