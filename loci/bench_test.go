package loci_test

import (
	"testing"

	"github.com/katalvlaran/optloci/loci"
)

// benchmarkSweep runs one locus sweep per iteration on the reference
// IPMSM, failing on unexpected errors.
func benchmarkSweep(b *testing.B, sweep func(s *loci.Solver) (loci.Locus, error)) {
	s, err := loci.New(loci.MotorParams{
		PolePairs: 3,
		Ld:        0.036,
		Lq:        0.051,
		Machine:   loci.IPMSM{PsiF: 0.545},
	})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = sweep(s); err != nil {
			b.Fatalf("sweep failed: %v", err)
		}
	}
}

// BenchmarkMTPA_Small benchmarks a 100-point MTPA sweep.
func BenchmarkMTPA_Small(b *testing.B) {
	benchmarkSweep(b, func(s *loci.Solver) (loci.Locus, error) { return s.MTPA(20, 100) })
}

// BenchmarkMTPA_Large benchmarks a 10000-point MTPA sweep.
func BenchmarkMTPA_Large(b *testing.B) {
	benchmarkSweep(b, func(s *loci.Solver) (loci.Locus, error) { return s.MTPA(20, 10000) })
}

// BenchmarkMTPV_Small benchmarks a 100-point MTPV sweep above the knee.
func BenchmarkMTPV_Small(b *testing.B) {
	benchmarkSweep(b, func(s *loci.Solver) (loci.Locus, error) { return s.MTPV(20, 100) })
}

// BenchmarkMTPV_Large benchmarks a 10000-point MTPV sweep above the knee.
func BenchmarkMTPV_Large(b *testing.B) {
	benchmarkSweep(b, func(s *loci.Solver) (loci.Locus, error) { return s.MTPV(20, 10000) })
}
