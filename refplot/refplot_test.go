package refplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optloci/loci"
	"github.com/katalvlaran/optloci/pu"
	"github.com/katalvlaran/optloci/refplot"
)

// fixtures returns the reference IPMSM solver and its base values.
func fixtures(t *testing.T) (*loci.Solver, pu.Base) {
	t.Helper()

	s, err := loci.New(loci.MotorParams{
		PolePairs: 3,
		Ld:        0.036,
		Lq:        0.051,
		Machine:   loci.IPMSM{PsiF: 0.545},
	})
	require.NoError(t, err)

	base, err := pu.New(pu.Ratings{Voltage: 370, Current: 4.3, Frequency: 75, PolePairs: 3})
	require.NoError(t, err)

	return s, base
}

// TestFigures_Build verifies each figure builds without error for a
// sweep that populates both loci.
func TestFigures_Build(t *testing.T) {
	s, base := fixtures(t)

	p, err := refplot.CurrentPlane(s, 20, 25, base)
	require.NoError(t, err)
	assert.NotNil(t, p)

	p, err = refplot.TorqueVsDAxis(s, 20, 25, base)
	require.NoError(t, err)
	assert.NotNil(t, p)

	p, err = refplot.TorqueVsMagnitude(s, 20, 25, base)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

// TestFigures_EmptyMTPV verifies the MTPV series is dropped silently
// below the flux-weakening knee (no error).
func TestFigures_EmptyMTPV(t *testing.T) {
	s, base := fixtures(t)

	// knee ~ 15.14 A, so a 10 A sweep has no MTPV region.
	p, err := refplot.CurrentPlane(s, 10, 25, base)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

// TestFigures_ErrorPropagation verifies solver and base errors surface
// unchanged.
func TestFigures_ErrorPropagation(t *testing.T) {
	s, base := fixtures(t)

	_, err := refplot.CurrentPlane(s, -1, 25, base)
	assert.ErrorIs(t, err, loci.ErrInvalidArgument, "solver errors must propagate")

	_, err = refplot.TorqueVsMagnitude(s, 20, 25, pu.Base{})
	assert.ErrorIs(t, err, refplot.ErrBadBase, "zero bases must be rejected")
}

// TestSaveAll verifies all three PNG files are written.
func TestSaveAll(t *testing.T) {
	s, base := fixtures(t)
	dir := filepath.Join(t.TempDir(), "figures")

	require.NoError(t, refplot.SaveAll(s, 20, 25, base, dir))

	for _, name := range []string{"current_plane.png", "torque_vs_id.png", "torque_vs_current.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "%s must exist", name)
		assert.Positive(t, info.Size(), "%s must not be empty", name)
	}
}
