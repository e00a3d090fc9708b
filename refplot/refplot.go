package refplot

import (
	"errors"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/optloci/loci"
	"github.com/katalvlaran/optloci/pu"
)

// ErrBadBase indicates base values unusable for normalization: the
// current and torque bases must be positive.
var ErrBadBase = errors.New("refplot: base current and torque must be positive")

// Figure dimensions shared by all save helpers.
const (
	figWidth  = 6 * vg.Inch
	figHeight = 4 * vg.Inch
)

// CurrentPlane renders the d-q current plane: the MTPA locus, the MTPV
// locus (omitted when empty), and the current-limit arc |i| = iMax,
// all normalized by base.Current.
func CurrentPlane(s *loci.Solver, iMax float64, n int, base pu.Base) (*plot.Plot, error) {
	mtpa, mtpv, err := sweep(s, iMax, n, base)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Optimal reference loci"
	p.X.Label.Text = "i_d (p.u.)"
	p.Y.Label.Text = "i_q (p.u.)"

	series := []interface{}{
		"MTPA", xys(mtpa.DAxis(), mtpa.QAxis(), base.Current, base.Current),
	}
	if len(mtpv) > 0 {
		series = append(series, "MTPV", xys(mtpv.DAxis(), mtpv.QAxis(), base.Current, base.Current))
	}
	series = append(series, "current limit", limitArc(iMax, n, base.Current))

	if err = plotutil.AddLines(p, series...); err != nil {
		return nil, err
	}

	// Crop to the operating quadrant: SyRM loci live at i_d >= 0, IPMSM
	// loci at i_d <= 0.
	iPU := iMax / base.Current
	if minDAxis(mtpa, mtpv) >= 0 {
		p.X.Min, p.X.Max = 0, iPU
	} else {
		p.X.Min, p.X.Max = -iPU, 0
	}
	p.Y.Min, p.Y.Max = 0, iPU

	return p, nil
}

// TorqueVsDAxis renders the d-axis current of both loci against the
// torque developed along them, both in per-unit.
func TorqueVsDAxis(s *loci.Solver, iMax float64, n int, base pu.Base) (*plot.Plot, error) {
	mtpa, mtpv, err := sweep(s, iMax, n, base)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.X.Label.Text = "tau_M (p.u.)"
	p.Y.Label.Text = "i_d (p.u.)"

	series := []interface{}{
		"MTPA", xys(s.Torques(mtpa), mtpa.DAxis(), base.Torque, base.Current),
	}
	if len(mtpv) > 0 {
		series = append(series, "MTPV", xys(s.Torques(mtpv), mtpv.DAxis(), base.Torque, base.Current))
	}
	if err = plotutil.AddLines(p, series...); err != nil {
		return nil, err
	}
	p.X.Min = 0

	return p, nil
}

// TorqueVsMagnitude renders the torque developed along both loci against
// the current magnitude, both in per-unit.
func TorqueVsMagnitude(s *loci.Solver, iMax float64, n int, base pu.Base) (*plot.Plot, error) {
	mtpa, mtpv, err := sweep(s, iMax, n, base)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.X.Label.Text = "i (p.u.)"
	p.Y.Label.Text = "tau_M (p.u.)"

	series := []interface{}{
		"MTPA", xys(mtpa.Magnitudes(), s.Torques(mtpa), base.Current, base.Torque),
	}
	if len(mtpv) > 0 {
		series = append(series, "MTPV", xys(mtpv.Magnitudes(), s.Torques(mtpv), base.Current, base.Torque))
	}
	if err = plotutil.AddLines(p, series...); err != nil {
		return nil, err
	}
	p.X.Min, p.X.Max = 0, iMax/base.Current
	p.Y.Min = 0

	return p, nil
}

// SaveAll renders all three figures and writes them as PNG files into
// dir (created if missing): current_plane.png, torque_vs_id.png and
// torque_vs_current.png.
func SaveAll(s *loci.Solver, iMax float64, n int, base pu.Base, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	figures := []struct {
		name  string
		build func(*loci.Solver, float64, int, pu.Base) (*plot.Plot, error)
	}{
		{"current_plane.png", CurrentPlane},
		{"torque_vs_id.png", TorqueVsDAxis},
		{"torque_vs_current.png", TorqueVsMagnitude},
	}
	for _, fig := range figures {
		p, err := fig.build(s, iMax, n, base)
		if err != nil {
			return err
		}
		if err = p.Save(figWidth, figHeight, filepath.Join(dir, fig.name)); err != nil {
			return err
		}
	}

	return nil
}

// sweep validates the base and computes both loci once per figure.
func sweep(s *loci.Solver, iMax float64, n int, base pu.Base) (mtpa, mtpv loci.Locus, err error) {
	if base.Current <= 0 || base.Torque <= 0 {
		return nil, nil, ErrBadBase
	}
	if mtpa, err = s.MTPA(iMax, n); err != nil {
		return nil, nil, err
	}
	if mtpv, err = s.MTPV(iMax, n); err != nil {
		return nil, nil, err
	}

	return mtpa, mtpv, nil
}

// xys pairs two equally long component slices into plot points, scaling
// each axis by its base value.
func xys(x, y []float64, xBase, yBase float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for k := range x {
		pts[k].X = x[k] / xBase
		pts[k].Y = y[k] / yBase
	}

	return pts
}

// limitArc samples the current-limit half circle iMax*exp(j*theta) for
// theta in [0, pi], mirrored onto the plotted quadrants.
func limitArc(iMax float64, n int, iBase float64) plotter.XYs {
	theta := floats.Span(make([]float64, 2*n), 0, math.Pi)

	pts := make(plotter.XYs, len(theta))
	for k, th := range theta {
		pts[k].X = -iMax * math.Cos(th) / iBase
		pts[k].Y = iMax * math.Sin(th) / iBase
	}

	return pts
}

// minDAxis returns the smallest d-axis component across both loci, or 0
// for empty input.
func minDAxis(loc ...loci.Locus) float64 {
	m := 0.0
	for _, l := range loc {
		for _, i := range l {
			if real(i) < m {
				m = real(i)
			}
		}
	}

	return m
}
