package pu_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optloci/pu"
)

// referenceRatings are the nameplate values used across the tests
// (370 V line-to-line RMS, 4.3 A RMS, 75 Hz, 3 pole pairs).
func referenceRatings() pu.Ratings {
	return pu.Ratings{Voltage: 370, Current: 4.3, Frequency: 75, PolePairs: 3}
}

// TestNew_InvalidRatings verifies rejection of non-positive and
// non-finite nameplate values.
func TestNew_InvalidRatings(t *testing.T) {
	cases := []struct {
		name string
		r    pu.Ratings
	}{
		{"zero voltage", pu.Ratings{Voltage: 0, Current: 4.3, Frequency: 75, PolePairs: 3}},
		{"negative current", pu.Ratings{Voltage: 370, Current: -1, Frequency: 75, PolePairs: 3}},
		{"zero frequency", pu.Ratings{Voltage: 370, Current: 4.3, Frequency: 0, PolePairs: 3}},
		{"NaN voltage", pu.Ratings{Voltage: math.NaN(), Current: 4.3, Frequency: 75, PolePairs: 3}},
		{"infinite frequency", pu.Ratings{Voltage: 370, Current: 4.3, Frequency: math.Inf(1), PolePairs: 3}},
		{"zero pole pairs", pu.Ratings{Voltage: 370, Current: 4.3, Frequency: 75, PolePairs: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pu.New(tc.r)
			assert.ErrorIs(t, err, pu.ErrInvalidRating)
		})
	}
}

// TestNew_BaseValues checks the derived bases against hand-computed
// values for the reference ratings.
func TestNew_BaseValues(t *testing.T) {
	b, err := pu.New(referenceRatings())
	require.NoError(t, err)

	const tol = 1e-9
	assert.InDelta(t, math.Sqrt(2.0/3.0)*370, b.Voltage, tol, "peak phase voltage")
	assert.InDelta(t, math.Sqrt2*4.3, b.Current, tol, "peak phase current")
	assert.InDelta(t, 2*math.Pi*75, b.AngularFreq, tol, "angular frequency")
}

// TestNew_DerivedIdentities verifies the coupling identities between the
// derived bases.
func TestNew_DerivedIdentities(t *testing.T) {
	b, err := pu.New(referenceRatings())
	require.NoError(t, err)

	const tol = 1e-12
	assert.InDelta(t, b.Voltage/b.AngularFreq, b.Flux, tol, "flux = voltage/omega")
	assert.InDelta(t, 1.5*b.Voltage*b.Current, b.Power, tol, "power = 1.5*u*i")
	assert.InDelta(t, 3*b.Power/b.AngularFreq, b.Torque, tol, "torque = p*P/omega")
	assert.InDelta(t, b.Voltage/b.Current, b.Impedance, tol, "impedance = u/i")
	assert.InDelta(t, b.Flux/b.Current, b.Inductance, tol, "inductance = psi/i")
}
