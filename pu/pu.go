package pu

import (
	"errors"
	"math"
)

// ErrInvalidRating indicates a non-positive or non-finite nominal rating.
var ErrInvalidRating = errors.New("pu: ratings must be positive and finite")

// Ratings holds the nominal (nameplate) values of a machine.
type Ratings struct {
	// Voltage is the nominal line-to-line RMS voltage [V].
	Voltage float64
	// Current is the nominal RMS line current [A].
	Current float64
	// Frequency is the nominal supply frequency [Hz].
	Frequency float64
	// PolePairs is the number of magnetic pole pairs.
	PolePairs int
}

// Base holds peak-valued per-unit base quantities derived from Ratings.
type Base struct {
	Voltage     float64 // peak phase voltage [V]
	Current     float64 // peak phase current [A]
	AngularFreq float64 // electrical angular frequency [rad/s]
	Flux        float64 // flux linkage [Vs]
	Power       float64 // apparent power [W]
	Torque      float64 // torque [Nm]
	Impedance   float64 // impedance [Ohm]
	Inductance  float64 // inductance [H]
}

// New derives the base values from r.
//
// Contract: Voltage, Current, Frequency > 0 and finite, PolePairs >= 1.
// Violations return ErrInvalidRating.
func New(r Ratings) (Base, error) {
	if !posFinite(r.Voltage) || !posFinite(r.Current) || !posFinite(r.Frequency) || r.PolePairs <= 0 {
		return Base{}, ErrInvalidRating
	}

	b := Base{
		Voltage:     math.Sqrt(2.0/3.0) * r.Voltage,
		Current:     math.Sqrt2 * r.Current,
		AngularFreq: 2 * math.Pi * r.Frequency,
	}
	b.Flux = b.Voltage / b.AngularFreq
	b.Power = 1.5 * b.Voltage * b.Current
	b.Torque = float64(r.PolePairs) * b.Power / b.AngularFreq
	b.Impedance = b.Voltage / b.Current
	b.Inductance = b.Flux / b.Current

	return b, nil
}

// posFinite reports whether v is a finite positive number.
func posFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
