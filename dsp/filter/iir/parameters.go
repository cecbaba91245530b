package iir

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
)

var (
	// ErrInvalidSampleRate is returned when the sample rate is not a
	// positive finite number.
	ErrInvalidSampleRate = errors.New("iir: sample rate must be > 0")

	// ErrInvalidCutoff is returned when the cutoff frequency lies outside
	// [0, sampleRate/2].
	ErrInvalidCutoff = errors.New("iir: cutoff must be within [0, sampleRate/2]")

	// ErrInvalidParameter is returned when an optional parameter holds a
	// non-finite value.
	ErrInvalidParameter = errors.New("iir: invalid parameter")
)

type optionalField uint8

const (
	hasOrder optionalField = 1 << iota
	hasBandwidth
	hasQ
	hasGain
	hasRipple
)

// Parameters describes a filter design request. The zero value is not
// valid; use [NewParameters].
type Parameters struct {
	sampleRate float64
	cutoff     float64
	order      int
	bandwidth  float64
	q          float64
	gain       float64
	ripple     float64
	set        optionalField
}

// ParameterOption sets an optional field of [Parameters].
type ParameterOption func(*Parameters)

// WithOrder sets the filter order.
func WithOrder(order int) ParameterOption {
	return func(p *Parameters) {
		p.order = order
		p.set |= hasOrder
	}
}

// WithBandwidth sets the bandwidth in Hz used by band-pass, band-stop,
// notch, all-pass and equalization designs.
func WithBandwidth(hz float64) ParameterOption {
	return func(p *Parameters) {
		p.bandwidth = hz
		p.set |= hasBandwidth
	}
}

// WithQ sets the quality factor used by the variable-Q family.
func WithQ(q float64) ParameterOption {
	return func(p *Parameters) {
		p.q = q
		p.set |= hasQ
	}
}

// WithLinearGain sets the linear amplitude gain used by shelf and
// equalization designs.
func WithLinearGain(g float64) ParameterOption {
	return func(p *Parameters) {
		p.gain = g
		p.set |= hasGain
	}
}

// WithGainDB sets the gain in dB (20*log10 convention).
func WithGainDB(db float64) ParameterOption {
	return WithLinearGain(core.DBToLinear(db))
}

// WithRipple sets the ripple in dB used by the Chebyshev families.
func WithRipple(db float64) ParameterOption {
	return func(p *Parameters) {
		p.ripple = db
		p.set |= hasRipple
	}
}

// NewParameters returns design parameters for the given sample rate and
// cutoff frequency (both in Hz). The result is not validated; designers
// call [Parameters.Validate] before use.
func NewParameters(sampleRate, cutoff float64, opts ...ParameterOption) Parameters {
	p := Parameters{sampleRate: sampleRate, cutoff: cutoff}
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

// SampleRate returns the sample rate in Hz.
func (p Parameters) SampleRate() float64 { return p.sampleRate }

// Cutoff returns the cutoff (or center) frequency in Hz.
func (p Parameters) Cutoff() float64 { return p.cutoff }

// Order returns the filter order and whether it was set.
func (p Parameters) Order() (int, bool) { return p.order, p.set&hasOrder != 0 }

// Bandwidth returns the bandwidth in Hz and whether it was set.
func (p Parameters) Bandwidth() (float64, bool) { return p.bandwidth, p.set&hasBandwidth != 0 }

// Q returns the quality factor and whether it was set.
func (p Parameters) Q() (float64, bool) { return p.q, p.set&hasQ != 0 }

// LinearGain returns the linear gain and whether it was set.
func (p Parameters) LinearGain() (float64, bool) { return p.gain, p.set&hasGain != 0 }

// Ripple returns the ripple in dB and whether it was set.
func (p Parameters) Ripple() (float64, bool) { return p.ripple, p.set&hasRipple != 0 }

// Validate checks the sample rate, the cutoff range and that every
// optional value that was set is finite.
func (p Parameters) Validate() error {
	if !(p.sampleRate > 0) || math.IsInf(p.sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, p.sampleRate)
	}

	if !(p.cutoff >= 0 && p.cutoff <= p.sampleRate/2) {
		return fmt.Errorf("%w: %v Hz at %v Hz", ErrInvalidCutoff, p.cutoff, p.sampleRate)
	}

	checks := []struct {
		name  string
		flag  optionalField
		value float64
	}{
		{"bandwidth", hasBandwidth, p.bandwidth},
		{"q", hasQ, p.q},
		{"gain", hasGain, p.gain},
		{"ripple", hasRipple, p.ripple},
	}
	for _, c := range checks {
		if p.set&c.flag != 0 && (math.IsNaN(c.value) || math.IsInf(c.value, 0)) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidParameter, c.name, c.value)
		}
	}

	return nil
}

func (p Parameters) String() string {
	s := fmt.Sprintf("fs=%g fc=%g", p.sampleRate, p.cutoff)
	if v, ok := p.Order(); ok {
		s += fmt.Sprintf(" order=%d", v)
	}
	if v, ok := p.Bandwidth(); ok {
		s += fmt.Sprintf(" bw=%g", v)
	}
	if v, ok := p.Q(); ok {
		s += fmt.Sprintf(" q=%g", v)
	}
	if v, ok := p.LinearGain(); ok {
		s += fmt.Sprintf(" gain=%g", v)
	}
	if v, ok := p.Ripple(); ok {
		s += fmt.Sprintf(" ripple=%g", v)
	}
	return s
}
