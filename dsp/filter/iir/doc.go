// Package iir provides the infinite impulse response filter entity used by
// the coefficient designers in dsp/filter/design.
//
// A [Filter] holds feedback coefficients A and feedforward coefficients B
// of the difference equation
//
//	y[n] = B[0]*x[n] + ... + B[N]*x[n-N] - A[0]*y[n-1] - ... - A[N-1]*y[n-N]
//
// together with the numerator and denominator polynomials in z and their
// roots (zeros and poles), which are computed once at construction.
// Filters are immutable and safe for concurrent use.
//
// [Parameters] describes the design request (sample rate, cutoff and the
// optional order, bandwidth, Q, gain and ripple) and is built with
// functional options.
package iir
