// Package design derives IIR filter coefficients for a fixed set of filter
// families and hands the result to [iir.New].
//
// Every family works from the bilinear pre-warping factor
//
//	g = tan(pi * cutoff / sampleRate)
//
// Butterworth, Chebyshev, Bessel, Linkwitz-Riley and variable-Q designs
// start from a low-pass analog prototype normalized to the cutoff. High-pass
// designs substitute s -> 1/s and band designs substitute
// s -> (s^2 + 1) / (s * bandwidth/cutoff) before the prototype is mapped
// onto the z-plane. All-pass, notch, equalization and shelving designs use
// closed-form digital expressions directly.
//
// [Design] looks up the deriver registered for a (type, pass type) pair and
// reports why a request cannot be served. [CreateFilter] is the lenient
// form that returns nil instead of an error.
package design
