// Package biquad provides second-order sections used to run and inspect a
// designed IIR filter as a cascade.
//
// A [Section] processes one second-order (or first-order, with B2 = A2 = 0)
// transfer function in Direct Form II Transposed. A [Chain] cascades
// sections behind an overall gain; iir.Filter.Sections factors a designed
// filter into such a chain.
package biquad
