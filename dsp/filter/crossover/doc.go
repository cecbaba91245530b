// Package crossover splits a signal into frequency bands with
// Linkwitz-Riley filters from the design registry.
//
// The low-pass and high-pass filters of a [Crossover] are factored into
// second-order sections and run as streaming biquad cascades. Their outputs
// sum to an all-pass response, so recombining the bands leaves the
// magnitude unchanged. [MultiBand] cascades two-way stages for three or
// more bands.
//
//	xo, _ := crossover.New(1000, 4, 48000)
//	lo, hi := xo.ProcessSample(x)
package crossover
