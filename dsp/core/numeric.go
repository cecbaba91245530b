package core

import "math"

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// HzToOmega converts a frequency in Hz to normalized angular frequency in
// radians per sample.
func HzToOmega(freqHz, sampleRate float64) float64 {
	return 2 * math.Pi * freqHz / sampleRate
}

// OmegaToHz converts normalized angular frequency in radians per sample to
// Hz.
func OmegaToHz(omega, sampleRate float64) float64 {
	return omega * sampleRate / (2 * math.Pi)
}
