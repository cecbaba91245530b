package iir

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// ErrInvalidLength is returned by [Filter.ResponseFFT] for grid sizes that
// are not a power of two or are shorter than the coefficient arrays.
var ErrInvalidLength = errors.New("iir: invalid response length")

// Response evaluates Numerator(e^-jw) / Denominator(e^-jw) for each
// normalized angular frequency w in radians per sample (0 to pi covers DC
// to Nyquist).
//
// Because both polynomials are in positive powers of z, the result is the
// complex conjugate of the usual H(e^jw): the magnitude is identical and
// the phase has the opposite sign.
func (f *Filter) Response(omega []float64) []complex128 {
	out := make([]complex128, len(omega))
	for i, w := range omega {
		z := cmplx.Exp(complex(0, -w))
		out[i] = f.num.Evaluate(z) / f.den.Evaluate(z)
	}
	return out
}

// ResponseFFT returns the same response as [Filter.Response] on the
// uniform grid w[k] = 2*pi*k/n for k = 0..n/2. It transforms the
// zero-padded polynomial coefficients, so n must be a power of two and at
// least len(B).
func (f *Filter) ResponseFFT(n int) ([]complex128, error) {
	if n < len(f.b) || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d (need power of two >= %d)", ErrInvalidLength, n, len(f.b))
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("iir: failed to create FFT plan: %w", err)
	}

	numBins, err := coefficientSpectrum(plan, f.num.Coefficients(), n)
	if err != nil {
		return nil, err
	}

	denBins, err := coefficientSpectrum(plan, f.den.Coefficients(), n)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, n/2+1)
	for k := range out {
		out[k] = numBins[k] / denBins[k]
	}

	return out, nil
}

func coefficientSpectrum(plan *algofft.Plan[complex128], coeffs []complex128, n int) ([]complex128, error) {
	padded := make([]complex128, n)
	copy(padded, coeffs)

	bins := make([]complex128, n)
	if err := plan.Forward(bins, padded); err != nil {
		return nil, fmt.Errorf("iir: forward FFT failed: %w", err)
	}

	return bins, nil
}

// ResponseFrequencies returns the frequencies in Hz of the bins returned
// by [Filter.ResponseFFT] for grid size n at the given sample rate.
func ResponseFrequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n/2+1)
	for k := range out {
		out[k] = float64(k) * sampleRate / float64(n)
	}
	return out
}

// Magnitude returns |h[k]| for each response value.
func Magnitude(h []complex128) []float64 {
	if len(h) == 0 {
		return nil
	}

	re := make([]float64, len(h))
	im := make([]float64, len(h))
	for i, c := range h {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(h))
	vecmath.Magnitude(out, re, im)

	return out
}

// MagnitudeDB returns 20*log10(|h[k]|) for each response value. Zero
// magnitude maps to -Inf.
func MagnitudeDB(h []complex128) []float64 {
	out := Magnitude(h)
	for i, v := range out {
		out[i] = core.LinearToDB(v)
	}
	return out
}

// Phase returns arg(h[k]) in radians for each response value.
func Phase(h []complex128) []float64 {
	out := make([]float64, len(h))
	for i, c := range h {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase removes 2*pi discontinuities from a phase sequence in place
// and returns it.
func UnwrapPhase(phase []float64) []float64 {
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] + offset - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		phase[i] += offset
	}
	return phase
}
