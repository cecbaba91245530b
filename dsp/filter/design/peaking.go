package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// peakingTerms returns alpha = tan(pi*bw/fs) and beta = -cos(2*pi*fc/fs),
// the two quantities shared by the second-order all-pass, notch and
// equalization forms.
func peakingTerms(p iir.Parameters, bw float64) (alpha, beta float64) {
	fs := p.SampleRate()

	return math.Tan(math.Pi * bw / fs), -math.Cos(2 * math.Pi * p.Cutoff() / fs)
}

func allPass(p iir.Parameters, order int) (*iir.Filter, error) {
	switch order {
	case 1:
		g := prewarp(p)

		return finish(p, []float64{g - 1, g + 1}, []float64{g - 1}, g+1)
	case 2:
		bw, err := requireBandwidth(p)
		if err != nil {
			return nil, err
		}

		alpha, beta := peakingTerms(p, bw)

		return finish(p,
			[]float64{1 - alpha, 2 * beta, 1 + alpha},
			[]float64{2 * beta, 1 - alpha},
			1+alpha)
	default:
		return nil, fmt.Errorf("%w: all-pass order %d", ErrUnsupportedOrder, order)
	}
}

func notch(p iir.Parameters, order int) (*iir.Filter, error) {
	if order != 2 {
		return nil, fmt.Errorf("%w: notch order %d", ErrUnsupportedOrder, order)
	}

	bw, err := requireBandwidth(p)
	if err != nil {
		return nil, err
	}

	alpha, beta := peakingTerms(p, bw)

	return finish(p,
		[]float64{1, 2 * beta, 1},
		[]float64{2 * beta, 1 - alpha},
		1+alpha)
}

// equalization is a peaking filter with gain g at the center frequency and
// unity gain far from it. Cuts mirror the boost form so that the response
// is symmetric in dB.
func equalization(p iir.Parameters, order int) (*iir.Filter, error) {
	if order != 2 {
		return nil, fmt.Errorf("%w: equalization order %d", ErrUnsupportedOrder, order)
	}

	bw, err := requireBandwidth(p)
	if err != nil {
		return nil, err
	}

	g, err := requireGain(p)
	if err != nil {
		return nil, err
	}

	alpha, beta := peakingTerms(p, bw)

	if g < 1 {
		return finish(p,
			[]float64{g * (1 + alpha), 2 * beta * g, g * (1 - alpha)},
			[]float64{2 * beta * g, g - alpha},
			alpha+g)
	}

	return finish(p,
		[]float64{1 + g*alpha, 2 * beta, 1 - g*alpha},
		[]float64{2 * beta, 1 - alpha},
		1+alpha)
}
