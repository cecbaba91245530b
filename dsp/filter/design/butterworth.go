package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// Fourth-order pole-angle constants, also used by the Chebyshev forms.
var (
	butterworthAlpha = -2 * (math.Cos(5*math.Pi/8) + math.Cos(7*math.Pi/8))
	butterworthBeta  = 2 * (1 + 2*math.Cos(5*math.Pi/8)*math.Cos(7*math.Pi/8))
)

func butterworth(_ iir.Parameters, order int) ([]float64, []float64, error) {
	var den []float64

	switch order {
	case 1:
		den = []float64{1, 1}
	case 2:
		den = []float64{1, math.Sqrt2, 1}
	case 3:
		den = []float64{1, 2, 2, 1}
	case 4:
		den = []float64{1, butterworthAlpha, butterworthBeta, butterworthAlpha, 1}
	default:
		return nil, nil, fmt.Errorf("%w: butterworth prototype order %d", ErrUnsupportedOrder, order)
	}

	return []float64{1}, den, nil
}
