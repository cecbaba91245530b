package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// linkwitzRiley returns the squared Butterworth prototype. Low-pass and
// high-pass outputs of the same order sum to a flat magnitude.
func linkwitzRiley(_ iir.Parameters, order int) ([]float64, []float64, error) {
	switch order {
	case 2:
		return []float64{1}, []float64{1, 2, 1}, nil
	case 4:
		return []float64{1}, []float64{1, 2 * math.Sqrt2, 4, 2 * math.Sqrt2, 1}, nil
	default:
		return nil, nil, fmt.Errorf("%w: linkwitz-riley prototype order %d", ErrUnsupportedOrder, order)
	}
}
