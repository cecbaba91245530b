package design

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// bessel returns the reverse Bessel polynomial prototype with unity DC
// gain. The first-order form coincides with Butterworth.
func bessel(p iir.Parameters, order int) ([]float64, []float64, error) {
	var den []float64

	switch order {
	case 1:
		return butterworth(p, 1)
	case 2:
		den = []float64{3, 3, 1}
	case 3:
		den = []float64{15, 15, 6, 1}
	case 4:
		den = []float64{105, 105, 45, 10, 1}
	default:
		return nil, nil, fmt.Errorf("%w: bessel prototype order %d", ErrUnsupportedOrder, order)
	}

	return []float64{den[0]}, den, nil
}
