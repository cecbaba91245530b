package design

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// variableQ is the second-order prototype Q*(s^2 + s/Q + 1) with unity DC
// gain and a resonance set by Q.
func variableQ(p iir.Parameters, order int) ([]float64, []float64, error) {
	if order != 2 {
		return nil, nil, fmt.Errorf("%w: variable-Q prototype order %d", ErrUnsupportedOrder, order)
	}

	q, err := requireQ(p)
	if err != nil {
		return nil, nil, err
	}

	return []float64{q}, []float64{q, 1, q}, nil
}
