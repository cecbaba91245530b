package design

import "github.com/cwbudde/algo-iir/dsp/filter/iir"

// deriver designs one (type, pass type) combination at a validated order.
type deriver func(p iir.Parameters, order int) (*iir.Filter, error)

// prototype returns an analog low-pass numerator and denominator of the
// given order in ascending powers of s, normalized to the cutoff.
type prototype func(p iir.Parameters, order int) (num, den []float64, err error)

func lowPass(proto prototype) deriver {
	return func(p iir.Parameters, order int) (*iir.Filter, error) {
		num, den, err := proto(p, order)
		if err != nil {
			return nil, err
		}

		return analogLowPass(p, num, den)
	}
}

func highPass(proto prototype) deriver {
	return func(p iir.Parameters, order int) (*iir.Filter, error) {
		num, den, err := proto(p, order)
		if err != nil {
			return nil, err
		}

		return analogHighPass(p, num, den)
	}
}

// bandPass builds an order-n band-pass from the order-n/2 prototype.
func bandPass(proto prototype) deriver {
	return func(p iir.Parameters, order int) (*iir.Filter, error) {
		num, den, err := proto(p, order/2)
		if err != nil {
			return nil, err
		}

		return analogBandPass(p, num, den)
	}
}

// bandStop builds an order-n band-stop from the order-n/2 prototype.
func bandStop(proto prototype) deriver {
	return func(p iir.Parameters, order int) (*iir.Filter, error) {
		num, den, err := proto(p, order/2)
		if err != nil {
			return nil, err
		}

		return analogBandStop(p, num, den)
	}
}
