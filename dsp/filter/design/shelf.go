package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// shelfGains returns the pole and zero scale factors of the second-order
// shelf. The response reaches sqrt(g)-like midpoint gain G at the cutoff,
// clamped to keep the shelf slope well defined for large boosts and cuts.
func shelfGains(g float64) (gd, gn float64) {
	var mid float64

	switch {
	case g > 2:
		mid = g / math.Sqrt2
	case g < 0.5:
		mid = g * math.Sqrt2
	default:
		mid = math.Sqrt(g)
	}

	gd = math.Pow((mid*mid-1)/(g*g-mid*mid), 0.25)

	return gd, gd * math.Sqrt(g)
}

func lowShelf(p iir.Parameters, order int) (*iir.Filter, error) {
	g, err := requireGain(p)
	if err != nil {
		return nil, err
	}

	w := prewarp(p)

	switch order {
	case 1:
		if g > 1 {
			return finish(p, []float64{g*w + 1, g*w - 1}, []float64{w - 1}, w+1)
		}

		return finish(p, []float64{g * (w + 1), g * (w - 1)}, []float64{w - g}, w+g)
	case 2:
		if g == 1 {
			return finish(p, []float64{1, 0, 0}, []float64{0, 0}, 1)
		}

		gd, gn := shelfGains(g)
		dd, nn := gd*gd*w*w, gn*gn*w*w
		ds, ns := math.Sqrt2*gd*w, math.Sqrt2*gn*w

		return finish(p,
			[]float64{nn + ns + 1, 2 * (nn - 1), nn - ns + 1},
			[]float64{2 * (dd - 1), dd - ds + 1},
			dd+ds+1)
	default:
		return nil, fmt.Errorf("%w: low shelf order %d", ErrUnsupportedOrder, order)
	}
}

func highShelf(p iir.Parameters, order int) (*iir.Filter, error) {
	g, err := requireGain(p)
	if err != nil {
		return nil, err
	}

	w := prewarp(p)

	switch order {
	case 1:
		if g > 1 {
			return finish(p, []float64{w + g, w - g}, []float64{w - 1}, w+1)
		}

		return finish(p, []float64{g * (w + 1), g * (w - 1)}, []float64{w*g - 1}, w*g+1)
	case 2:
		if g == 1 {
			return finish(p, []float64{1, 0, 0}, []float64{0, 0}, 1)
		}

		gd, gn := shelfGains(g)
		w2 := w * w
		ds, ns := math.Sqrt2*gd*w, math.Sqrt2*gn*w

		return finish(p,
			[]float64{w2 + ns + gn*gn, 2 * (w2 - gn*gn), w2 - ns + gn*gn},
			[]float64{2 * (w2 - gd*gd), w2 - ds + gd*gd},
			w2+ds+gd*gd)
	default:
		return nil, fmt.Errorf("%w: high shelf order %d", ErrUnsupportedOrder, order)
	}
}
