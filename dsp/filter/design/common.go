package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
	"github.com/cwbudde/algo-iir/dsp/poly"
)

var (
	// ErrNotRegistered is returned when no deriver exists for a
	// (type, pass type) pair.
	ErrNotRegistered = errors.New("design: no deriver registered")

	// ErrMissingOrder is returned when a family supports several orders
	// and none was given.
	ErrMissingOrder = errors.New("design: order is required")

	// ErrUnsupportedOrder is returned when the requested order is not in
	// the registered order set.
	ErrUnsupportedOrder = errors.New("design: unsupported order")

	// ErrMissingBandwidth is returned when a design needs a bandwidth.
	ErrMissingBandwidth = errors.New("design: bandwidth is required")

	// ErrMissingQ is returned when a variable-Q design has no Q.
	ErrMissingQ = errors.New("design: Q is required")

	// ErrMissingGain is returned when a shelf or equalization design has no
	// linear gain.
	ErrMissingGain = errors.New("design: linear gain is required")

	// ErrMissingRipple is returned when a Chebyshev design has no ripple.
	ErrMissingRipple = errors.New("design: ripple is required")

	// ErrInvalidParameter is returned when a parameter is present but
	// outside the range a family accepts.
	ErrInvalidParameter = errors.New("design: invalid parameter")
)

// prewarp returns tan(pi*fc/fs).
func prewarp(p iir.Parameters) float64 {
	return math.Tan(math.Pi * p.Cutoff() / p.SampleRate())
}

func requireBandwidth(p iir.Parameters) (float64, error) {
	bw, ok := p.Bandwidth()
	if !ok {
		return 0, ErrMissingBandwidth
	}

	if bw <= 0 || bw >= p.SampleRate()/2 {
		return 0, fmt.Errorf("%w: bandwidth %g Hz must be within (0, %g)", ErrInvalidParameter, bw, p.SampleRate()/2)
	}

	return bw, nil
}

// requireBand validates a band-pass or band-stop request, which needs a
// cutoff strictly inside (0, fs/2) in addition to a bandwidth.
func requireBand(p iir.Parameters) (float64, error) {
	if fc := p.Cutoff(); fc <= 0 || fc >= p.SampleRate()/2 {
		return 0, fmt.Errorf("%w: band center %g Hz must be within (0, %g)", ErrInvalidParameter, fc, p.SampleRate()/2)
	}

	return requireBandwidth(p)
}

func requireQ(p iir.Parameters) (float64, error) {
	q, ok := p.Q()
	if !ok {
		return 0, ErrMissingQ
	}

	if q <= 0 {
		return 0, fmt.Errorf("%w: Q %g must be > 0", ErrInvalidParameter, q)
	}

	return q, nil
}

func requireGain(p iir.Parameters) (float64, error) {
	g, ok := p.LinearGain()
	if !ok {
		return 0, ErrMissingGain
	}

	if g <= 0 {
		return 0, fmt.Errorf("%w: linear gain %g must be > 0", ErrInvalidParameter, g)
	}

	return g, nil
}

func requireRipple(p iir.Parameters) (float64, error) {
	r, ok := p.Ripple()
	if !ok {
		return 0, ErrMissingRipple
	}

	if r <= 0 {
		return 0, fmt.Errorf("%w: ripple %g dB must be > 0", ErrInvalidParameter, r)
	}

	return r, nil
}

// finish divides the raw coefficients by the common denominator d and
// builds the filter.
func finish(p iir.Parameters, b, a []float64, d float64) (*iir.Filter, error) {
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, fmt.Errorf("%w: degenerate denominator for %s", ErrInvalidParameter, p)
	}

	for i := range b {
		b[i] /= d
	}

	for i := range a {
		a[i] /= d
	}

	return iir.New(a, b, p)
}

// bilinear maps an analog transfer function num(s)/den(s), normalized so
// that s = 1 is the cutoff, onto z^-1 polynomials. Coefficients are in
// ascending powers of s and num must not exceed den in degree. The
// returned b and a are not yet normalized; d is the z^0 coefficient of
// the denominator.
func bilinear(num, den []float64, g float64) (b, a []float64, d float64) {
	n := len(den) - 1
	bz := make([]float64, n+1)
	az := make([]float64, n+1)

	diff := poly.NewReal(1, -1)
	sum := poly.NewReal(1, 1)

	for k := 0; k <= n; k++ {
		// (1 - z^-1)^k (1 + z^-1)^(n-k)
		term := poly.One()
		for i := 0; i < k; i++ {
			term = term.Mul(diff)
		}

		for i := k; i < n; i++ {
			term = term.Mul(sum)
		}

		scale := math.Pow(g, float64(n-k))
		for m, c := range term.Coefficients() {
			if k < len(num) {
				bz[m] += num[k] * scale * real(c)
			}

			az[m] += den[k] * scale * real(c)
		}
	}

	return bz, az[1:], az[0]
}

// highPassPrototype substitutes s -> 1/s in num/den.
func highPassPrototype(num, den []float64) ([]float64, []float64) {
	n := len(den)
	hn := make([]float64, n)
	hd := make([]float64, n)

	for i := range n {
		if i < len(num) {
			hn[n-1-i] = num[i]
		}

		hd[n-1-i] = den[i]
	}

	return hn, hd
}

// bandTransform substitutes s -> (s^2 + 1)/(s*bw/fc) in a prototype of
// degree n and clears the s^-n factor, giving a polynomial of degree 2n.
// fc and bw only enter through their ratio.
func bandTransform(c []float64, n int, fc, bw float64) []float64 {
	out := poly.Polynomial{}
	quad := poly.NewReal(1, 0, 1)
	shift := poly.NewReal(0, bw/fc)

	for k := 0; k <= n && k < len(c); k++ {
		if c[k] == 0 {
			continue
		}

		term := poly.NewReal(c[k])
		for i := 0; i < k; i++ {
			term = term.Mul(quad)
		}

		for i := k; i < n; i++ {
			term = term.Mul(shift)
		}

		out = out.Add(term)
	}

	res := make([]float64, 2*n+1)
	for i, v := range out.Coefficients() {
		res[i] = real(v)
	}

	return res
}

func analogLowPass(p iir.Parameters, num, den []float64) (*iir.Filter, error) {
	b, a, d := bilinear(num, den, prewarp(p))

	return finish(p, b, a, d)
}

func analogHighPass(p iir.Parameters, num, den []float64) (*iir.Filter, error) {
	hn, hd := highPassPrototype(num, den)

	return analogLowPass(p, hn, hd)
}

func analogBandPass(p iir.Parameters, num, den []float64) (*iir.Filter, error) {
	bw, err := requireBand(p)
	if err != nil {
		return nil, err
	}

	n := len(den) - 1
	fc := p.Cutoff()

	return analogLowPass(p, bandTransform(num, n, fc, bw), bandTransform(den, n, fc, bw))
}

func analogBandStop(p iir.Parameters, num, den []float64) (*iir.Filter, error) {
	hn, hd := highPassPrototype(num, den)

	return analogBandPass(p, hn, hd)
}
