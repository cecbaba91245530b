package iir

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned by [Apply] when an output sample cannot be
// represented in the integer sample type.
var ErrOverflow = errors.New("iir: output sample out of range")

// Number is the set of sample types accepted by [Apply].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Process runs the difference equation over input with zero initial
// state and returns a new output slice. The input is not modified.
func (f *Filter) Process(input []float64) []float64 {
	out := make([]float64, len(input))
	f.run(len(input), func(i int) float64 { return input[i] }, func(i int, v float64) { out[i] = v })
	return out
}

// Apply filters input of any numeric sample type. Samples are converted
// to float64, filtered with zero initial state and converted back. For
// integer types the output is truncated toward zero; a NaN or
// out-of-range result returns an error wrapping [ErrOverflow] and no
// output.
func Apply[T Number](f *Filter, input []T) ([]T, error) {
	out := make([]T, len(input))
	integer := isIntegerType[T]()

	var err error
	f.run(len(input), func(i int) float64 { return float64(input[i]) }, func(i int, v float64) {
		if err != nil {
			return
		}
		if !integer {
			out[i] = T(v)
			return
		}
		t := math.Trunc(v)
		s := T(t)
		if math.IsNaN(v) || float64(s) != t {
			err = fmt.Errorf("%w: sample %d = %v", ErrOverflow, i, v)
			return
		}
		out[i] = s
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func isIntegerType[T Number]() bool {
	half := 0.5
	return T(half) == 0
}

// run evaluates
//
//	y[i] = sum_j B[j]*x[i-j] - sum_j A[j]*y[i-1-j]
//
// with circular histories of len(B) inputs and len(A) outputs.
func (f *Filter) run(n int, in func(int) float64, out func(int, float64)) {
	nb, na := len(f.b), len(f.a)
	x := make([]float64, nb)
	y := make([]float64, na)

	for i := range n {
		x[i%nb] = in(i)

		var v float64
		for j := range nb {
			v += x[(i-j+nb)%nb] * f.b[j]
		}

		for j := range na {
			v -= y[(i-j-1+na)%na] * f.a[j]
		}

		if na > 0 {
			y[i%na] = v
		}

		out(i, v)
	}
}
