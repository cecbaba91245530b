package iir

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-iir/dsp/poly"
	"github.com/cwbudde/algo-iir/internal/testutil"
)

func testParams() Parameters {
	return NewParameters(48000, 1000)
}

// onePole is H(z) = (1 + 0.5z^-1) / (1 - 0.5z^-1).
func onePole(t *testing.T) *Filter {
	t.Helper()
	f, err := New([]float64{-0.5}, []float64{1, 0.5}, testParams())
	require.NoError(t, err)
	return f
}

// resonator has a conjugate pole pair at radius 0.9 and zeros at +-1.
func resonator(t *testing.T) *Filter {
	t.Helper()
	r, theta := 0.9, math.Pi/5
	f, err := New(
		[]float64{-2 * r * math.Cos(theta), r * r},
		[]float64{0.1, 0, -0.1},
		testParams(),
	)
	require.NoError(t, err)
	return f
}

func TestNew_CoefficientLength(t *testing.T) {
	_, err := New([]float64{1, 2}, []float64{1, 2}, testParams())
	require.ErrorIs(t, err, ErrCoefficientLength)

	_, err = New(nil, nil, testParams())
	require.ErrorIs(t, err, ErrCoefficientLength)
}

func TestNew_PolesAndZeros(t *testing.T) {
	f := onePole(t)
	testutil.AssertRootsMatch(t, []complex128{-0.5}, f.Zeros(), testutil.RootTolerance)
	testutil.AssertRootsMatch(t, []complex128{0.5}, f.Poles(), testutil.RootTolerance)

	assert.Equal(t, []complex128{0.5, 1}, f.Numerator().Coefficients())
	assert.Equal(t, []complex128{-0.5, 1}, f.Denominator().Coefficients())
	assert.Equal(t, 1, f.Order())
}

func TestNew_CopiesCoefficients(t *testing.T) {
	a := []float64{-0.5}
	b := []float64{1, 0.5}
	f, err := New(a, b, testParams())
	require.NoError(t, err)

	a[0], b[0] = 9, 9
	assert.Equal(t, []float64{-0.5}, f.A())
	assert.Equal(t, []float64{1, 0.5}, f.B())

	got := f.B()
	got[1] = 7
	assert.Equal(t, []float64{1, 0.5}, f.B())

	p := f.Poles()
	p[0] = 3
	assert.NotEqual(t, complex128(3), f.Poles()[0])
}

func TestNew_GainOnly(t *testing.T) {
	f, err := New(nil, []float64{0.5}, testParams())
	require.NoError(t, err)
	assert.Empty(t, f.Poles())
	assert.Empty(t, f.Zeros())
	assert.Equal(t, []float64{0.5, -1}, f.Process([]float64{1, -2}))
}

func TestFromPolesZeros_RoundTrip(t *testing.T) {
	zeros := []complex128{-1, -1}
	poles := []complex128{0.5 + 0.3i, 0.5 - 0.3i}

	f, err := FromPolesZeros(zeros, poles, testParams())
	require.NoError(t, err)

	testutil.AssertSliceInDelta(t, []float64{1, 2, 1}, f.B(), testutil.CoefficientTolerance)
	testutil.AssertSliceInDelta(t, []float64{-1, 0.34}, f.A(), testutil.CoefficientTolerance)

	testutil.AssertComplexInDelta(t, poly.FromRoots(zeros...).Coefficients(), f.Numerator().Coefficients(), testutil.CoefficientTolerance)
	testutil.AssertComplexInDelta(t, poly.FromRoots(poles...).Coefficients(), f.Denominator().Coefficients(), testutil.CoefficientTolerance)

	testutil.AssertRootsMatch(t, poles, f.Poles(), testutil.RootTolerance)
	// double zero: eigenvalues split by about sqrt(machine epsilon)
	testutil.AssertRootsMatch(t, zeros, f.Zeros(), 1e-6)
}

func TestFromPolesZeros_FewerZeros(t *testing.T) {
	f, err := FromPolesZeros(nil, []complex128{0.5}, testParams())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, f.B())
	assert.Equal(t, []float64{-0.5}, f.A())
	assert.Empty(t, f.Zeros())
}

func TestFromPolesZeros_TooManyZeros(t *testing.T) {
	_, err := FromPolesZeros([]complex128{1, 2}, []complex128{0.5}, testParams())
	require.ErrorIs(t, err, ErrCoefficientLength)
}

func TestFromPolesZeros_Empty(t *testing.T) {
	f, err := FromPolesZeros(nil, nil, testParams())
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, f.B())
	assert.Empty(t, f.A())
}

func TestIsStable(t *testing.T) {
	assert.True(t, onePole(t).IsStable())
	assert.True(t, resonator(t).IsStable())

	f, err := New([]float64{-1.5}, []float64{1, 0}, testParams())
	require.NoError(t, err)
	assert.False(t, f.IsStable())
}

func TestString(t *testing.T) {
	assert.Equal(t, "y_n = 1x_n + 0.5x_n-1 + 0.5y_n-1", onePole(t).String())

	f, err := New([]float64{0.25, -0.125}, []float64{-0.5, 0, 2}, testParams())
	require.NoError(t, err)
	assert.Equal(t, "y_n = -0.5x_n + 0x_n-1 + 2x_n-2 - 0.25y_n-1 + 0.125y_n-2", f.String())
}

func TestParametersRetained(t *testing.T) {
	p := NewParameters(8000, 500, WithOrder(2))
	f, err := New([]float64{0}, []float64{1, 0}, p)
	require.NoError(t, err)
	assert.Equal(t, p, f.Parameters())
}

func TestPolesOnUnitCircleDetected(t *testing.T) {
	// 1 - z^-2: poles at +-1
	f, err := New([]float64{0, -1}, []float64{1, 0, 0}, testParams())
	require.NoError(t, err)
	for _, p := range f.Poles() {
		assert.InDelta(t, 1, cmplx.Abs(p), 1e-12)
	}
	assert.False(t, f.IsStable())
}
