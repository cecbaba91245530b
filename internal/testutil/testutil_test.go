package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSineAndRMS(t *testing.T) {
	s := Sine(1000, 48000, 2, 4800)
	assert.Len(t, s, 4800)
	assert.InDelta(t, 0, s[0], 1e-15)
	assert.InDelta(t, 2/math.Sqrt2, RMS(s, 0), 1e-9)
	assert.Zero(t, RMS(s, len(s)))
}

func TestNoiseIsDeterministic(t *testing.T) {
	a := Noise(7, 0.5, 64)
	b := Noise(7, 0.5, 64)
	assert.Equal(t, a, b)
	for _, v := range a {
		assert.True(t, v >= -0.5 && v < 0.5)
	}
}

func TestImpulse(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 0}, Impulse(3, 1))
	assert.Equal(t, []float64{0, 0}, Impulse(2, 5))
}

func TestSortRoots(t *testing.T) {
	got := SortRoots([]complex128{1 + 1i, -1, 1 - 1i})
	assert.Equal(t, []complex128{-1, 1 - 1i, 1 + 1i}, got)
}
