package iir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Butterworth", Butterworth.String())
	assert.Equal(t, "ChebyshevTypeII", ChebyshevTypeII.String())
	assert.Equal(t, "Shelf", Shelf.String())
	assert.Equal(t, "Type(42)", Type(42).String())
	assert.Len(t, Types(), 10)
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	got, err := ParseType("linkwitz-riley")
	require.NoError(t, err)
	assert.Equal(t, LinkwitzRiley, got)

	got, err = ParseType(" variable_q ")
	require.NoError(t, err)
	assert.Equal(t, VariableQ, got)

	_, err = ParseType("elliptic")
	assert.Error(t, err)
}

func TestPassTypeString(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "BandStop", BandStop.String())
	assert.Equal(t, "PassType(-1)", PassType(-1).String())
}

func TestParsePassType(t *testing.T) {
	tests := map[string]PassType{
		"lowpass":   LowPass,
		"low-pass":  LowPass,
		"LP":        LowPass,
		"hp":        HighPass,
		"band_pass": BandPass,
		"bs":        BandStop,
		"none":      None,
	}
	for in, want := range tests {
		got, err := ParsePassType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePassType("shelf")
	assert.Error(t, err)
}
