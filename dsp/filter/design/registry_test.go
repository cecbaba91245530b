package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

func TestPassTypes_Butterworth(t *testing.T) {
	got := PassTypes(iir.Butterworth)
	assert.Equal(t, []iir.PassType{iir.BandPass, iir.BandStop, iir.HighPass, iir.LowPass}, got)
	assert.NotContains(t, got, iir.None)
}

func TestPassTypes_EveryFamilyRegistered(t *testing.T) {
	for _, typ := range iir.Types() {
		assert.NotEmpty(t, PassTypes(typ), "%s", typ)
	}

	assert.Equal(t, []iir.PassType{iir.None}, PassTypes(iir.Notch))
	assert.Equal(t, []iir.PassType{iir.HighPass, iir.LowPass}, PassTypes(iir.Shelf))
	assert.Empty(t, PassTypes(iir.Type(99)))
}

func TestOrders(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, Orders(iir.Butterworth, iir.LowPass))
	assert.Equal(t, []int{4}, Orders(iir.Bessel, iir.BandPass))
	assert.Equal(t, []int{2, 4}, Orders(iir.LinkwitzRiley, iir.HighPass))
	assert.Equal(t, []int{2}, Orders(iir.VariableQ, iir.LowPass))
	assert.Nil(t, Orders(iir.Notch, iir.LowPass))

	// callers cannot modify the registry through the returned slice
	o := Orders(iir.Butterworth, iir.LowPass)
	o[0] = 99
	assert.Equal(t, []int{1, 2, 3, 4}, Orders(iir.Butterworth, iir.LowPass))
}

func TestKeys_Unique(t *testing.T) {
	seen := map[Key]bool{}
	for _, k := range Keys() {
		assert.False(t, seen[k], "duplicate %s", k)
		seen[k] = true
	}

	assert.Len(t, seen, len(registry))
}

func TestDesign_UnsupportedOrder(t *testing.T) {
	p := iir.NewParameters(testRate, testCutoff, iir.WithOrder(2), iir.WithBandwidth(100))

	_, err := Design(iir.Bessel, p, iir.BandPass)
	require.ErrorIs(t, err, ErrUnsupportedOrder)
	assert.Nil(t, CreateFilter(iir.Bessel, p, iir.BandPass))

	_, err = Design(iir.LinkwitzRiley, fullParams(3), iir.LowPass)
	assert.ErrorIs(t, err, ErrUnsupportedOrder)

	_, err = Design(iir.Butterworth, fullParams(5), iir.LowPass)
	assert.ErrorIs(t, err, ErrUnsupportedOrder)
}

func TestDesign_MissingOrder(t *testing.T) {
	p := iir.NewParameters(testRate, testCutoff)

	_, err := Design(iir.Butterworth, p, iir.LowPass)
	assert.ErrorIs(t, err, ErrMissingOrder)

	// a single registered order is implied
	f, err := Design(iir.Notch, iir.NewParameters(testRate, testCutoff, iir.WithBandwidth(100)), iir.None)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Order())
}

func TestDesign_NotRegistered(t *testing.T) {
	_, err := Design(iir.Notch, fullParams(2), iir.LowPass)
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.Nil(t, CreateFilter(iir.Notch, fullParams(2), iir.LowPass))

	_, err = Design(iir.Butterworth, fullParams(2), iir.None)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestDesign_InvalidParameters(t *testing.T) {
	_, err := Design(iir.Butterworth, iir.NewParameters(0, 100, iir.WithOrder(2)), iir.LowPass)
	assert.ErrorIs(t, err, iir.ErrInvalidSampleRate)

	_, err = Design(iir.Butterworth, iir.NewParameters(1000, 600, iir.WithOrder(2)), iir.LowPass)
	assert.ErrorIs(t, err, iir.ErrInvalidCutoff)

	_, err = Design(iir.Shelf, iir.NewParameters(1000, 100, iir.WithOrder(1), iir.WithLinearGain(-1)), iir.LowPass)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestCreateFilter_Valid(t *testing.T) {
	f := CreateFilter(iir.Butterworth, fullParams(2), iir.HighPass)
	require.NotNil(t, f)
	assert.Equal(t, 2, f.Order())
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "ChebyshevTypeI/BandStop", Key{iir.ChebyshevTypeI, iir.BandStop}.String())
}
