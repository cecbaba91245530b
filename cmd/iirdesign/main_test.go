package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

func TestFilterFlags_Parameters(t *testing.T) {
	gain := 6.0
	f := FilterFlags{Type: "shelf", Pass: "lp", Fs: 48000, Fc: 200, Order: 2, GainDB: &gain}
	p := f.parameters(44100)

	assert.Equal(t, 44100.0, p.SampleRate())
	order, ok := p.Order()
	assert.True(t, ok)
	assert.Equal(t, 2, order)

	g, ok := p.LinearGain()
	assert.True(t, ok)
	assert.InDelta(t, 1.9953, g, 1e-4)

	_, ok = p.Bandwidth()
	assert.False(t, ok)
}

func TestFilterFlags_Build(t *testing.T) {
	f := FilterFlags{Type: "butterworth", Pass: "lowpass", Fc: 1000, Order: 4}
	flt, err := f.build(&Globals{}, 48000)
	require.NoError(t, err)
	assert.Equal(t, 4, flt.Order())

	f.Type = "nope"
	_, err = f.build(&Globals{}, 48000)
	assert.Error(t, err)

	f = FilterFlags{Type: "notch", Pass: "lowpass", Fc: 1000, BW: 100}
	_, err = f.build(&Globals{}, 48000)
	assert.ErrorContains(t, err, "available pass types: None")
}

func TestFilterInterleaved_ClipsAndKeepsChannels(t *testing.T) {
	// gain of 2 on a pure delay-free filter
	f, err := iir.New([]float64{0}, []float64{2, 0}, iir.NewParameters(8000, 100))
	require.NoError(t, err)

	data := []int{100, -100, 20000, 1, -30000, 2}
	clipped, err := filterInterleaved(f, data, 2, 16)
	require.NoError(t, err)

	assert.Equal(t, 2, clipped)
	assert.Equal(t, []int{200, -200, 32767, 2, -32768, 4}, data)
}

func TestFilterInterleaved_UnsignedEightBit(t *testing.T) {
	f, err := iir.New([]float64{0}, []float64{2, 0}, iir.NewParameters(8000, 100))
	require.NoError(t, err)

	// 128 is silence; gain 2 maps 160 -> 192 and clips 250 at 255, 10 at 0
	data := []int{128, 160, 96, 250, 10}
	clipped, err := filterInterleaved(f, data, 1, 8)
	require.NoError(t, err)

	assert.Equal(t, 2, clipped)
	assert.Equal(t, []int{128, 192, 64, 255, 0}, data)
}

func TestWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   []int{0, 1000, -1000, 500, -500, 0, 250, -250},
	}

	require.NoError(t, writeWAV(path, buf, 16))

	got, bitDepth, err := readWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 16, bitDepth)
	assert.Equal(t, 8000, got.Format.SampleRate)
	assert.Equal(t, buf.Data, got.Data)

	_, _, err = readWAV(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.wav")
	require.NoError(t, os.WriteFile(bad, []byte("not a wav"), 0o600))
	_, _, err = readWAV(bad)
	assert.Error(t, err)
}

func TestFormatOrders(t *testing.T) {
	assert.Equal(t, "1, 2, 3, 4", formatOrders([]int{1, 2, 3, 4}))
	assert.Equal(t, "", formatOrders(nil))
}
