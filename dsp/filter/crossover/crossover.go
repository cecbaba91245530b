package crossover

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// ErrFrequencies is returned by [NewMultiBand] for an empty or unsorted
// frequency list.
var ErrFrequencies = errors.New("crossover: frequencies must be non-empty and strictly ascending")

// Crossover splits a signal into complementary Linkwitz-Riley low-pass and
// high-pass outputs whose sum has a flat magnitude response.
type Crossover struct {
	lowPass  *iir.Filter
	highPass *iir.Filter
	lp       *biquad.Chain
	hp       *biquad.Chain
}

// New designs a two-way crossover at freq Hz. Orders 2 and 4 are
// supported. The second-order high-pass output is inverted so that both
// orders sum to an all-pass.
func New(freq float64, order int, sampleRate float64) (*Crossover, error) {
	p := iir.NewParameters(sampleRate, freq, iir.WithOrder(order))
	if freq <= 0 || freq >= sampleRate/2 {
		return nil, fmt.Errorf("crossover: frequency must be in (0, %v), got %v: %w", sampleRate/2, freq, iir.ErrInvalidCutoff)
	}

	lowPass, err := design.Design(iir.LinkwitzRiley, p, iir.LowPass)
	if err != nil {
		return nil, fmt.Errorf("crossover: %w", err)
	}

	highPass, err := design.Design(iir.LinkwitzRiley, p, iir.HighPass)
	if err != nil {
		return nil, fmt.Errorf("crossover: %w", err)
	}

	lp, err := cascade(lowPass, 1)
	if err != nil {
		return nil, err
	}

	polarity := 1.0
	if order == 2 {
		polarity = -1
	}

	hp, err := cascade(highPass, polarity)
	if err != nil {
		return nil, err
	}

	return &Crossover{lowPass: lowPass, highPass: highPass, lp: lp, hp: hp}, nil
}

func cascade(f *iir.Filter, polarity float64) (*biquad.Chain, error) {
	chain, err := f.Sections()
	if err != nil {
		return nil, fmt.Errorf("crossover: %w", err)
	}

	return biquad.NewChain(chain.Coefficients(), biquad.WithGain(polarity*chain.Gain())), nil
}

// ProcessSample filters one input sample and returns the low and high
// band outputs.
func (c *Crossover) ProcessSample(x float64) (lo, hi float64) {
	return c.lp.ProcessSample(x), c.hp.ProcessSample(x)
}

// ProcessBlock writes the low band of input to lo and the high band to hi.
// All three slices must have the same length.
func (c *Crossover) ProcessBlock(input, lo, hi []float64) {
	n := len(input)
	if n == 0 {
		return
	}
	_ = lo[n-1]
	_ = hi[n-1]
	copy(lo, input)
	copy(hi, input)
	c.lp.ProcessBlock(lo)
	c.hp.ProcessBlock(hi)
}

// LowPass returns the designed low-pass filter.
func (c *Crossover) LowPass() *iir.Filter { return c.lowPass }

// HighPass returns the designed high-pass filter, without the polarity
// inversion applied to second-order outputs.
func (c *Crossover) HighPass() *iir.Filter { return c.highPass }

// LP returns the low band cascade.
func (c *Crossover) LP() *biquad.Chain { return c.lp }

// HP returns the high band cascade, including any polarity inversion.
func (c *Crossover) HP() *biquad.Chain { return c.hp }

// Freq returns the crossover frequency in Hz.
func (c *Crossover) Freq() float64 { return c.lowPass.Parameters().Cutoff() }

// Order returns the Linkwitz-Riley order.
func (c *Crossover) Order() int { return c.lowPass.Order() }

// SampleRate returns the sample rate in Hz.
func (c *Crossover) SampleRate() float64 { return c.lowPass.Parameters().SampleRate() }

// Reset clears the state of both cascades.
func (c *Crossover) Reset() {
	c.lp.Reset()
	c.hp.Reset()
}

// MultiBand splits a signal into len(freqs)+1 bands by feeding the high
// output of each two-way stage into the next. Band sums are exact for one
// crossover and close to flat when crossovers are an octave or more apart.
type MultiBand struct {
	stages []*Crossover
}

// NewMultiBand builds one stage per frequency. freqs must be strictly
// ascending; every stage uses the same order.
func NewMultiBand(freqs []float64, order int, sampleRate float64) (*MultiBand, error) {
	if len(freqs) == 0 {
		return nil, ErrFrequencies
	}

	stages := make([]*Crossover, len(freqs))
	for i, f := range freqs {
		if i > 0 && f <= freqs[i-1] {
			return nil, fmt.Errorf("%w: %.1f after %.1f", ErrFrequencies, f, freqs[i-1])
		}

		xo, err := New(f, order, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		stages[i] = xo
	}

	return &MultiBand{stages: stages}, nil
}

// NumBands returns the number of output bands.
func (m *MultiBand) NumBands() int { return len(m.stages) + 1 }

// Stages returns the two-way stages, lowest frequency first.
func (m *MultiBand) Stages() []*Crossover { return m.stages }

// ProcessSample returns one output per band, lowest band first.
func (m *MultiBand) ProcessSample(x float64) []float64 {
	out := make([]float64, m.NumBands())
	for i, stage := range m.stages {
		out[i], x = stage.ProcessSample(x)
	}
	out[len(m.stages)] = x
	return out
}

// ProcessBlock returns one block per band, each the length of input.
func (m *MultiBand) ProcessBlock(input []float64) [][]float64 {
	n := len(input)
	out := make([][]float64, m.NumBands())
	for i := range out {
		out[i] = make([]float64, n)
	}

	rest := append([]float64(nil), input...)
	hi := make([]float64, n)
	for i, stage := range m.stages {
		stage.ProcessBlock(rest, out[i], hi)
		rest, hi = hi, rest
	}
	copy(out[len(m.stages)], rest)
	return out
}

// Reset clears every stage.
func (m *MultiBand) Reset() {
	for _, s := range m.stages {
		s.Reset()
	}
}
