package main

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// FilterFlags select and parameterize a design. Zero values for order,
// bandwidth, Q and ripple mean "not given".
type FilterFlags struct {
	Type   string   `short:"t" required:"" help:"Filter family: ${types}."`
	Pass   string   `short:"p" default:"none" help:"Pass type: ${passes}."`
	Fs     float64  `name:"fs" default:"48000" help:"Sample rate in Hz."`
	Fc     float64  `name:"fc" required:"" help:"Cutoff or center frequency in Hz."`
	Order  int      `short:"o" help:"Filter order."`
	BW     float64  `name:"bw" help:"Bandwidth in Hz."`
	Q      float64  `name:"q" help:"Quality factor."`
	GainDB *float64 `name:"gain-db" help:"Gain in dB (shelf, equalization)."`
	Ripple float64  `help:"Ripple in dB (Chebyshev)."`
}

func (f *FilterFlags) parameters(sampleRate float64) iir.Parameters {
	var opts []iir.ParameterOption

	if f.Order != 0 {
		opts = append(opts, iir.WithOrder(f.Order))
	}
	if f.BW != 0 {
		opts = append(opts, iir.WithBandwidth(f.BW))
	}
	if f.Q != 0 {
		opts = append(opts, iir.WithQ(f.Q))
	}
	if f.GainDB != nil {
		opts = append(opts, iir.WithGainDB(*f.GainDB))
	}
	if f.Ripple != 0 {
		opts = append(opts, iir.WithRipple(f.Ripple))
	}

	return iir.NewParameters(sampleRate, f.Fc, opts...)
}

// build designs the filter at the given sample rate.
func (f *FilterFlags) build(g *Globals, sampleRate float64) (*iir.Filter, error) {
	typ, err := iir.ParseType(f.Type)
	if err != nil {
		return nil, err
	}

	pass, err := iir.ParsePassType(f.Pass)
	if err != nil {
		return nil, err
	}

	p := f.parameters(sampleRate)
	g.verbosef("designing %s/%s with %s", typ, pass, p)

	flt, err := design.Design(typ, p, pass)
	if err != nil {
		if orders := design.Orders(typ, pass); len(orders) == 0 {
			return nil, fmt.Errorf("%w (available pass types: %s)", err, joinPasses(design.PassTypes(typ)))
		}
		return nil, err
	}

	g.verbosef("order %d, %d poles, %d zeros", flt.Order(), len(flt.Poles()), len(flt.Zeros()))

	return flt, nil
}

func typeList() string {
	names := make([]string, 0, len(iir.Types()))
	for _, t := range iir.Types() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

func passList() string {
	return joinPasses([]iir.PassType{iir.None, iir.LowPass, iir.HighPass, iir.BandPass, iir.BandStop})
}

func joinPasses(passes []iir.PassType) string {
	names := make([]string, len(passes))
	for i, p := range passes {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}
