package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// ListCmd prints the registry.
type ListCmd struct{}

func (c *ListCmd) Run(_ *Globals) error {
	fmt.Println(titleStyle.Render("Registered filter designs"))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tPASS\tORDERS")

	for _, typ := range iir.Types() {
		for _, pass := range design.PassTypes(typ) {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", typ, pass, formatOrders(design.Orders(typ, pass)))
		}
	}

	return tw.Flush()
}

// DesignCmd prints a design.
type DesignCmd struct {
	FilterFlags

	Sections bool `help:"Also print the second-order section cascade."`
}

func (c *DesignCmd) Run(g *Globals) error {
	f, err := c.build(g, c.Fs)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s %s", c.Type, c.Pass)), dimStyle.Render(f.Parameters().String()))

	fmt.Println(sectionStyle.Render("Coefficients"))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "k\tB[k]\tA[k-1]\t")
	b, a := f.B(), f.A()
	for k := range b {
		av := "1"
		if k > 0 {
			av = formatFloat(a[k-1])
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", k, formatFloat(b[k]), av)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Println(sectionStyle.Render("Difference equation"))
	fmt.Println(f)

	fmt.Println(sectionStyle.Render("Poles"), stability(f.IsStable()))
	if err := printRoots(f.Poles()); err != nil {
		return err
	}

	fmt.Println(sectionStyle.Render("Zeros"))
	if err := printRoots(f.Zeros()); err != nil {
		return err
	}

	if c.Sections {
		return printSections(f)
	}

	return nil
}

// ResponseCmd prints a frequency response table.
type ResponseCmd struct {
	FilterFlags

	Points int     `default:"32" help:"Number of sweep points."`
	Log    bool    `help:"Logarithmic sweep."`
	From   float64 `default:"20" help:"Sweep start in Hz."`
	To     float64 `help:"Sweep end in Hz (default Nyquist)."`
	FFT    int     `name:"fft" help:"Evaluate on an FFT grid of this size instead of a sweep."`
}

func (c *ResponseCmd) Run(g *Globals) error {
	f, err := c.build(g, c.Fs)
	if err != nil {
		return err
	}

	freqs, h, err := c.evaluate(f)
	if err != nil {
		return err
	}

	mag := iir.MagnitudeDB(h)
	phase := iir.UnwrapPhase(iir.Phase(h))

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s %s response", c.Type, c.Pass)), dimStyle.Render(f.Parameters().String()))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Hz\tdB\tphase deg\t")
	for i, hz := range freqs {
		fmt.Fprintf(tw, "%.1f\t%.2f\t%.1f\t\n", hz, mag[i], phase[i]*180/math.Pi)
	}

	return tw.Flush()
}

func (c *ResponseCmd) evaluate(f *iir.Filter) ([]float64, []complex128, error) {
	if c.FFT > 0 {
		h, err := f.ResponseFFT(c.FFT)
		if err != nil {
			return nil, nil, err
		}
		return iir.ResponseFrequencies(c.FFT, c.Fs), h, nil
	}

	to := c.To
	if to == 0 {
		to = c.Fs / 2
	}

	var freqs []float64
	if c.Log {
		freqs = core.LogRange(c.From, to, c.Points, 10)
	} else {
		freqs = core.LinearRange(c.From, to, c.Points)
	}

	omega := make([]float64, len(freqs))
	for i, hz := range freqs {
		omega[i] = core.HzToOmega(hz, c.Fs)
	}

	return freqs, f.Response(omega), nil
}

func printRoots(roots []complex128) error {
	if len(roots) == 0 {
		fmt.Println(dimStyle.Render("none"))
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "re\tim\t|r|\tangle Hz-norm\t")
	for _, r := range roots {
		fmt.Fprintf(tw, "%s\t%s\t%.6f\t%.4f\t\n",
			formatFloat(real(r)), formatFloat(imag(r)), cmplx.Abs(r), cmplx.Phase(r)/(2*math.Pi))
	}

	return tw.Flush()
}

func printSections(f *iir.Filter) error {
	chain, err := f.Sections()
	if err != nil {
		return err
	}

	fmt.Println(sectionStyle.Render("Sections"), dimStyle.Render("gain "+formatFloat(chain.Gain())))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tB0\tB1\tB2\tA1\tA2\t")
	for i, s := range chain.Coefficients() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n", i,
			formatFloat(s.B0), formatFloat(s.B1), formatFloat(s.B2), formatFloat(s.A1), formatFloat(s.A2))
	}

	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func formatOrders(orders []int) string {
	parts := make([]string, len(orders))
	for i, o := range orders {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, ", ")
}
