package design_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

func ExampleDesign() {
	p := iir.NewParameters(10000, 1000, iir.WithOrder(4))

	f, err := design.Design(iir.Butterworth, p, iir.LowPass)
	if err != nil {
		panic(err)
	}

	w := 2 * math.Pi * 1000 / 10000
	h := f.Response([]float64{0, w})

	fmt.Printf("order %d stable %v\n", f.Order(), f.IsStable())
	fmt.Printf("DC %.3f, cutoff %.2f dB\n", cmplx.Abs(h[0]), 20*math.Log10(cmplx.Abs(h[1])))
	// Output:
	// order 4 stable true
	// DC 1.000, cutoff -3.01 dB
}

func ExampleOrders() {
	for _, pass := range design.PassTypes(iir.Bessel) {
		fmt.Println(pass, design.Orders(iir.Bessel, pass))
	}
	// Output:
	// BandPass [4]
	// BandStop [4]
	// HighPass [1 2 3 4]
	// LowPass [1 2 3 4]
}

func ExampleCreateFilter() {
	// Bessel band-pass only exists at order 4
	p := iir.NewParameters(48000, 1000, iir.WithOrder(2), iir.WithBandwidth(200))
	fmt.Println(design.CreateFilter(iir.Bessel, p, iir.BandPass) == nil)
	// Output:
	// true
}
