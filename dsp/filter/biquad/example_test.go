package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

func ExampleSection_ProcessSample() {
	s := biquad.NewSection(biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	})

	for i := range 4 {
		x := 0.0
		if i == 0 {
			x = 1
		}
		fmt.Printf("y[%d] = %.3f\n", i, s.ProcessSample(x))
	}
	// Output:
	// y[0] = 0.250
	// y[1] = 0.550
	// y[2] = 0.350
	// y[3] = 0.048
}

func ExampleChain_Response() {
	chain := biquad.NewChain([]biquad.Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
	}, biquad.WithGain(0.42))

	fmt.Printf("order %d, DC %+.2f dB\n", chain.Order(), chain.MagnitudeDB(0, 48000))
	// Output:
	// order 2, DC -6.02 dB
}
