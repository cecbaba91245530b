package crossover_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/crossover"
)

func ExampleNew() {
	xo, err := crossover.New(1000, 4, 48000)
	if err != nil {
		panic(err)
	}

	fmt.Printf("order=%d freq=%.0f Hz\n", xo.Order(), xo.Freq())
	fmt.Printf("LP at 1000 Hz: %.2f dB\n", xo.LP().MagnitudeDB(1000, 48000))
	fmt.Printf("HP at 1000 Hz: %.2f dB\n", xo.HP().MagnitudeDB(1000, 48000))
	// Output:
	// order=4 freq=1000 Hz
	// LP at 1000 Hz: -6.02 dB
	// HP at 1000 Hz: -6.02 dB
}

func ExampleNewMultiBand() {
	mb, _ := crossover.NewMultiBand([]float64{500, 5000}, 4, 48000)

	fmt.Printf("bands=%d\n", mb.NumBands())
	for _, s := range mb.Stages() {
		fmt.Printf("%.0f Hz LR%d\n", s.Freq(), s.Order())
	}
	// Output:
	// bands=3
	// 500 Hz LR4
	// 5000 Hz LR4
}
