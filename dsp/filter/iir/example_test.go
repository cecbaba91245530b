package iir_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

func ExampleNew() {
	params := iir.NewParameters(48000, 1000)
	f, err := iir.New([]float64{-0.5}, []float64{1, 0.5}, params)
	if err != nil {
		panic(err)
	}

	fmt.Println(f)
	fmt.Println("poles:", f.Poles(), "stable:", f.IsStable())
	fmt.Println("impulse:", f.Process([]float64{1, 0, 0, 0}))
	// Output:
	// y_n = 1x_n + 0.5x_n-1 + 0.5y_n-1
	// poles: [(0.5+0i)] stable: true
	// impulse: [1 1 0.5 0.25]
}

func ExampleApply() {
	f, _ := iir.New([]float64{-0.5}, []float64{1, 0.5}, iir.NewParameters(48000, 1000))
	out, err := iir.Apply(f, []int16{100, 0, 0, 0})
	fmt.Println(out, err)
	// Output:
	// [100 100 50 25] <nil>
}
