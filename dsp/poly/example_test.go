package poly_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/poly"
)

func ExampleFromRoots() {
	p := poly.FromRoots(1, 2)
	fmt.Println(p)
	fmt.Println(p.Evaluate(3))
	// Output:
	// 2+-3x+1x^2
	// (2+0i)
}
