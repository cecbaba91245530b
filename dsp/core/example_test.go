package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/core"
)

func ExampleLogRange() {
	for _, f := range core.LogRange(20, 20000, 3, 10) {
		fmt.Printf("%.0f Hz\n", f)
	}
	// Output:
	// 20 Hz
	// 200 Hz
	// 2000 Hz
}
