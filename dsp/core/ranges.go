package core

import "math"

// LinearRange returns n values starting at start and stepping by
// (end-start)/n. The end value itself is not included.
func LinearRange(start, end float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	out := make([]float64, n)
	step := (end - start) / float64(n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// LogRange returns n values from start towards end spaced evenly on a
// logarithmic scale of the given base: out[i] = start*base^(i*d) with
// d = log_base(end/start)/n. The end value is not included. A base <= 1, or
// bounds that are not both positive, fall back to [LinearRange]. Equal
// bounds yield n copies of start.
func LogRange(start, end float64, n int, base float64) []float64 {
	if n <= 0 {
		return []float64{}
	}

	if base <= 1 || !(start > 0 && end > 0) {
		return LinearRange(start, end, n)
	}

	out := make([]float64, n)
	if start == end {
		for i := range out {
			out[i] = start
		}
		return out
	}

	logBase := math.Log(base)
	delta := math.Log(end/start) / logBase / float64(n)
	for i := range out {
		out[i] = start * math.Pow(base, float64(i)*delta)
	}

	return out
}

// LinearRatio returns the position of value within [start, end] as a
// ratio: 0 at start, 1 at end. A descending range is measured from its
// lower bound, so the ratio is 0 at end and 1 at start. For an empty range
// it returns 0 when value equals start, -1 below it and 2 above it.
func LinearRatio(value, start, end float64) float64 {
	switch {
	case end == start:
		return degenerateRatio(value, start)
	case end < start:
		return (value - end) / (start - end)
	}

	return (value - start) / (end - start)
}

// LogRatio is [LinearRatio] on a logarithmic scale, measured from start
// in both directions: a descending range yields 0 at start and -1 at end.
// A base of 1 or <= 0, or bounds and value that are not all positive, fall
// back to the linear ratio.
func LogRatio(value, start, end, base float64) float64 {
	if base == 1 || base <= 0 || !(start > 0 && end > 0 && value > 0) {
		return LinearRatio(value, start, end)
	}

	if end == start {
		return degenerateRatio(value, start)
	}

	// the base cancels: log_b(v/s) / |log_b(e/s)|
	return math.Log(value/start) / math.Abs(math.Log(end/start))
}

func degenerateRatio(value, start float64) float64 {
	switch {
	case value == start:
		return 0
	case value < start:
		return -1
	default:
		return 2
	}
}
