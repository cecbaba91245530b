package biquad

// Coefficients holds a normalized second-order transfer function
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
//
// A first-order section has B2 = A2 = 0.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// IsFirstOrder reports whether the section has no second-order terms.
func (c Coefficients) IsFirstOrder() bool {
	return c.B2 == 0 && c.A2 == 0
}

// Section is a biquad with Direct Form II Transposed state.
type Section struct {
	Coefficients

	s1, s2 float64
}

// NewSection returns a section with zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample:
//
//	y  = B0*x + s1
//	s1 = B1*x - A1*y + s2
//	s2 = B2*x - A2*y
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.s1
	s.s1 = s.B1*x - s.A1*y + s.s2
	s.s2 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	s1, s2 := s.s1, s.s2

	i := 0
	for ; i+1 < len(buf); i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + s1
		t1 := b1*x0 - a1*y0 + s2
		t2 := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + t1
		s1 = b1*x1 - a1*y1 + t2
		s2 = b2*x1 - a2*y1

		buf[i], buf[i+1] = y0, y1
	}

	if i < len(buf) {
		x := buf[i]
		y := b0*x + s1
		s1 = b1*x - a1*y + s2
		s2 = b2*x - a2*y
		buf[i] = y
	}

	s.s1, s.s2 = s1, s2
}

// Reset clears the section state.
func (s *Section) Reset() {
	s.s1, s.s2 = 0, 0
}

// State returns the two state variables.
func (s *Section) State() [2]float64 {
	return [2]float64{s.s1, s.s2}
}

// SetState restores state returned by [Section.State].
func (s *Section) SetState(st [2]float64) {
	s.s1, s.s2 = st[0], st[1]
}
