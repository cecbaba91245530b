package biquad

import "math/cmplx"

// Poles returns the roots of z^2 + A1*z + A2. A first-order section has a
// single pole; the second entry is then 0.
func (c Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the roots of B0*z^2 + B1*z + B2.
func (c Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// Poles returns the poles of every section in cascade order.
func (c *Chain) Poles() []complex128 {
	var out []complex128
	for i := range c.sections {
		p := c.sections[i].Poles()
		out = append(out, p[0])
		if !c.sections[i].IsFirstOrder() {
			out = append(out, p[1])
		}
	}

	return out
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	if c == 0 {
		// one root at the origin
		return [2]complex128{complex(-b/a, 0), 0}
	}

	sq := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)

	return [2]complex128{
		(-complex(b, 0) + sq) / den,
		(-complex(b, 0) - sq) / den,
	}
}
