// Package cplx implements immutable complex-number values with
// tolerance-aware arithmetic and a parser for the a±ib text notation.
package cplx

import (
	"math"

	"gopkg.in/errgo.v1"
)

// Tolerance is the fixed threshold below which two floating-point values
// are treated as equal. Repeated multiplication and convolution accumulate
// rounding noise; every comparison in this module absorbs it with this
// bound. It plays no role in the arithmetic itself.
const Tolerance = 1e-10

// ErrDivisionByZero is the cause of errors returned by Div when the
// divisor's magnitude is within Tolerance of zero.
var ErrDivisionByZero = errgo.New("cannot divide by zero")

// Complex is an immutable complex number. Every operation returns a new
// value; a Complex is never modified after construction.
type Complex struct {
	re, im float64
}

// Named constants for the values used most often in polynomial work.
var (
	Zero   = Complex{}
	One    = Complex{re: 1}
	NegOne = Complex{re: -1}
	I      = Complex{im: 1}
	NegI   = Complex{im: -1}
)

// New returns the complex number re + i·im.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// Re returns the real part.
func (z Complex) Re() float64 { return z.re }

// Im returns the imaginary part.
func (z Complex) Im() float64 { return z.im }

// Abs returns the Euclidean magnitude sqrt(re² + im²), also called the
// module of the number.
func (z Complex) Abs() float64 {
	return math.Sqrt(z.re*z.re + z.im*z.im)
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns z − w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns z · w: (ac − bd, ad + bc).
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Neg returns −z.
func (z Complex) Neg() Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Div returns z / w. It fails with an ErrDivisionByZero cause when the
// magnitude of w is within Tolerance of zero. The quotient is computed as
// z · conj(w) / |w|², with the squared modulus taken directly from the
// components rather than Abs, skipping the square root and its extra
// rounding step.
func (z Complex) Div(w Complex) (Complex, error) {
	if AlmostEqual(w.Abs(), 0) {
		return Complex{}, errgo.WithCausef(nil, ErrDivisionByZero, "cannot divide %s by zero", z)
	}

	d := w.re*w.re + w.im*w.im
	return Complex{
		re: (z.re*w.re + z.im*w.im) / d,
		im: (z.im*w.re - z.re*w.im) / d,
	}, nil
}

// Equal reports whether both components of z and w are within Tolerance of
// each other.
func (z Complex) Equal(w Complex) bool {
	return AlmostEqual(z.re, w.re) && AlmostEqual(z.im, w.im)
}

// AlmostEqual reports whether |a − b| < Tolerance.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}
