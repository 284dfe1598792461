// Package poly implements univariate complex polynomials in coefficient
// form and in root (factored) form, with conversion between the two.
//
// Both representations are immutable: operations return new values and
// never modify their receivers. Neither representation trims structure;
// a zero coefficient or a zero root is stored and counted exactly as
// given.
package poly

import (
	"fmt"
	"strings"

	"github.com/mkacan/complex-nums/pkg/cplx"
)

// Polynomial is a polynomial in coefficient form: coefficient k multiplies
// z^k.
type Polynomial struct {
	coeff []cplx.Complex
}

// New creates a polynomial from coefficients in ascending power order, so
// New(a, b, c) represents a + bz + cz². The slice is copied; callers may
// reuse theirs.
func New(coeff ...cplx.Complex) Polynomial {
	c := make([]cplx.Complex, len(coeff))
	copy(c, coeff)
	return Polynomial{coeff: c}
}

// wrap adopts an internally built slice without copying. The caller must
// not retain the slice.
func wrap(coeff []cplx.Complex) Polynomial {
	return Polynomial{coeff: coeff}
}

// Order returns the number of coefficients minus one. The leading
// coefficient is not inspected: a polynomial constructed with a zero
// highest term reports the same order as one without it, so Order can
// exceed the true mathematical degree.
func (p Polynomial) Order() int {
	return len(p.coeff) - 1
}

// Coeffs returns a copy of the coefficients in ascending power order.
func (p Polynomial) Coeffs() []cplx.Complex {
	c := make([]cplx.Complex, len(p.coeff))
	copy(c, p.coeff)
	return c
}

// Apply evaluates the polynomial at z by direct summation of the terms
// coefficient·z^k, with powers built by repeated multiplication from
// z⁰ = 1.
func (p Polynomial) Apply(z cplx.Complex) cplx.Complex {
	result := cplx.Zero
	power := cplx.One
	for _, c := range p.coeff {
		result = result.Add(c.Mul(power))
		power = power.Mul(z)
	}
	return result
}

// Mul returns the product of p and q: a full convolution, with the
// coefficient at index i+j accumulating p[i]·q[j] over all valid pairs.
// The result has order p.Order() + q.Order().
func (p Polynomial) Mul(q Polynomial) Polynomial {
	n := p.Order() + q.Order() + 1
	if n < 0 {
		n = 0
	}

	product := make([]cplx.Complex, n)
	for i, pc := range p.coeff {
		for j, qc := range q.coeff {
			product[i+j] = product[i+j].Add(pc.Mul(qc))
		}
	}
	return wrap(product)
}

// Derive returns the derivative, with coefficients d[k] = c[k+1]·(k+1).
// A constant polynomial derives to the empty order −1 polynomial.
func (p Polynomial) Derive() Polynomial {
	if len(p.coeff) == 0 {
		return wrap(nil)
	}

	derived := make([]cplx.Complex, len(p.coeff)-1)
	for k := range derived {
		derived[k] = p.coeff[k+1].Mul(cplx.New(float64(k+1), 0))
	}
	return wrap(derived)
}

// String renders the polynomial with powers descending, such as
// "2z^2 + 3z + 4". Terms whose coefficient has an effectively zero modulus
// are skipped; the all-zero polynomial renders as "0". Negative and fully
// complex coefficients are parenthesized.
func (p Polynomial) String() string {
	var b strings.Builder
	for i := len(p.coeff) - 1; i >= 0; i-- {
		c := p.coeff[i]
		if cplx.AlmostEqual(c.Abs(), 0) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		if needsParens(c) {
			b.WriteString("(" + c.String() + ")")
		} else {
			b.WriteString(c.String())
		}
		if i > 1 {
			fmt.Fprintf(&b, "z^%d", i)
		} else if i == 1 {
			b.WriteString("z")
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// LaTeX renders the polynomial for math mode, with powers as z^{k}.
func (p Polynomial) LaTeX() string {
	var b strings.Builder
	for i := len(p.coeff) - 1; i >= 0; i-- {
		c := p.coeff[i]
		if cplx.AlmostEqual(c.Abs(), 0) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		if needsParens(c) {
			b.WriteString("\\left(" + c.LaTeX() + "\\right)")
		} else {
			b.WriteString(c.LaTeX())
		}
		if i > 1 {
			fmt.Fprintf(&b, "z^{%d}", i)
		} else if i == 1 {
			b.WriteString("z")
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// needsParens reports whether a coefficient would read ambiguously inside
// a rendered term: anything negative, and anything with both a real and an
// imaginary part.
func needsParens(c cplx.Complex) bool {
	hasRe := !cplx.AlmostEqual(c.Re(), 0)
	hasIm := !cplx.AlmostEqual(c.Im(), 0)
	switch {
	case hasRe && hasIm:
		return true
	case hasIm:
		return c.Im() < 0
	default:
		return c.Re() < 0
	}
}
