package poly

import (
	"math/bits"
	"strings"

	"github.com/mkacan/complex-nums/pkg/cplx"
)

// Rooted is a polynomial in root (factored) form: the product of
// (z − root) over an ordered root sequence. A repeated root encodes its
// multiplicity by repetition. The order of the sequence does not change
// the polynomial's value, but it is preserved for display and for the
// index reported by IndexOfClosestRoot.
type Rooted struct {
	roots []cplx.Complex
}

// NewRooted creates a root-form polynomial from the given roots. The slice
// is copied; callers may reuse theirs.
func NewRooted(roots ...cplx.Complex) Rooted {
	r := make([]cplx.Complex, len(roots))
	copy(r, roots)
	return Rooted{roots: r}
}

// Roots returns a copy of the roots in stored order.
func (r Rooted) Roots() []cplx.Complex {
	roots := make([]cplx.Complex, len(r.roots))
	copy(roots, r.roots)
	return roots
}

// Apply evaluates the product form Π (z − root) left to right. This keeps
// the factored structure and is the preferred evaluation path when only a
// value is needed, not the expanded polynomial.
func (r Rooted) Apply(z cplx.Complex) cplx.Complex {
	result := cplx.One
	for _, root := range r.roots {
		result = result.Mul(z.Sub(root))
	}
	return result
}

// IndexOfClosestRoot returns the index of the root closest to z, provided
// its distance is at most threshold. Earlier roots win ties. Returns −1
// when no root lies within threshold.
func (r Rooted) IndexOfClosestRoot(z cplx.Complex, threshold float64) int {
	index := -1
	var min float64

	for i, root := range r.roots {
		d := z.Sub(root).Abs()
		if d > threshold {
			continue
		}
		if index == -1 || d < min {
			index = i
			min = d
		}
	}
	return index
}

// maxSubsetRoots bounds the 2^n subset enumeration in Polynomial. Larger
// root sets use the O(n²) incremental convolution instead, which yields
// the same coefficients up to floating-point rounding.
const maxSubsetRoots = 20

// Polynomial expands the product Π (z − root) into coefficient form. By
// the Vieta identity the coefficient of z^(n−k) is (−1)^k · e_k, where
// e_k is the elementary symmetric polynomial of degree k over the roots.
// The result always has n+1 coefficients.
func (r Rooted) Polynomial() Polynomial {
	if len(r.roots) <= maxSubsetRoots {
		return r.expandSubsets()
	}
	return r.expandConvolution()
}

// expandSubsets enumerates every subset of the roots as a bit pattern,
// multiplies the selected roots, flips the sign when the subset size is
// odd, and accumulates the product into coefficient slot n − size.
func (r Rooted) expandSubsets() Polynomial {
	n := len(r.roots)
	coeff := make([]cplx.Complex, n+1)

	for mask := 0; mask < 1<<uint(n); mask++ {
		product := cplx.One
		for j := 0; j < n; j++ {
			if mask&(1<<uint(j)) != 0 {
				product = product.Mul(r.roots[j])
			}
		}

		k := bits.OnesCount(uint(mask))
		if k%2 == 1 {
			product = product.Neg()
		}
		coeff[n-k] = coeff[n-k].Add(product)
	}
	return wrap(coeff)
}

// expandConvolution multiplies out the factors one at a time, starting
// from the constant polynomial 1 and convolving with (−root + z) for each
// root in turn.
func (r Rooted) expandConvolution() Polynomial {
	product := New(cplx.One)
	for _, root := range r.roots {
		product = product.Mul(New(root.Neg(), cplx.One))
	}
	return product
}

// String renders the factored form as concatenated "(z - (root))" terms.
func (r Rooted) String() string {
	var b strings.Builder
	for _, root := range r.roots {
		b.WriteString("(z - (")
		b.WriteString(root.String())
		b.WriteString("))")
	}
	return b.String()
}

// LaTeX renders the factored form for math mode.
func (r Rooted) LaTeX() string {
	var b strings.Builder
	for _, root := range r.roots {
		b.WriteString("\\left(z - (")
		b.WriteString(root.LaTeX())
		b.WriteString(")\\right)")
	}
	return b.String()
}
