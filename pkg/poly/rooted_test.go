package poly

import (
	gc "gopkg.in/check.v1"

	"github.com/mkacan/complex-nums/pkg/cplx"
)

type RootedSuite struct{}

var _ = gc.Suite(&RootedSuite{})

func (s *RootedSuite) TestApply(c *gc.C) {
	// (z − 1)(z − i) at z = 2: (1)(2 − i) = 2 − i
	r := NewRooted(cplx.One, cplx.I)
	assertComplexEquals(c, r.Apply(re(2)), cplx.New(2, -1))

	// evaluating at a root yields zero
	assertComplexEquals(c, r.Apply(cplx.I), cplx.Zero)

	// the empty product is the constant 1
	assertComplexEquals(c, NewRooted().Apply(re(3)), cplx.One)
}

func (s *RootedSuite) TestExpand(c *gc.C) {
	// (z − 1)(z − i) = z² − (1+i)z + i
	r := NewRooted(cplx.One, cplx.I)
	assertCoeffsEqual(c, r.Polynomial(),
		New(cplx.I, cplx.New(-1, -1), cplx.One))
}

func (s *RootedSuite) TestExpandEmpty(c *gc.C) {
	p := NewRooted().Polynomial()
	c.Assert(p.Order(), gc.Equals, 0)
	assertComplexEquals(c, p.Coeffs()[0], cplx.One)
}

func (s *RootedSuite) TestExpandZeroRoot(c *gc.C) {
	// a zero root is stored and expanded like any other: z(z − 2) = z² − 2z
	r := NewRooted(cplx.Zero, re(2))
	assertCoeffsEqual(c, r.Polynomial(), New(cplx.Zero, re(-2), cplx.One))
}

func (s *RootedSuite) TestExpandRepeatedRoot(c *gc.C) {
	// (z − 1)² = z² − 2z + 1
	r := NewRooted(cplx.One, cplx.One)
	assertCoeffsEqual(c, r.Polynomial(), New(re(1), re(-2), re(1)))
}

// TestExpandConstructionsAgree: the subset enumeration and the incremental
// convolution must produce the same coefficients for the same roots.
func (s *RootedSuite) TestExpandConstructionsAgree(c *gc.C) {
	rootSets := [][]cplx.Complex{
		{},
		{cplx.One},
		{cplx.One, cplx.I},
		{re(1), re(5)},
		{cplx.New(0.5, -1.5), cplx.New(-2, 0.25), cplx.New(3, 3)},
		{cplx.I, cplx.NegI, cplx.One, cplx.NegOne, cplx.New(0.1, 0.9),
			cplx.New(-0.7, 0.2), cplx.New(2.5, -4)},
	}

	for _, roots := range rootSets {
		r := NewRooted(roots...)
		assertCoeffsEqual(c, r.expandSubsets(), r.expandConvolution())
	}
}

// TestProductFormMatchesExpanded: R.Apply(z) must agree with expanding
// first and evaluating the coefficient form.
func (s *RootedSuite) TestProductFormMatchesExpanded(c *gc.C) {
	r := NewRooted(cplx.New(1, 1), cplx.New(-2, 0.5), cplx.I, re(3))
	expanded := r.Polynomial()

	points := []cplx.Complex{
		cplx.Zero, cplx.One, cplx.I, re(-1.5), cplx.New(2, -2), cplx.New(0.25, 0.75),
	}
	for _, z := range points {
		assertComplexEquals(c, r.Apply(z), expanded.Apply(z))
	}
}

func (s *RootedSuite) TestIndexOfClosestRoot(c *gc.C) {
	r := NewRooted(re(1), re(5))
	z := re(1.01)

	c.Assert(r.IndexOfClosestRoot(z, 0.5), gc.Equals, 0)
	c.Assert(r.IndexOfClosestRoot(z, 0.005), gc.Equals, -1)
}

func (s *RootedSuite) TestIndexOfClosestRootTies(c *gc.C) {
	// equidistant roots: the earlier index wins
	r := NewRooted(re(0), re(2))
	c.Assert(r.IndexOfClosestRoot(re(1), 2), gc.Equals, 0)

	// exact distance == threshold is still a hit
	c.Assert(r.IndexOfClosestRoot(re(1), 1), gc.Equals, 0)

	// no roots at all
	c.Assert(NewRooted().IndexOfClosestRoot(re(1), 100), gc.Equals, -1)
}

func (s *RootedSuite) TestString(c *gc.C) {
	r := NewRooted(cplx.One, cplx.I)
	c.Assert(r.String(), gc.Equals, "(z - (1))(z - (i1))")

	c.Assert(NewRooted(cplx.New(-1, -2.5)).String(), gc.Equals, "(z - (-1 - i2.5))")
}

func (s *RootedSuite) TestLaTeX(c *gc.C) {
	r := NewRooted(cplx.I)
	c.Assert(r.LaTeX(), gc.Equals, "\\left(z - (i)\\right)")
}

func (s *RootedSuite) TestRootsCopies(c *gc.C) {
	roots := []cplx.Complex{re(1), re(2)}
	r := NewRooted(roots...)
	roots[0] = re(99)
	assertComplexEquals(c, r.Roots()[0], re(1))
}
