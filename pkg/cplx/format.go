package cplx

import (
	"strconv"
	"strings"
)

// String renders z in the a ± ib notation accepted by Parse, e.g.
// "3 + i2.5". A component within Tolerance of zero is omitted; both absent
// gives "0". Components are shown with at most four fractional digits,
// trailing zeros trimmed.
func (z Complex) String() string {
	hasRe := !AlmostEqual(z.re, 0)
	hasIm := !AlmostEqual(z.im, 0)
	if !hasRe && !hasIm {
		return "0"
	}

	var b strings.Builder
	if hasRe {
		b.WriteString(formatPart(z.re))
	}
	if hasIm {
		switch {
		case hasRe && z.im < 0:
			b.WriteString(" - i")
			b.WriteString(formatPart(-z.im))
		case hasRe:
			b.WriteString(" + i")
			b.WriteString(formatPart(z.im))
		case z.im < 0:
			b.WriteString("-i")
			b.WriteString(formatPart(-z.im))
		default:
			b.WriteString("i")
			b.WriteString(formatPart(z.im))
		}
	}
	return b.String()
}

// LaTeX renders z for embedding in math mode, with the imaginary unit
// written after its coefficient: "3 + 2.5i". A unit coefficient is
// rendered as a bare i.
func (z Complex) LaTeX() string {
	hasRe := !AlmostEqual(z.re, 0)
	hasIm := !AlmostEqual(z.im, 0)
	if !hasRe && !hasIm {
		return "0"
	}

	imPart := func(v float64) string {
		if AlmostEqual(v, 1) {
			return "i"
		}
		return formatPart(v) + "i"
	}

	switch {
	case !hasIm:
		return formatPart(z.re)
	case !hasRe && z.im < 0:
		return "-" + imPart(-z.im)
	case !hasRe:
		return imPart(z.im)
	case z.im < 0:
		return formatPart(z.re) + " - " + imPart(-z.im)
	default:
		return formatPart(z.re) + " + " + imPart(z.im)
	}
}

// formatPart renders one component with at most four fractional digits and
// no trailing zeros, matching the original "#.####" display format.
func formatPart(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
