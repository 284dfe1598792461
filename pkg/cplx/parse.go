package cplx

import (
	"strconv"
	"strings"

	"gopkg.in/errgo.v1"
)

// ErrSyntax is the cause of errors returned by Parse for input the
// complex-number grammar does not accept. The error message carries the
// offending input verbatim.
var ErrSyntax = errgo.New("not a parsable complex number")

// parseState enumerates the scanner states of the Parse state machine.
// Invalid input has no state of its own: the scanner fails immediately at
// the offending character.
type parseState int

const (
	stateStart   parseState = iota // nothing consumed yet
	stateSign                      // leading sign seen, number pending
	stateRe                        // accumulating real-part digits
	stateIm                        // accumulating digits after a leading i
	stateWaitI                     // sign after real part seen, imaginary pending
	stateAfterRe                   // real part closed by whitespace
	stateFinished                  // complete number, trailing input ignored
)

// Parse converts the a±ib text notation into a Complex value.
//
// The real part is an optionally signed decimal number. The imaginary part
// is written either with a leading i ("i2.6", a bare "i" meaning
// coefficient 1) or a trailing i ("2.6i"). Whitespace may surround the sign
// separating the two parts. Valid forms include "3.5", "-3.1", "i", "-i",
// "i2.6", "3-i2", "-3.1 + i2.6", "-2.71i" and "-2.71-3.15i". Parts that do
// not appear default to 0. Trailing input after a completed number is
// discarded.
func Parse(line string) (Complex, error) {
	input := strings.TrimSpace(line)

	var (
		buf    []byte
		sign   byte = '+'
		re, im float64
		state  = stateStart
	)

	// closeBuf parses the accumulated digits with the recorded sign and
	// resets the buffer for the next number.
	closeBuf := func() (float64, bool) {
		v, err := strconv.ParseFloat(string(sign)+string(buf), 64)
		if err != nil {
			return 0, false
		}
		buf = buf[:0]
		return v, true
	}

	for i := 0; i < len(input); {
		c := input[i]

		switch state {
		case stateStart:
			switch {
			case isDigitOrDot(c):
				state = stateRe
				buf = append(buf, c)
				i++
			case c == '+' || c == '-':
				sign = c
				state = stateSign
				i++
			case c == 'i':
				state = stateIm
				i++
			default:
				return parseFailure(line)
			}

		case stateSign:
			switch {
			case isSpace(c):
				i++
			case isDigitOrDot(c):
				state = stateRe
				buf = append(buf, c)
				i++
			case c == 'i':
				state = stateIm
				i++
			default:
				return parseFailure(line)
			}

		case stateRe:
			switch {
			case isDigitOrDot(c):
				buf = append(buf, c)
				i++
			case isSpace(c):
				v, ok := closeBuf()
				if !ok {
					return parseFailure(line)
				}
				re = v
				state = stateAfterRe
				i++
			case c == '+' || c == '-':
				v, ok := closeBuf()
				if !ok {
					return parseFailure(line)
				}
				re = v
				sign = c
				state = stateWaitI
				i++
			case c == 'i':
				// Trailing-i form: the number scanned so far is the
				// imaginary coefficient, not the real part.
				v, ok := closeBuf()
				if !ok {
					return parseFailure(line)
				}
				im = v
				state = stateFinished
				i++
			default:
				return parseFailure(line)
			}

		case stateIm:
			switch {
			case isDigitOrDot(c):
				buf = append(buf, c)
				i++
			case isSpace(c):
				if len(buf) == 0 {
					buf = append(buf, '1') // bare i means coefficient 1
				}
				v, ok := closeBuf()
				if !ok {
					return parseFailure(line)
				}
				im = v
				state = stateFinished
				i++
			default:
				return parseFailure(line)
			}

		case stateWaitI:
			switch {
			case isSpace(c) && len(buf) == 0:
				i++
			case c == 'i' && len(buf) == 0:
				state = stateIm
				i++
			case isDigitOrDot(c):
				buf = append(buf, c)
				i++
			case c == 'i':
				// Trailing-i form after a real part, e.g. "-2.71-3.15i".
				v, ok := closeBuf()
				if !ok {
					return parseFailure(line)
				}
				im = v
				state = stateFinished
				i++
			default:
				return parseFailure(line)
			}

		case stateAfterRe:
			switch {
			case isSpace(c):
				i++
			case c == '+' || c == '-':
				sign = c
				state = stateWaitI
				i++
			default:
				return parseFailure(line)
			}

		case stateFinished:
			i = len(input)
		}
	}

	// Finalize whatever number the buffer holds at end of input.
	switch state {
	case stateRe:
		v, ok := closeBuf()
		if !ok {
			return parseFailure(line)
		}
		re = v
	case stateIm:
		if len(buf) == 0 {
			buf = append(buf, '1')
		}
		v, ok := closeBuf()
		if !ok {
			return parseFailure(line)
		}
		im = v
	case stateFinished, stateAfterRe:
		// complete as accumulated
	default:
		return parseFailure(line)
	}

	return Complex{re: re, im: im}, nil
}

func parseFailure(line string) (Complex, error) {
	return Complex{}, errgo.WithCausef(nil, ErrSyntax, "%s is not a parsable complex number", line)
}

func isDigitOrDot(c byte) bool {
	return c >= '0' && c <= '9' || c == '.'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
