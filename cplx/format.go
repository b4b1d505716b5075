package cplx

import (
	"math"
	"strconv"
)

// String renders z in a compact algebraic form: "0", "i", "-i", "2.5i",
// "3-i", "3-2i", "3+i", "3+2i". A zero imaginary part next to a nonzero real
// part is kept ("2+0i").
func (z Complex) String() string {
	re, im := real(z), imag(z)
	if re == 0 {
		switch im {
		case 0:
			return "0"
		case 1:
			return "i"
		case -1:
			return "-i"
		}
		return formatScalar(im) + "i"
	}
	if im < 0 {
		if im == -1 {
			return formatScalar(re) + "-i"
		}
		// The imaginary part's own sign is the separator.
		return formatScalar(re) + formatScalar(im) + "i"
	}
	if im == 1 {
		return formatScalar(re) + "+i"
	}
	return formatScalar(re) + "+" + formatScalar(im) + "i"
}

// formatScalar prints the shortest decimal that round-trips through float32,
// never in exponent form.
func formatScalar(v float32) string {
	switch {
	case math.IsInf(float64(v), 1):
		return "inf"
	case math.IsInf(float64(v), -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
