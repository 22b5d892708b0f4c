package decalc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatFull renders a float as a plain decimal string with no exponent
// marker and no information loss versus the value's scientific-notation
// form. Magnitudes in [1e-6, 1e16) pass through the shortest plain-decimal
// conversion with trailing fractional zeros trimmed; everything else is
// rebuilt from the mantissa digits with exact integer arithmetic. The
// result is a pure function of the bit pattern.
//
// NaN renders as "NaN" and the infinities as "Infinity" and "-Infinity".
func FormatFull(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); 1e-6 <= abs && abs < 1e16 {
		// Shortest plain-decimal conversion round-trips exactly, and 'f'
		// never switches to exponent form the way 'g' does, so the whole
		// band stays on this path.
		return trimZeros(strconv.FormatFloat(f, 'f', -1, 64))
	}
	mant, exp := splitSci(f)
	var s string
	if mant < 0 {
		s = "-" + expandMantissa(-mant, exp)
	} else {
		s = expandMantissa(mant, exp)
	}
	return trimZeros(s)
}

// splitSci breaks a float into its shortest scientific-notation mantissa
// and base-10 exponent. f must be finite.
func splitSci(f float64) (float64, int) {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	k := strings.IndexByte(s, 'e')
	mant, err := strconv.ParseFloat(s[:k], 64)
	if err != nil {
		panic("decalc: bad mantissa " + strconv.Quote(s[:k]) + ": " + err.Error())
	}
	exp, err := strconv.Atoi(s[k+1:])
	if err != nil {
		panic("decalc: bad exponent " + strconv.Quote(s[k+1:]) + ": " + err.Error())
	}
	return mant, exp
}

// expandMantissa renders mant×10^exp, mant non-negative, as a plain
// decimal string. The mantissa is fixed to 15 fractional digits, its
// integer and fractional digit runs are joined into one integer, and the
// exponent is adjusted by the number of fractional digits moved. The
// digits then shift across the decimal point with big.Int arithmetic;
// floating-point multiplication here would reintroduce the rounding the
// formatter exists to avoid.
func expandMantissa(mant float64, exp int) string {
	m := trimZeros(strconv.FormatFloat(mant, 'f', 15, 64))
	intRun, fracRun := m, ""
	if k := strings.IndexByte(m, '.'); k >= 0 {
		intRun, fracRun = m[:k], m[k+1:]
	}
	digits, ok := new(big.Int).SetString(intRun+fracRun, 10)
	if !ok {
		panic("decalc: bad mantissa digits " + strconv.Quote(intRun+fracRun))
	}
	adjusted := exp - len(fracRun)
	if adjusted >= 0 {
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(adjusted)), nil)
		return digits.Mul(digits, pow).String()
	}
	s := digits.String()
	shift := -adjusted
	if shift >= len(s) {
		// Purely fractional: pad zeros between the point and the digits.
		return "0." + strings.Repeat("0", shift-len(s)) + s
	}
	return s[:len(s)-shift] + "." + s[len(s)-shift:]
}

// trimZeros strips trailing fractional zeros and a dangling decimal point.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
