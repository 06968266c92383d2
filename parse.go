package floatconv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput occurs when the input contains no characters.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidCharacter occurs when the input contains a character
	// outside the decimal number grammar.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrMissingDigits occurs when the mantissa contains no digits,
	// e.g. "-", ".", or ".e5".
	ErrMissingDigits = errors.New("missing digits")

	// ErrMalformedExponent occurs when an exponent marker is not
	// followed by at least one digit, e.g. "1e" or "1e+".
	ErrMalformedExponent = errors.New("malformed exponent")
)

// maxParseDigits caps the significant digits kept for exact rounding.
// The longest decimal expansion of a midpoint between two float64
// values has 767 digits, so digits beyond the cap can only matter as
// a sticky "something nonzero follows" bit.
const maxParseDigits = 800

// maxParseExp caps exponent accumulation. Anything beyond it already
// overflows or underflows every supported format.
const maxParseExp = 10_000

// scanned is the result of scanning a decimal number: the significant
// digits both as a capped uint64 mantissa for the fast path and as a
// digit buffer for the exact fallback.
type scanned struct {
	neg bool

	mant  fint // first 19 significant digits
	mexp  int  // value ~ mant * 10^mexp
	trunc bool // mant dropped nonzero digits

	d      []byte // up to maxParseDigits significant digits
	dp     int    // value = 0.d * 10^dp
	sticky bool   // d dropped nonzero digits
}

// scanDecimal scans the grammar
//
//	[sign] digits [. digits] [(e|E) [sign] digits]
//
// where at least one mantissa digit must be present on either side of
// the decimal point. Leading and trailing zeros are not recorded; only
// significant digits are kept.
func scanDecimal(s string) (sc scanned, err error) {
	if len(s) == 0 {
		return scanned{}, ErrEmptyInput
	}

	i := 0
	switch s[i] {
	case '+':
		i++
	case '-':
		sc.neg = true
		i++
	}

	sawDot := false
	sawDigits := false
	nd := 0     // significant digits seen
	ndMant := 0 // digits accumulated into mant
	dp := 0

loop:
	for ; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			if sawDot {
				return scanned{}, fmt.Errorf("unexpected character %q at position %d: %w", c, i, ErrInvalidCharacter)
			}
			sawDot = true
			dp = nd
		case '0' <= c && c <= '9':
			sawDigits = true
			if c == '0' && nd == 0 { // skip leading zeros
				dp--
				continue
			}
			nd++
			if len(sc.d) < maxParseDigits {
				sc.d = append(sc.d, c)
			} else if c != '0' {
				sc.sticky = true
			}
			if m, ok := sc.mant.fsa(1, c-'0'); ok {
				sc.mant = m
				ndMant++
			} else if c != '0' {
				sc.trunc = true
			}
		default:
			break loop
		}
	}
	if !sawDigits {
		if i < len(s) && s[i] != 'e' && s[i] != 'E' {
			return scanned{}, fmt.Errorf("unexpected character %q at position %d: %w", s[i], i, ErrInvalidCharacter)
		}
		return scanned{}, ErrMissingDigits
	}
	if !sawDot {
		dp = nd
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		esign := 1
		if i < len(s) {
			switch s[i] {
			case '+':
				i++
			case '-':
				esign = -1
				i++
			}
		}
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return scanned{}, ErrMalformedExponent
		}
		e := 0
		for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
			if e < maxParseExp {
				e = 10*e + int(s[i]-'0')
			}
		}
		dp += e * esign
	}
	if i != len(s) {
		return scanned{}, fmt.Errorf("unexpected character %q at position %d: %w", s[i], i, ErrInvalidCharacter)
	}

	// Trailing zeros of the mantissa carry no information.
	for len(sc.d) > 0 && sc.d[len(sc.d)-1] == '0' {
		sc.d = sc.d[:len(sc.d)-1]
	}

	sc.dp = dp
	if sc.mant != 0 {
		sc.mexp = dp - ndMant
	}
	return sc, nil
}

// parseSpecial recognizes the spellings of non-finite values:
// "inf", "infinity" and "nan", case-insensitively, with an optional
// leading sign. The sign of a NaN is discarded.
func parseSpecial(s string) (neg bool, cls fclass, ok bool) {
	if len(s) == 0 {
		return false, classZero, false
	}
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	switch {
	case strings.EqualFold(s, "inf"), strings.EqualFold(s, "infinity"):
		return neg, classInf, true
	case strings.EqualFold(s, "nan"):
		return false, classNaN, true
	}
	return false, classZero, false
}

// Powers of ten that are exactly representable in the respective
// binary format.
var float64pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

var float32pow10 = [...]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// parse64exact converts mant * 10^exp using float arithmetic only when
// every intermediate step is exact. A float64 multiply or divide of
// exactly representable operands is correctly rounded by the hardware,
// so the result is bit-identical on every architecture.
func parse64exact(mant fint, exp int, neg bool) (f float64, ok bool) {
	if uint64(mant)>>binary64.mantBits != 0 {
		return 0, false
	}
	f = float64(mant)
	if neg {
		f = -f
	}
	switch {
	case exp == 0:
		return f, true
	case exp > 0 && exp <= 15+22:
		// 10^k for k <= 22 is exact, and the product of two exactly
		// representable halves is correctly rounded. Splitting off
		// 10^(exp-22) keeps the intermediate integral and exact while
		// it fits below 10^15 * 2^52.
		if exp > 22 {
			f *= float64pow10[exp-22]
			exp = 22
		}
		if f > 1e15 || f < -1e15 {
			return 0, false
		}
		return f * float64pow10[exp], true
	case exp < 0 && exp >= -22:
		return f / float64pow10[-exp], true
	}
	return 0, false
}

// parse32exact is the float32 analogue of parse64exact.
func parse32exact(mant fint, exp int, neg bool) (f float32, ok bool) {
	if uint64(mant)>>binary32.mantBits != 0 {
		return 0, false
	}
	f = float32(mant)
	if neg {
		f = -f
	}
	switch {
	case exp == 0:
		return f, true
	case exp > 0 && exp <= 7+10:
		if exp > 10 {
			f *= float32pow10[exp-10]
			exp = 10
		}
		if f > 1e7 || f < -1e7 {
			return 0, false
		}
		return f * float32pow10[exp], true
	case exp < 0 && exp >= -10:
		return f / float32pow10[-exp], true
	}
	return 0, false
}

// parseSlow converts the scanned digits to the nearest representable
// value using exact big integer arithmetic. The decimal is expressed
// as a ratio num/den, scaled by a binary exponent until the quotient
// carries exactly the format's precision, then rounded half to even
// with the sticky bit breaking exact ties upward. Overflow yields an
// infinity and underflow a signed zero; neither is an error.
func parseSlow(sc *scanned, ft *binaryFormat) uint64 {
	if len(sc.d) == 0 {
		return ft.compose(sc.neg, 0, 0)
	}
	// Certain overflow or underflow, short of exact arithmetic.
	// The bounds are those of the widest supported format.
	if sc.dp > 310 {
		return ft.infBits(sc.neg)
	}
	if sc.dp < -330 {
		return ft.compose(sc.neg, 0, 0)
	}

	num := getBint()
	defer putBint(num)
	den := getBint()
	defer putBint(den)

	num.setDigits(sc.d)
	den.setInt64(1)
	if e10 := sc.dp - len(sc.d); e10 >= 0 {
		num.lsh(num, e10)
	} else {
		den.pow10(-e10)
	}

	prec := int(ft.mantBits) + 1
	minExp, maxExp := ft.minExp(), ft.maxExp()

	// Estimate the binary exponent from the bit lengths; the quotient
	// below then misses the target precision by at most one bit, and
	// each correction step changes its length by exactly one.
	exp := num.bitLen() - den.bitLen() - prec
	if exp < minExp {
		exp = minExp
	}

	n2 := getBint()
	defer putBint(n2)
	d2 := getBint()
	defer putBint(d2)
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)

	for {
		if exp >= 0 {
			n2.setBint(num)
			d2.shl(den, exp)
		} else {
			n2.shl(num, -exp)
			d2.setBint(den)
		}
		q.quoRem(n2, d2, r)
		if q.bitLen() > prec {
			exp++
			continue
		}
		if q.bitLen() < prec && exp > minExp {
			exp--
			continue
		}
		break
	}

	// Round half to even. A set sticky bit means the true value lies
	// strictly above num/den; the dropped tail is far too small to
	// move the value across a midpoint, so it can only break an exact
	// tie upward.
	r.dbl(r)
	up := false
	switch r.cmp(d2) {
	case 1:
		up = true
	case 0:
		up = sc.sticky || q.isOdd()
	}

	mant := uint64(q.fint())
	if up {
		mant++
		if mant == 1<<uint(prec) {
			mant >>= 1
			exp++
		}
	}
	if mant == 0 {
		return ft.compose(sc.neg, 0, 0)
	}
	if exp > maxExp {
		return ft.infBits(sc.neg)
	}
	return ft.compose(sc.neg, mant, exp)
}
