package floatconv

import "math"

// Format64 converts f to the shortest decimal text that parses back
// to exactly f, laid out according to dialect.
func Format64(f float64, dialect Dialect) string {
	return string(Append64(nil, f, dialect))
}

// Format32 converts f to the shortest decimal text that parses back
// to exactly f, laid out according to dialect.
func Format32(f float32, dialect Dialect) string {
	return string(Append32(nil, f, dialect))
}

// Append64 appends the shortest decimal text of f to dst and returns
// the extended buffer.
func Append64(dst []byte, f float64, dialect Dialect) []byte {
	return appendFloat(dst, decompose64(f), binary64, dialect)
}

// Append32 appends the shortest decimal text of f to dst and returns
// the extended buffer.
func Append32(dst []byte, f float32, dialect Dialect) []byte {
	return appendFloat(dst, decompose32(f), binary32, dialect)
}

func appendFloat(dst []byte, x binFloat, ft *binaryFormat, dialect Dialect) []byte {
	switch x.class {
	case classNaN, classInf:
		return appendSpecial(dst, x, dialect)
	case classZero:
		return appendDigits(dst, dec{}, x.neg, dialect)
	}
	return appendDigits(dst, encodeShortest(x.mant, x.exp, ft), x.neg, dialect)
}

// Parse64 converts decimal text to the nearest float64, rounding half
// to even. It accepts an optional sign, a mantissa with an optional
// fractional part, an optional exponent, and the special spellings of
// infinities and NaN in any case. Values too large for a float64 yield
// an infinity and values too small a signed zero; neither is an error.
//
// Errors wrap ErrEmptyInput, ErrInvalidCharacter, ErrMissingDigits, or
// ErrMalformedExponent.
func Parse64(s string) (float64, error) {
	if neg, cls, ok := parseSpecial(s); ok {
		if cls == classNaN {
			return math.NaN(), nil
		}
		return compose64(binary64.infBits(neg)), nil
	}
	sc, err := scanDecimal(s)
	if err != nil {
		return 0, err
	}
	if !sc.trunc {
		if f, ok := parse64exact(sc.mant, sc.mexp, sc.neg); ok {
			return f, nil
		}
	}
	return compose64(parseSlow(&sc, binary64)), nil
}

// Parse32 converts decimal text to the nearest float32, rounding half
// to even. The grammar and the error and overflow behavior match
// Parse64. Parsing rounds once, directly to float32 precision, so the
// result can differ from a float64 parse narrowed afterwards.
func Parse32(s string) (float32, error) {
	if neg, cls, ok := parseSpecial(s); ok {
		if cls == classNaN {
			return float32(math.NaN()), nil
		}
		return compose32(binary32.infBits(neg)), nil
	}
	sc, err := scanDecimal(s)
	if err != nil {
		return 0, err
	}
	if !sc.trunc {
		if f, ok := parse32exact(sc.mant, sc.mexp, sc.neg); ok {
			return f, nil
		}
	}
	return compose32(parseSlow(&sc, binary32)), nil
}
