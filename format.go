package floatconv

// appendSpecial renders an infinity or NaN spelling.
// NaN discards the sign; infinities keep it.
func appendSpecial(dst []byte, x binFloat, dialect Dialect) []byte {
	if x.class == classNaN {
		return append(dst, dialect.NaN...)
	}
	if x.neg {
		dst = append(dst, '-')
	}
	return append(dst, dialect.Inf...)
}

// appendDigits lays out a digit sequence as text. It chooses between
// fixed and scientific notation from the decimal exponent and never
// alters the digits themselves, so the result always parses back to
// the same value. A negative zero keeps its sign.
func appendDigits(dst []byte, x dec, neg bool, dialect Dialect) []byte {
	if neg {
		dst = append(dst, '-')
	}
	exp := x.dp - 1
	if x.nd == 0 {
		exp = 0
	}
	if exp < dialect.ExpLower || exp >= dialect.ExpUpper {
		return appendSci(dst, x, dialect)
	}
	return appendFixed(dst, x, dialect)
}

// appendFixed renders ddd.ddd, zero padded on either side of the
// decimal point as needed.
func appendFixed(dst []byte, x dec, dialect Dialect) []byte {
	// Integer part.
	if x.dp > 0 {
		m := min(x.nd, x.dp)
		dst = append(dst, x.d[:m]...)
		for ; m < x.dp; m++ {
			dst = append(dst, '0')
		}
	} else {
		dst = append(dst, '0')
	}

	// Fraction.
	frac := x.nd - x.dp
	if frac < 0 {
		frac = 0
	}
	if (frac > 0 || dialect.ForceFrac) && frac < dialect.MinFrac {
		frac = dialect.MinFrac
	}
	if frac > 0 {
		dst = append(dst, '.')
		for i := 0; i < frac; i++ {
			ch := byte('0')
			if j := x.dp + i; 0 <= j && j < x.nd {
				ch = x.d[j]
			}
			dst = append(dst, ch)
		}
	}
	return dst
}

// appendSci renders d.ddd followed by the exponent marker and the
// decimal exponent of the leading digit.
func appendSci(dst []byte, x dec, dialect Dialect) []byte {
	ch := byte('0')
	if x.nd > 0 {
		ch = x.d[0]
	}
	dst = append(dst, ch)
	if x.nd > 1 {
		dst = append(dst, '.')
		dst = append(dst, x.d[1:x.nd]...)
	}
	dst = append(dst, dialect.ExpMarker)

	exp := x.dp - 1
	if x.nd == 0 {
		exp = 0
	}
	if exp < 0 {
		dst = append(dst, '-')
		exp = -exp
	} else if dialect.ExpSign {
		dst = append(dst, '+')
	}

	var buf [8]byte
	i := len(buf)
	for exp > 0 {
		i--
		buf[i] = byte(exp%10) + '0'
		exp /= 10
	}
	width := max(dialect.ExpDigits, 1)
	if width > len(buf) {
		width = len(buf)
	}
	for len(buf)-i < width {
		i--
		buf[i] = '0'
	}
	return append(dst, buf[i:]...)
}
