package floatconv

// dec is a sequence of significant decimal digits with an attached
// decimal point. The represented value is 0.d[:nd] * 10^dp.
// The sequence carries no leading or trailing zeros; a value of zero
// has nd == 0.
type dec struct {
	d  []byte // ASCII digits, most significant first
	nd int    // number of digits used
	dp int    // decimal point position
}

// trim drops trailing zeros. The decimal point does not move.
func (x *dec) trim() {
	for x.nd > 0 && x.d[x.nd-1] == '0' {
		x.nd--
	}
	if x.nd == 0 {
		x.dp = 0
	}
}

// roundDown truncates x to nd digits.
func (x *dec) roundDown(nd int) {
	if nd < 0 || nd >= x.nd {
		return
	}
	x.nd = nd
	x.trim()
}

// roundUp truncates x to nd digits, rounding away from zero.
func (x *dec) roundUp(nd int) {
	if nd < 0 || nd >= x.nd {
		return
	}
	for i := nd - 1; i >= 0; i-- {
		if x.d[i] < '9' {
			x.d[i]++
			x.nd = i + 1
			return
		}
	}
	// All nines: 99... rolls over to 10...
	x.d[0] = '1'
	x.nd = 1
	x.dp++
}

// round truncates x to nd digits, rounding half to even.
// x must be an exact expansion, so "all remaining digits are zero"
// is the only way a tail can be exactly one half.
func (x *dec) round(nd int) {
	if nd < 0 || nd >= x.nd {
		return
	}
	if x.shouldRoundUp(nd) {
		x.roundUp(nd)
	} else {
		x.roundDown(nd)
	}
}

func (x *dec) shouldRoundUp(nd int) bool {
	if nd < 0 || nd >= x.nd {
		return false
	}
	if x.d[nd] == '5' && nd+1 == x.nd { // exactly halfway, round to even
		return nd > 0 && (x.d[nd-1]-'0')%2 != 0
	}
	return x.d[nd] >= '5'
}

// expand returns the exact decimal expansion of mant * 2^exp.
// A binary value is a dyadic rational, so the expansion is finite:
// mant * 2^exp = (mant * 5^-exp) * 10^exp when exp is negative.
func expand(mant uint64, exp int) dec {
	if x, ok := expandFast(mant, exp); ok {
		return x
	}
	return expandSlow(mant, exp)
}

func expandFast(mant uint64, exp int) (dec, bool) {
	var (
		coef fint
		ok   bool
	)
	coef = fint(mant)
	if exp >= 0 {
		coef, ok = coef.shl(exp)
	} else {
		coef, ok = coef.mulPow5(-exp)
	}
	if !ok {
		return dec{}, false
	}

	nd := coef.prec()
	d := make([]byte, nd)
	for i := nd - 1; i >= 0; i-- {
		d[i] = byte(coef%10) + '0'
		coef /= 10
	}

	x := dec{d: d, nd: nd, dp: nd}
	if exp < 0 {
		x.dp += exp
	}
	x.trim()
	return x, true
}

func expandSlow(mant uint64, exp int) dec {
	b := getBint()
	defer putBint(b)

	b.setFint(fint(mant))
	if exp >= 0 {
		b.shl(b, exp)
	} else {
		b.mulPow5(b, -exp)
	}
	d := []byte(b.string())

	x := dec{d: d, nd: len(d), dp: len(d)}
	if exp < 0 {
		x.dp += exp
	}
	x.trim()
	return x
}

// encodeShortest returns the shortest digit sequence that parses back
// to exactly mant * 2^exp under round-to-nearest-even. The input must
// be finite and nonzero; zeros are rendered directly by the formatter.
//
// The exact expansion of the value is trimmed against the exact
// expansions of the midpoints separating it from its neighbors: the
// digit walk stops at the first position where truncating, or rounding
// up, lands inside the rounding interval. Everything is computed on
// exact integers, so the boundary comparisons are never off by one.
func encodeShortest(mant uint64, exp int, ft *binaryFormat) dec {
	x := expand(mant, exp)

	// The rounding interval is at most 2^exp wide, while the closest
	// shorter decimal is at least 10^(dp-nd) away. When the latter
	// provably exceeds the former, the expansion is already shortest.
	// 332/100 > log2(10).
	minexp := ft.minExp()
	if exp > minexp && 332*(x.dp-x.nd) >= 100*exp {
		return x
	}

	// Midpoints between mant*2^exp and its neighbors. The gap below
	// is halved when mant sits at the bottom of its binade.
	upper := expand(2*mant+1, exp-1)
	var lower dec
	if mant > 1<<ft.mantBits || exp == minexp {
		lower = expand(2*mant-1, exp-1)
	} else {
		lower = expand(4*mant-1, exp-2)
	}

	// Round-to-nearest-even parsing maps a midpoint to the neighbor
	// with the even significand, so the interval is closed exactly
	// when mant is even.
	inclusive := !fint(mant).isOdd()

	// Track whether rounding up at the current position stays below
	// the upper midpoint:
	//   0 - the digits of x and upper agree so far;
	//   1 - they differed by one, followed by 9s in x and 0s in upper,
	//       so rounding up reaches upper exactly;
	//   2 - rounding up stays strictly below upper.
	var upperdelta uint8

	// Walk from the most significant digit until x has distinguished
	// itself from both midpoints. upper may carry one more leading
	// digit, so the walk is indexed by upper's digits.
	for ui := 0; ; ui++ {
		xi := ui - upper.dp + x.dp
		if xi >= x.nd {
			break
		}
		li := ui - upper.dp + lower.dp
		l := byte('0')
		if li >= 0 && li < lower.nd {
			l = lower.d[li]
		}
		m := byte('0')
		if xi >= 0 {
			m = x.d[xi]
		}
		u := byte('0')
		if ui < upper.nd {
			u = upper.d[ui]
		}

		// Truncating here is allowed once x has exceeded lower, or
		// once x equals an inclusive lower exactly.
		okdown := l != m || inclusive && li+1 == lower.nd

		switch {
		case upperdelta == 0 && m+1 < u:
			upperdelta = 2
		case upperdelta == 0 && m != u:
			upperdelta = 1
		case upperdelta == 1 && (m != '9' || u != '0'):
			upperdelta = 2
		}
		okup := upperdelta > 0 && (inclusive || upperdelta > 1 || ui+1 < upper.nd)

		// If both directions stay inside the interval, round to the
		// nearest; an exact tie picks the even digit.
		switch {
		case okdown && okup:
			x.round(xi + 1)
			return x
		case okdown:
			x.roundDown(xi + 1)
			return x
		case okup:
			x.roundUp(xi + 1)
			return x
		}
	}
	return x
}
