package floatconv

// Dialect configures how a converted digit sequence is laid out as
// text. Digit generation is dialect independent; a Dialect only
// chooses between fixed and scientific notation and decorates the
// result. Dialects are plain values and may be shared freely across
// goroutines.
type Dialect struct {
	// MinFrac is the minimum number of digits rendered after the
	// decimal point in fixed notation. Missing digits are padded
	// with zeros. It applies only when a fractional part is present
	// or forced.
	MinFrac int

	// ForceFrac renders a fractional part even for integral values in
	// fixed notation, e.g. "100.0" instead of "100".
	ForceFrac bool

	// ExpLower and ExpUpper bound the decimal exponents rendered in
	// fixed notation. A value with exponent e, where the leading digit
	// has weight 10^e, uses fixed notation when ExpLower <= e < ExpUpper
	// and scientific notation otherwise.
	ExpLower int
	ExpUpper int

	// ExpMarker separates the digits from the exponent in scientific
	// notation, typically 'e' or 'E'.
	ExpMarker byte

	// ExpSign renders an explicit '+' on non-negative exponents.
	// Negative exponents always carry '-'.
	ExpSign bool

	// ExpDigits is the minimum number of exponent digits; shorter
	// exponents are zero padded.
	ExpDigits int

	// Inf and NaN are the spellings of the non-finite values.
	// The sign of an infinity is prepended to Inf; NaN is rendered
	// without a sign.
	Inf string
	NaN string
}

// DialectDefault is a language-neutral layout: fixed notation for
// exponents in [-4, 21), a bare 'e' exponent otherwise, and no forced
// fractional part. 0.125 renders as "0.125", 2^100 as "1.2676506002282294e30".
var DialectDefault = Dialect{
	ExpLower:  -4,
	ExpUpper:  21,
	ExpMarker: 'e',
	ExpDigits: 1,
	Inf:       "Inf",
	NaN:       "NaN",
}

// DialectLua reproduces how Lua's tostring spells numbers with its
// "%.14g" format: fixed notation for exponents in [-4, 14), a trailing
// ".0" on integral values, and a signed, two-digit exponent otherwise.
// 100 renders as "100.0", 10^15 as "1e+15", 2^-20 as "9.5367431640625e-07".
var DialectLua = Dialect{
	MinFrac:   1,
	ForceFrac: true,
	ExpLower:  -4,
	ExpUpper:  14,
	ExpMarker: 'e',
	ExpSign:   true,
	ExpDigits: 2,
	Inf:       "inf",
	NaN:       "nan",
}
