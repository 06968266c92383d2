/*
Package floatconv implements conversion between IEEE 754 binary
floating point values and their decimal text form, for both float64
and float32.

# Features

  - Shortest output: formatting produces the fewest decimal digits
    that still parse back to exactly the original value, with an
    exact tie resolved toward the digit sequence closest to the value.
  - Correct rounding: parsing returns the representable value nearest
    to the literal, rounding half to even, no matter how many digits
    the literal carries.
  - Deterministic: both directions are computed with integer
    arithmetic only, so results are bit-identical across platforms.
  - Dialects: the digit layout is configurable at runtime, including
    a preset that reproduces Lua's tostring output.

# Formatting

[Format64], [Format32] and their appending variants [Append64] and
[Append32] first decompose the value into sign, mantissa and binary
exponent, then generate the shortest digit sequence, and finally lay
the digits out according to a [Dialect]:

	floatconv.Format64(0.1, floatconv.DialectDefault)   // "0.1"
	floatconv.Format64(100, floatconv.DialectLua)       // "100.0"
	floatconv.Format64(1e15, floatconv.DialectLua)      // "1e+15"
	floatconv.Format64(math.Inf(-1), floatconv.DialectDefault) // "-Inf"

Digit generation is dialect independent: a dialect only chooses
between fixed and scientific notation and decorates the result, so
every dialect's output converts back to the same value. A negative
zero keeps its sign.

# Parsing

[Parse64] and [Parse32] accept an optional sign, a mantissa with an
optional fractional part, an optional 'e' or 'E' exponent, and the
spellings "inf", "infinity" and "nan" in any case:

	floatconv.Parse64("1.5e10") // 1.5e10, nil
	floatconv.Parse64("1e400")  // +Inf, nil
	floatconv.Parse64("1e")     // 0, ErrMalformedExponent

A literal whose magnitude exceeds the format yields an infinity and
one too small a signed zero; neither is an error. Errors wrap one of
[ErrEmptyInput], [ErrInvalidCharacter], [ErrMissingDigits], or
[ErrMalformedExponent]. [MustParse64] and [MustParse32] panic instead
of returning an error.

Parsing rounds once, directly to the target precision. For inputs of
at most 19 digits whose scale allows exact float arithmetic, a fast
path converts without allocating; all other inputs fall back to exact
big integer arithmetic.
*/
package floatconv
