package floatconv

import "math"

// fclass is the IEEE 754 class of a decomposed value.
type fclass int8

const (
	classZero fclass = iota
	classSubnormal
	classNormal
	classInf
	classNaN
)

// binaryFormat describes an IEEE 754 binary interchange format.
type binaryFormat struct {
	mantBits uint // width of the mantissa field
	expBits  uint // width of the exponent field
	bias     int  // exponent bias, as a negative offset
}

var (
	binary32 = &binaryFormat{mantBits: 23, expBits: 8, bias: -127}
	binary64 = &binaryFormat{mantBits: 52, expBits: 11, bias: -1023}
)

// minExp returns the smallest exponent e such that a nonzero value
// mant * 2^e is representable. It is the exponent of all subnormals.
func (ft *binaryFormat) minExp() int {
	return ft.bias + 1 - int(ft.mantBits)
}

// maxExp returns the largest exponent e such that a value mant * 2^e
// with a full-width significand is representable.
func (ft *binaryFormat) maxExp() int {
	return 1<<ft.expBits - 2 + ft.bias - int(ft.mantBits)
}

// binFloat is a decomposed binary floating-point value.
// For finite classes the numeric value equals mant * 2^exp,
// negated when neg is true. The significand of a normal value
// carries the implicit leading bit.
type binFloat struct {
	neg   bool
	mant  uint64
	exp   int
	class fclass
}

// decompose splits a bit pattern into sign, significand, and unbiased
// exponent, and classifies the value. Every bit pattern of the format's
// width is a valid encoding, so decompose is total. NaN sign and
// payload bits are discarded.
func (ft *binaryFormat) decompose(b uint64) binFloat {
	neg := b>>(ft.expBits+ft.mantBits) != 0
	exp := int(b>>ft.mantBits) & (1<<ft.expBits - 1)
	mant := b & (uint64(1)<<ft.mantBits - 1)

	switch exp {
	case 1<<ft.expBits - 1:
		if mant != 0 {
			return binFloat{class: classNaN}
		}
		return binFloat{neg: neg, class: classInf}
	case 0:
		if mant == 0 {
			return binFloat{neg: neg, class: classZero}
		}
		// Subnormals have the minimum exponent and no implicit bit.
		return binFloat{neg: neg, mant: mant, exp: ft.minExp(), class: classSubnormal}
	}

	mant |= uint64(1) << ft.mantBits
	return binFloat{neg: neg, mant: mant, exp: exp + ft.bias - int(ft.mantBits), class: classNormal}
}

// compose assembles the bit pattern of the value mant * 2^exp.
// mant must fit in mantBits+1 bits; a significand without the implicit
// leading bit is encoded as a subnormal and must come with exp equal
// to minExp. compose is the inverse of decompose for finite values.
func (ft *binaryFormat) compose(neg bool, mant uint64, exp int) uint64 {
	var biased int
	if mant>>ft.mantBits != 0 {
		biased = exp + int(ft.mantBits) - ft.bias
	}
	b := mant & (uint64(1)<<ft.mantBits - 1)
	b |= uint64(biased&(1<<ft.expBits-1)) << ft.mantBits
	if neg {
		b |= 1 << ft.mantBits << ft.expBits
	}
	return b
}

// infBits returns the bit pattern of a signed infinity.
func (ft *binaryFormat) infBits(neg bool) uint64 {
	b := uint64(1<<ft.expBits-1) << ft.mantBits
	if neg {
		b |= 1 << ft.mantBits << ft.expBits
	}
	return b
}

// decompose64 and decompose32 are the only places where a float's bit
// pattern is reinterpreted on the encode path.
func decompose64(f float64) binFloat {
	return binary64.decompose(math.Float64bits(f))
}

func decompose32(f float32) binFloat {
	return binary32.decompose(uint64(math.Float32bits(f)))
}

// compose64 and compose32 are the only places where a bit pattern is
// reinterpreted as a float on the parse path.
func compose64(b uint64) float64 {
	return math.Float64frombits(b)
}

func compose32(b uint64) float32 {
	return math.Float32frombits(uint32(b))
}
