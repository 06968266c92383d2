package floatconv

import (
	"math/big"
	"math/bits"
	"sync"
)

// fint (Fast INTeger) is a wrapper around uint64.
type fint uint64

// maxFint is a maximum value of fint.
const maxFint = 9_999_999_999_999_999_999

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// pow5 is a cache of powers of 5, where pow5[x] = 5^x.
// 5^27 is the largest power of 5 that fits in uint64.
var pow5 = [...]fint{
	1,                         // 5^0
	5,                         // 5^1
	25,                        // 5^2
	125,                       // 5^3
	625,                       // 5^4
	3_125,                     // 5^5
	15_625,                    // 5^6
	78_125,                    // 5^7
	390_625,                   // 5^8
	1_953_125,                 // 5^9
	9_765_625,                 // 5^10
	48_828_125,                // 5^11
	244_140_625,               // 5^12
	1_220_703_125,             // 5^13
	6_103_515_625,             // 5^14
	30_517_578_125,            // 5^15
	152_587_890_625,           // 5^16
	762_939_453_125,           // 5^17
	3_814_697_265_625,         // 5^18
	19_073_486_328_125,        // 5^19
	95_367_431_640_625,        // 5^20
	476_837_158_203_125,       // 5^21
	2_384_185_791_015_625,     // 5^22
	11_920_928_955_078_125,    // 5^23
	59_604_644_775_390_625,    // 5^24
	298_023_223_876_953_125,   // 5^25
	1_490_116_119_384_765_625, // 5^26
	7_450_580_596_923_828_125, // 5^27
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if maxFint-x < y {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	if z > maxFint {
		return 0, false
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case shift == 1 && x < maxFint/10: // to speed up common case
		return x * 10, true
	case shift >= len(pow10):
		return 0, false
	}
	// General case
	y := pow10[shift]
	return x.mul(y)
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	z, ok = z.add(fint(b))
	if !ok {
		return 0, false
	}
	return z, true
}

// shl calculates x * 2^shift and checks overflow.
func (x fint) shl(shift int) (z fint, ok bool) {
	switch {
	case shift <= 0:
		return x, true
	case shift >= 64 || bits.LeadingZeros64(uint64(x)) < shift:
		return 0, false
	}
	z = x << shift
	if z > maxFint {
		return 0, false
	}
	return z, true
}

// mulPow5 calculates x * 5^power and checks overflow.
func (x fint) mulPow5(power int) (z fint, ok bool) {
	switch {
	case power <= 0:
		return x, true
	case power >= len(pow5):
		return 0, false
	}
	y := pow5[power]
	return x.mul(y)
}

func (x fint) isOdd() bool {
	return x&1 != 0
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x fint) prec() int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = newBintPowers(10, 100)

// bpow5 is a cache of powers of 5, where bpow5[x] = 5^x.
var bpow5 = newBintPowers(5, 100)

// newBintPowers creates a cache of *big.Int powers, where cache[x] = base^x.
func newBintPowers(base int64, size int) []*bint {
	cache := make([]*bint, size)
	for i := range cache {
		z := (*bint)(new(big.Int))
		z.power(base, i)
		cache[i] = z
	}
	return cache
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

func (z *bint) setFint(x fint) {
	(*big.Int)(z).SetUint64(uint64(x))
}

// setDigits sets z to the integer spelled by the given ASCII decimal digits.
func (z *bint) setDigits(digits []byte) bool {
	_, ok := (*big.Int)(z).SetString(string(digits), 10)
	return ok
}

// fint converts *big.Int to uint64.
// If z cannot be represented as uint64, the result is undefined.
func (z *bint) fint() fint {
	f := (*big.Int)(z).Uint64()
	return fint(f)
}

// bitLen returns the length of z in bits.
// bitLen assumes that 0 has no bits.
func (z *bint) bitLen() int {
	return (*big.Int)(z).BitLen()
}

func (z *bint) isOdd() bool {
	return (*big.Int)(z).Bit(0) != 0
}

// dbl (Double) calculates z = x * 2.
func (z *bint) dbl(x *bint) {
	(*big.Int)(z).Lsh((*big.Int)(x), 1)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	// Copying x, y to prevent heap allocations.
	if z == x {
		b := getBint()
		defer putBint(b)
		b.setBint(x)
		x = b
	}
	if z == y {
		b := getBint()
		defer putBint(b)
		b.setBint(y)
		y = b
	}
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// power calculates z = base^exponent.
// If exponent is negative, the result is unpredictable.
func (z *bint) power(base int64, exponent int) {
	x := getBint()
	defer putBint(x)
	x.setInt64(base)
	y := getBint()
	defer putBint(y)
	y.setInt64(int64(exponent))
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// quoRem calculates z and r such that x = z * y + r.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.power(10, shift)
	}
	z.mul(x, y)
}

// shl calculates z = x * 2^shift.
func (z *bint) shl(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	(*big.Int)(z).Lsh((*big.Int)(x), uint(shift))
}

// mulPow5 calculates z = x * 5^power.
func (z *bint) mulPow5(x *bint, power int) {
	var y *bint
	if power < len(bpow5) {
		y = bpow5[power]
	} else {
		y = getBint()
		defer putBint(y)
		y.power(5, power)
	}
	z.mul(x, y)
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	z.power(10, power)
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
