package floatconv

import (
	"math"
	"math/big"
	"testing"
)

func TestFint_Shl(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x     fint
			shift int
			want  fint
		}{
			{0, 0, 0},
			{0, 63, 0},
			{1, 0, 1},
			{1, 1, 2},
			{1, 62, 1 << 62},
			{3, 10, 3072},
			{maxFint >> 1, 1, maxFint - 1},
		}
		for _, tt := range tests {
			got, ok := tt.x.shl(tt.shift)
			if !ok {
				t.Errorf("%v.shl(%v) failed", tt.x, tt.shift)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.shl(%v) = %v, want %v", tt.x, tt.shift, got, tt.want)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		tests := []struct {
			x     fint
			shift int
		}{
			{1, 64},
			{maxFint, 1},
			{1 << 62, 2},
		}
		for _, tt := range tests {
			if got, ok := tt.x.shl(tt.shift); ok {
				t.Errorf("%v.shl(%v) = %v, want overflow", tt.x, tt.shift, got)
			}
		}
	})
}

func TestFint_MulPow5(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x     fint
			power int
			want  fint
		}{
			{0, 10, 0},
			{1, 0, 1},
			{1, 1, 5},
			{2, 3, 250},
			{1, 27, 7_450_580_596_923_828_125},
		}
		for _, tt := range tests {
			got, ok := tt.x.mulPow5(tt.power)
			if !ok {
				t.Errorf("%v.mulPow5(%v) failed", tt.x, tt.power)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.mulPow5(%v) = %v, want %v", tt.x, tt.power, got, tt.want)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		tests := []struct {
			x     fint
			power int
		}{
			{1, 28},
			{2, 27},
			{maxFint, 1},
		}
		for _, tt := range tests {
			if got, ok := tt.x.mulPow5(tt.power); ok {
				t.Errorf("%v.mulPow5(%v) = %v, want overflow", tt.x, tt.power, got)
			}
		}
	})
}

func TestFint_Fsa(t *testing.T) {
	tests := []struct {
		x     fint
		shift int
		b     byte
		want  fint
	}{
		{0, 1, 7, 7},
		{12, 1, 3, 123},
		{12, 2, 3, 1203},
		{maxFint / 10, 1, 9, maxFint},
	}
	for _, tt := range tests {
		got, ok := tt.x.fsa(tt.shift, tt.b)
		if !ok {
			t.Errorf("%v.fsa(%v, %v) failed", tt.x, tt.shift, tt.b)
			continue
		}
		if got != tt.want {
			t.Errorf("%v.fsa(%v, %v) = %v, want %v", tt.x, tt.shift, tt.b, got, tt.want)
		}
	}

	if got, ok := fint(maxFint).fsa(1, 0); ok {
		t.Errorf("maxFint.fsa(1, 0) = %v, want overflow", got)
	}
}

func TestFint_Prec(t *testing.T) {
	tests := []struct {
		x    fint
		want int
	}{
		{0, 0},
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{maxFint, 19},
	}
	for _, tt := range tests {
		if got := tt.x.prec(); got != tt.want {
			t.Errorf("%v.prec() = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestBint_SetDigits(t *testing.T) {
	tests := []struct {
		digits string
		want   int64
	}{
		{"0", 0},
		{"7", 7},
		{"123456789", 123456789},
		{"009", 9},
	}
	for _, tt := range tests {
		b := getBint()
		if ok := b.setDigits([]byte(tt.digits)); !ok {
			t.Errorf("setDigits(%q) failed", tt.digits)
			putBint(b)
			continue
		}
		if got := (*big.Int)(b).Int64(); got != tt.want {
			t.Errorf("setDigits(%q) = %v, want %v", tt.digits, got, tt.want)
		}
		putBint(b)
	}

	b := getBint()
	defer putBint(b)
	if ok := b.setDigits([]byte("12a4")); ok {
		t.Errorf("setDigits(%q) succeeded, want failure", "12a4")
	}
}

func TestBint_Shl(t *testing.T) {
	tests := []struct {
		x     int64
		shift int
		want  string
	}{
		{1, 0, "1"},
		{1, 64, "18446744073709551616"},
		{5, 3, "40"},
	}
	for _, tt := range tests {
		x := getBint()
		z := getBint()
		x.setInt64(tt.x)
		z.shl(x, tt.shift)
		if got := z.string(); got != tt.want {
			t.Errorf("shl(%v, %v) = %q, want %q", tt.x, tt.shift, got, tt.want)
		}
		putBint(x)
		putBint(z)
	}
}

func TestBint_MulPow5(t *testing.T) {
	x := getBint()
	defer putBint(x)
	x.setInt64(1)
	x.mulPow5(x, 30)

	want := getBint()
	defer putBint(want)
	want.power(5, 30)

	if x.cmp(want) != 0 {
		t.Errorf("mulPow5(1, 30) = %v, want %v", x.string(), want.string())
	}
}

func TestBint_Pow10(t *testing.T) {
	tests := []struct {
		power int
		want  float64
	}{
		{0, 1},
		{1, 10},
		{50, 1e50},
		{150, 1e150},
	}
	for _, tt := range tests {
		z := getBint()
		z.pow10(tt.power)
		got, _ := new(big.Float).SetInt((*big.Int)(z)).Float64()
		if got != tt.want {
			t.Errorf("pow10(%v) = %v, want %v", tt.power, got, tt.want)
		}
		putBint(z)
	}
}

func TestBint_QuoRem(t *testing.T) {
	tests := []struct {
		x, y     int64
		quo, rem int64
	}{
		{7, 2, 3, 1},
		{10, 5, 2, 0},
		{1, 3, 0, 1},
	}
	for _, tt := range tests {
		x := getBint()
		y := getBint()
		q := getBint()
		r := getBint()
		x.setInt64(tt.x)
		y.setInt64(tt.y)
		q.quoRem(x, y, r)
		if got := (*big.Int)(q).Int64(); got != tt.quo {
			t.Errorf("quoRem(%v, %v) quo = %v, want %v", tt.x, tt.y, got, tt.quo)
		}
		if got := (*big.Int)(r).Int64(); got != tt.rem {
			t.Errorf("quoRem(%v, %v) rem = %v, want %v", tt.x, tt.y, got, tt.rem)
		}
		putBint(x)
		putBint(y)
		putBint(q)
		putBint(r)
	}
}

func TestBint_MulAliased(t *testing.T) {
	x := getBint()
	defer putBint(x)
	x.setInt64(12345)
	x.mul(x, x)
	if got := (*big.Int)(x).Int64(); got != 12345*12345 {
		t.Errorf("mul(x, x) = %v, want %v", got, 12345*12345)
	}
}

func TestBint_Fint(t *testing.T) {
	b := getBint()
	defer putBint(b)
	b.setFint(math.MaxUint32)
	if got := b.fint(); got != math.MaxUint32 {
		t.Errorf("fint() = %v, want %v", got, uint64(math.MaxUint32))
	}
}
