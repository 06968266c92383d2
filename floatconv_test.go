package floatconv

import (
	"math"
	"math/rand"
	"testing"
)

// TestRoundTrip64 checks the defining property of the conversion pair:
// formatting under any dialect and parsing back restores the exact bit
// pattern, NaN payloads aside.
func TestRoundTrip64(t *testing.T) {
	dialects := map[string]Dialect{
		"default": DialectDefault,
		"lua":     DialectLua,
	}
	corpus := []float64{
		0, math.Copysign(0, -1), 1, -1, 0.1, -0.1,
		math.Pi, math.E, math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		math.Float64frombits(0x000FFFFFFFFFFFFF),
		math.Float64frombits(0x0010000000000000),
		math.Inf(1), math.Inf(-1),
		1e-310, 5e14, 1e15, 1e21, 123456.789e-300,
	}
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 20000; i++ {
		f := math.Float64frombits(r.Uint64())
		if math.IsNaN(f) {
			continue
		}
		corpus = append(corpus, f)
	}

	for name, dialect := range dialects {
		t.Run(name, func(t *testing.T) {
			for _, f := range corpus {
				s := Format64(f, dialect)
				got, err := Parse64(s)
				if err != nil {
					t.Fatalf("Parse64(Format64(%b)) = Parse64(%q) failed: %v", f, s, err)
				}
				if math.Float64bits(got) != math.Float64bits(f) {
					t.Errorf("round trip of %b via %q = %b", f, s, got)
				}
			}
		})
	}
}

func TestRoundTrip32(t *testing.T) {
	dialects := map[string]Dialect{
		"default": DialectDefault,
		"lua":     DialectLua,
	}
	corpus := []float32{
		0, float32(math.Copysign(0, -1)), 1, -1, 0.1,
		math.MaxFloat32, math.SmallestNonzeroFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1)),
	}
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 20000; i++ {
		f := math.Float32frombits(r.Uint32())
		if f != f {
			continue
		}
		corpus = append(corpus, f)
	}

	for name, dialect := range dialects {
		t.Run(name, func(t *testing.T) {
			for _, f := range corpus {
				s := Format32(f, dialect)
				got, err := Parse32(s)
				if err != nil {
					t.Fatalf("Parse32(Format32(%b)) = Parse32(%q) failed: %v", f, s, err)
				}
				if math.Float32bits(got) != math.Float32bits(f) {
					t.Errorf("round trip of %b via %q = %b", f, s, got)
				}
			}
		})
	}
}

func TestRoundTrip_NaN(t *testing.T) {
	for _, dialect := range []Dialect{DialectDefault, DialectLua} {
		got, err := Parse64(Format64(math.NaN(), dialect))
		if err != nil {
			t.Fatalf("NaN round trip failed: %v", err)
		}
		if !math.IsNaN(got) {
			t.Errorf("NaN round trip = %v", got)
		}
	}
}

// TestParse64_Monotonic checks that parsing preserves the order of
// nearby literals: a larger literal never parses to a smaller value.
func TestParse64_Monotonic(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 2000; i++ {
		f := math.Float64frombits(r.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			continue
		}
		lo := Format64(f, DialectDefault)
		hi := Format64(math.Nextafter(f, math.MaxFloat64), DialectDefault)

		flo, err := Parse64(lo)
		if err != nil {
			t.Fatal(err)
		}
		fhi, err := Parse64(hi)
		if err != nil {
			t.Fatal(err)
		}
		if flo > fhi {
			t.Errorf("Parse64(%q) = %b > Parse64(%q) = %b", lo, flo, hi, fhi)
		}
	}
}

func BenchmarkFormat64(b *testing.B) {
	benchmarks := map[string]float64{
		"small int": 7,
		"fraction":  0.30000000000000004,
		"subnormal": 5e-324,
		"huge":      1.7976931348623157e308,
	}
	for name, f := range benchmarks {
		b.Run(name, func(b *testing.B) {
			var buf [32]byte
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Append64(buf[:0], f, DialectDefault)
			}
		})
	}
}

func BenchmarkParse64(b *testing.B) {
	benchmarks := map[string]string{
		"small int": "7",
		"fraction":  "0.30000000000000004",
		"exponent":  "1.5e300",
		"long":      "1.00000000000000011102230246251565404236316680908203125",
	}
	for name, s := range benchmarks {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Parse64(s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
