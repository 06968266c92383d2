package floatconv

import "fmt"

// MustParse64 is like Parse64 but panics if the text cannot be parsed.
// It simplifies safe initialization of global variables holding
// floating point constants.
func MustParse64(s string) float64 {
	f, err := Parse64(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse64(%q) failed: %v", s, err))
	}
	return f
}

// MustParse32 is like Parse32 but panics if the text cannot be parsed.
// It simplifies safe initialization of global variables holding
// floating point constants.
func MustParse32(s string) float32 {
	f, err := Parse32(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse32(%q) failed: %v", s, err))
	}
	return f
}
