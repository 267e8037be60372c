package ryu128

import "fmt"

var (
	// ErrMantissaTooWide is returned when constructing a DecomposedFloat whose
	// mantissa needs more than 128 bits to represent.
	ErrMantissaTooWide = fmt.Errorf("mantissa does not fit in 128 bits")

	// ErrCoefficientOverflow is returned when the supplied coefficient does not
	// fit in the number of mantissa bits declared alongside it.
	ErrCoefficientOverflow = fmt.Errorf("coefficient overflows declared mantissa width")

	// ErrExponentOutOfRange is returned when the binary exponent falls outside
	// the range the power-of-five oracle tables were generated for (|bexp| < 2^15).
	ErrExponentOutOfRange = fmt.Errorf("binary exponent out of range")
)

// assert panics with msg if cond is false. It guards the preconditions the
// core relies on: out-of-range exponents, zero input to multipleOfPowerOf5,
// and shift counts outside their legal window are programming errors, not
// recoverable conditions.
func assert(cond bool, msg string) {
	if !cond {
		panic("ryu128: " + msg)
	}
}
