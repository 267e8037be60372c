package ryu128

import "math"

// float64 layout constants (IEEE-754 binary64), grounded on the bias/mantBits
// constants forkkit-ryu's ryu64.go decomposes float64 with.
const (
	float64MantBits = 52
	float64Bias     = 1023
)

// float32 layout constants (IEEE-754 binary32).
const (
	float32MantBits = 23
	float32Bias     = 127
)

// decompose64 unpacks a float64 bit pattern into the {sign, coefficient,
// binaryExponent} form Convert expects. Bridging real Go float types is
// kept separate from the core conversion algorithm so the algorithm itself
// stays float-width-agnostic.
func decompose64(bits uint64) (sign bool, c uint64, bexp int) {
	sign = bits>>63 != 0
	exp := (bits >> float64MantBits) & 0x7FF
	mant := bits & (1<<float64MantBits - 1)

	if exp == 0 {
		return sign, mant, 1 - float64Bias - float64MantBits
	}
	return sign, mant | 1<<float64MantBits, int(exp) - float64Bias - float64MantBits
}

// decompose32 unpacks a float32 bit pattern.
func decompose32(bits uint32) (sign bool, c uint32, bexp int) {
	sign = bits>>31 != 0
	exp := (bits >> float32MantBits) & 0xFF
	mant := bits & (1<<float32MantBits - 1)

	if exp == 0 {
		return sign, mant, 1 - float32Bias - float32MantBits
	}
	return sign, mant | 1<<float32MantBits, int(exp) - float32Bias - float32MantBits
}

// ConvertFloat64 converts x to its shortest round-tripping decimal.
// NaN converts to a Decimal with coefficient=1; +/-Inf to coefficient=0;
// both carry the sentinel decimal exponent. Signaling vs. quiet NaN is not
// distinguished.
func ConvertFloat64(x float64) Decimal {
	bits := math.Float64bits(x)
	sign := bits>>63 != 0

	switch {
	case math.IsNaN(x):
		return nanDecimal(sign)
	case math.IsInf(x, 0):
		return infDecimal(sign)
	}

	_, c, bexp := decompose64(bits)
	if c == 0 {
		return zeroDecimal(sign)
	}

	return Convert(DecomposedFloat{
		Sign:           sign,
		Coefficient:    u128FromU64(c),
		BinaryExponent: bexp,
		MantissaBits:   float64MantBits + 1,
	})
}

// ConvertFloat32 converts x to its shortest round-tripping decimal.
func ConvertFloat32(x float32) Decimal {
	bits := math.Float32bits(x)
	sign := bits>>31 != 0

	switch {
	case x != x: // NaN, avoids importing math/float32 helpers that don't exist
		return nanDecimal(sign)
	case math.IsInf(float64(x), 0):
		return infDecimal(sign)
	}

	_, c, bexp := decompose32(bits)
	if c == 0 {
		return zeroDecimal(sign)
	}

	return Convert(DecomposedFloat{
		Sign:           sign,
		Coefficient:    u128FromU64(uint64(c)),
		BinaryExponent: bexp,
		MantissaBits:   float32MantBits + 1,
	})
}
