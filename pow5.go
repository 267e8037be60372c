package ryu128

// pow5TableStep is the stride, in powers of five, between entries of
// pow5Split/pow5InvSplit.
const pow5TableStep = 56

// computePow5 reconstructs 5^i at 249-bit fixed-point precision as a U256.
// Base values at multiples of pow5TableStep are stored exactly in
// pow5Split; intermediate indices are reached by combining the nearest base
// with the exact small power pow5Table[offset] and a precomputed 2-bit
// correction from pow5Errors.
func computePow5(i int) U256 {
	base := i / pow5TableStep
	base2 := base * pow5TableStep
	mul := pow5Split[base]
	if i == base2 {
		return mul
	}

	offset := i - base2
	m := pow5Table[offset]
	delta := pow5bits(i) - pow5bits(base2)
	corr := uint64((pow5Errors[i/32] >> (2 * uint(i%32))) & 3)

	approx := shiftRight256(mulU128xU256(m, mul), uint(delta))
	return approx.Add64(corr)
}

// computeInvPow5 reconstructs 5^-i at 248-bit fixed-point precision as a
// U256 (one fewer fractional bit than computePow5's 249, to leave room for
// the final rounding-up adjustment; see DESIGN.md), mirroring computePow5
// but rounding the result up instead of down: the base table holds the
// rounded-up value minus one, and the +1/correction is added here.
func computeInvPow5(i int) U256 {
	base := (i + pow5TableStep - 1) / pow5TableStep
	base2 := base * pow5TableStep
	mul := pow5InvSplit[base]
	if i == base2 {
		return mul.Add64(1)
	}

	offset := base2 - i
	m := pow5Table[offset]
	delta := pow5bits(base2) - pow5bits(i)
	corr := uint64((pow5InvErrors[i/32]>>(2*uint(i%32)))&3) + 1

	approx := shiftRight256(mulU128xU256(m, mul), uint(delta))
	return approx.Add64(corr)
}
