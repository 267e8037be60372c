package ryu128

import "math/bits"

// U256 is a 256-bit unsigned integer stored as four 64-bit limbs,
// little-endian (w0 is the least significant):
//
//	value = w3*2^192 + w2*2^128 + w1*2^64 + w0
//
// This is the layout the power-of-five tables are published in, so table
// literals compare directly against it limb-for-limb.
type U256 struct {
	w0, w1, w2, w3 uint64
}

// u256FromU128 widens a U128 into the low 128 bits of a U256.
func u256FromU128(v U128) U256 {
	return U256{w0: v.lo, w1: v.hi}
}

// bitLen returns the number of bits required to represent u.
func (u U256) bitLen() int {
	switch {
	case u.w3 != 0:
		return bits.Len64(u.w3) + 192
	case u.w2 != 0:
		return bits.Len64(u.w2) + 128
	case u.w1 != 0:
		return bits.Len64(u.w1) + 64
	default:
		return bits.Len64(u.w0)
	}
}

// Add64 returns u+v, wrapping modulo 2^256.
func (u U256) Add64(v uint64) U256 {
	w0, c := bits.Add64(u.w0, v, 0)
	w1, c := bits.Add64(u.w1, 0, c)
	w2, c := bits.Add64(u.w2, 0, c)
	w3, _ := bits.Add64(u.w3, 0, c)
	return U256{w0: w0, w1: w1, w2: w2, w3: w3}
}

// Add returns u+v, wrapping modulo 2^256.
func (u U256) Add(v U256) U256 {
	w0, c := bits.Add64(u.w0, v.w0, 0)
	w1, c := bits.Add64(u.w1, v.w1, c)
	w2, c := bits.Add64(u.w2, v.w2, c)
	w3, _ := bits.Add64(u.w3, v.w3, c)
	return U256{w0: w0, w1: w1, w2: w2, w3: w3}
}

// Lo128 returns the low 128 bits of u.
func (u U256) Lo128() U128 {
	return U128{hi: u.w1, lo: u.w0}
}

// Hi128 returns the high 128 bits of u.
func (u U256) Hi128() U128 {
	return U128{hi: u.w3, lo: u.w2}
}

// u384 holds the widening product of a U128 and a U256. Six limbs hold the
// full 384-bit product without truncation.
type u384 struct {
	limb [6]uint64
}

// mulU128xU256 computes the full widening product m*mul via schoolbook
// 2x4-limb multiply-accumulate, the same carry-propagation idiom as
// U128.MulToU256 generalized to more limbs.
func mulU128xU256(m U128, mul U256) u384 {
	var acc [6]uint64

	addAt := func(idx int, v uint64) {
		for v != 0 && idx < len(acc) {
			s, c := bits.Add64(acc[idx], v, 0)
			acc[idx] = s
			v = c
			idx++
		}
	}

	mulAddAt := func(idx int, a, b uint64) {
		hi, lo := bits.Mul64(a, b)
		addAt(idx, lo)
		addAt(idx+1, hi)
	}

	mLimbs := [2]uint64{m.lo, m.hi}
	mulLimbs := [4]uint64{mul.w0, mul.w1, mul.w2, mul.w3}

	for i, a := range mLimbs {
		for j, b := range mulLimbs {
			mulAddAt(i+j, a, b)
		}
	}

	return u384{limb: acc}
}

// shiftRight256 returns the low 256 bits of p>>delta, used by the
// power-of-five oracle to realize a shifted U128 x U256 product.
func shiftRight256(p u384, delta uint) U256 {
	limbShift := int(delta / 64)
	bitShift := delta % 64

	word := func(idx int) uint64 {
		if idx < 0 || idx >= len(p.limb) {
			return 0
		}
		return p.limb[idx]
	}

	var out [4]uint64
	for k := 0; k < 4; k++ {
		idx := limbShift + k
		lo := word(idx)
		hi := word(idx + 1)
		if bitShift != 0 {
			lo = lo>>bitShift | hi<<(64-bitShift)
		}
		out[k] = lo
	}
	return U256{w0: out[0], w1: out[1], w2: out[2], w3: out[3]}
}

// mulShift computes floor(m*mul / 2^j) truncated to 128 bits. Callers must
// only use it with j > 128.
func mulShift(m U128, mul U256, j uint) U128 {
	assert(j > 128, "mulShift: precondition j > 128 violated")

	p := mulU128xU256(m, mul)

	limbShift := int(j / 64)
	bitShift := j % 64

	word := func(idx int) uint64 {
		if idx < 0 || idx >= len(p.limb) {
			return 0
		}
		return p.limb[idx]
	}

	lo := word(limbShift)
	hi := word(limbShift + 1)
	hi2 := word(limbShift + 2)
	if bitShift != 0 {
		lo = lo>>bitShift | hi<<(64-bitShift)
		hi = hi>>bitShift | hi2<<(64-bitShift)
	}
	return U128{hi: hi, lo: lo}
}
