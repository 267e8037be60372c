package ryu128

import (
	"math/big"
	"math/bits"
)

// U128 is a 128-bit unsigned integer represented as two 64-bit limbs:
//
//	value = hi*2^64 + lo
//
// All arithmetic on U128 is modulo 2^128; callers are responsible for
// choosing widths wide enough that no intended value overflows.
type U128 struct {
	hi uint64
	lo uint64
}

// u128FromU64 returns v widened to 128 bits.
func u128FromU64(v uint64) U128 {
	return U128{lo: v}
}

// u128FromHiLo builds a U128 from its high and low limbs.
func u128FromHiLo(hi, lo uint64) U128 {
	return U128{hi: hi, lo: lo}
}

// bitLen returns the number of bits required to represent u.
func (u U128) bitLen() int {
	if u.hi != 0 {
		return bits.Len64(u.hi) + 64
	}
	return bits.Len64(u.lo)
}

// IsZero reports whether u is zero.
func (u U128) IsZero() bool {
	return u == U128{}
}

// Cmp compares u and v, returning -1, 0, or 1 for u<v, u==v, u>v.
func (u U128) Cmp(v U128) int {
	if u.hi != v.hi {
		if u.hi < v.hi {
			return -1
		}
		return 1
	}
	switch {
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	default:
		return 0
	}
}

// Cmp64 compares u against a uint64 value.
func (u U128) Cmp64(v uint64) int {
	if u.hi != 0 {
		return 1
	}
	switch {
	case u.lo < v:
		return -1
	case u.lo > v:
		return 1
	default:
		return 0
	}
}

// LessThan reports whether u < v.
func (u U128) LessThan(v U128) bool {
	return u.hi < v.hi || (u.hi == v.hi && u.lo < v.lo)
}

// Add64 returns u+v, wrapping modulo 2^128.
func (u U128) Add64(v uint64) U128 {
	lo, carry := bits.Add64(u.lo, v, 0)
	hi, _ := bits.Add64(u.hi, 0, carry)
	return U128{hi: hi, lo: lo}
}

// Add returns u+v, wrapping modulo 2^128.
func (u U128) Add(v U128) U128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return U128{hi: hi, lo: lo}
}

// Sub64 returns u-v, wrapping modulo 2^128.
func (u U128) Sub64(v uint64) U128 {
	lo, borrow := bits.Sub64(u.lo, v, 0)
	hi, _ := bits.Sub64(u.hi, 0, borrow)
	return U128{hi: hi, lo: lo}
}

// Sub returns u-v, wrapping modulo 2^128.
func (u U128) Sub(v U128) U128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return U128{hi: hi, lo: lo}
}

// Mul64 returns the low 128 bits of u*v, wrapping modulo 2^128.
func (u U128) Mul64(v uint64) U128 {
	hi, lo := bits.Mul64(u.lo, v)
	hi += u.hi * v
	return U128{hi: hi, lo: lo}
}

// QuoRem64 returns q = u/v and r = u%v for a 64-bit divisor.
func (u U128) QuoRem64(v uint64) (q U128, r uint64) {
	if u.hi < v {
		q.lo, r = bits.Div64(u.hi, u.lo, v)
	} else {
		q.hi, r = bits.Div64(0, u.hi, v)
		q.lo, r = bits.Div64(r, u.lo, v)
	}
	return
}

// Lsh returns u<<n for 0 <= n <= 128.
func (u U128) Lsh(n uint) (s U128) {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return U128{}
	case n >= 64:
		s.lo = 0
		s.hi = u.lo << (n - 64)
	default:
		s.lo = u.lo << n
		s.hi = u.hi<<n | u.lo>>(64-n)
	}
	return
}

// Rsh returns u>>n for 0 <= n <= 128 (logical shift).
func (u U128) Rsh(n uint) (s U128) {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return U128{}
	case n >= 64:
		s.lo = u.hi >> (n - 64)
		s.hi = 0
	default:
		s.lo = u.lo>>n | u.hi<<(64-n)
		s.hi = u.hi >> n
	}
	return
}

// And returns the bitwise AND of u and v.
func (u U128) And(v U128) U128 {
	return U128{hi: u.hi & v.hi, lo: u.lo & v.lo}
}

// MulToU256 returns the full 256-bit product u*v via a schoolbook
// 2x2-limb multiply with explicit carry propagation into a flat
// little-endian limb layout.
func (u U128) MulToU256(v U128) U256 {
	hi00, lo00 := bits.Mul64(u.lo, v.lo)
	hi10, lo10 := bits.Mul64(u.hi, v.lo)
	hi01, lo01 := bits.Mul64(u.lo, v.hi)
	hi11, lo11 := bits.Mul64(u.hi, v.hi)

	w0 := lo00

	w1, c0 := bits.Add64(hi00, lo10, 0)
	w1, c1 := bits.Add64(w1, lo01, 0)

	w2, c2 := bits.Add64(hi10, hi01, 0)
	w2, c3 := bits.Add64(w2, lo11, c0)
	w2, c4 := bits.Add64(w2, 0, c1)

	w3, _ := bits.Add64(hi11, c2+c3+c4, 0)

	return U256{w0: w0, w1: w1, w2: w2, w3: w3}
}

// String renders u in decimal via repeated QuoRem64 by the largest power
// of ten that fits in a uint64.
func (u U128) String() string {
	if u.IsZero() {
		return "0"
	}

	buf := []byte("0000000000000000000000000000000000000000") // log10(2^128) < 40
	for i := len(buf); ; i -= 19 {
		q, r := u.QuoRem64(1e19)
		var n int
		for ; r != 0; r /= 10 {
			n++
			buf[i-n] += byte(r % 10)
		}
		if q.IsZero() {
			return string(buf[i-n:])
		}
		u = q
	}
}

// ToBigInt returns u as an arbitrary-precision integer, used only to
// package the final Decimal coefficient; the core never computes with
// *big.Int.
func (u U128) ToBigInt() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(u.lo))
	return b
}

// recipOf5 is the 128-bit reciprocal of 5 mod 2^128, used both to realize
// division by 5/10 via a high-multiply and as the modular inverse
// multipleOfPowerOf5 multiplies by repeatedly.
var recipOf5 = U128{hi: 0xCCCCCCCCCCCCCCCC, lo: 0xCCCCCCCCCCCCCCCD}

// mulHigh128 returns the upper 128 bits of the 256-bit product a*b.
func mulHigh128(a, b U128) U128 {
	p := a.MulToU256(b)
	return U128{hi: p.w3, lo: p.w2}
}

// div5 returns floor(u/5), realized as mulHigh(u, recipOf5) >> 2.
func div5(u U128) U128 {
	return mulHigh128(u, recipOf5).Rsh(2)
}

// div10 returns floor(u/10), realized as mulHigh(u, recipOf5) >> 3.
func div10(u U128) U128 {
	return mulHigh128(u, recipOf5).Rsh(3)
}

// divRem5 returns q = floor(u/5) and r = u - 5*q, r fits in 3 bits.
func divRem5(u U128) (q U128, r uint64) {
	q = div5(u)
	r = u.lo - 5*q.lo
	return
}

// divRem10 returns q = floor(u/10) and r = u - 10*q, r fits in 4 bits.
func divRem10(u U128) (q U128, r uint64) {
	q = div10(u)
	r = u.lo - 10*q.lo
	return
}

// multipleOfPowerOf2 reports whether 2^p divides x.
func multipleOfPowerOf2(x U128, p uint) bool {
	return x.And(U128{hi: 0, lo: 1}.Lsh(p).Sub64(1)).IsZero()
}

// pow5RecipThreshold is floor((2^128-1)/5) = 0x3333...33, the width-128
// all-3s constant multipleOfPowerOf5's termination test compares against.
var pow5RecipThreshold = U128{hi: 0x3333333333333333, lo: 0x3333333333333333}

// multipleOfPowerOf5 reports whether 5^p divides x, for x > 0. It repeatedly
// multiplies x by the reciprocal of 5 in modular 128-bit arithmetic; once the
// running product exceeds pow5RecipThreshold the most recent input was not
// divisible by 5.
func multipleOfPowerOf5(x U128, p uint) bool {
	assert(!x.IsZero(), "multipleOfPowerOf5: precondition x > 0 violated")
	for i := uint(0); i < p; i++ {
		x = x.Mul(recipOf5)
		if x.Cmp(pow5RecipThreshold) > 0 {
			return false
		}
	}
	return true
}

// Mul returns the low 128 bits of u*v, wrapping modulo 2^128 (used by
// multipleOfPowerOf5's repeated-multiply termination test).
func (u U128) Mul(v U128) U128 {
	hi, lo := bits.Mul64(u.lo, v.lo)
	hi += u.hi*v.lo + u.lo*v.hi
	return U128{hi: hi, lo: lo}
}
