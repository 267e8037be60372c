package ryu128

// Convert turns a decomposed binary float into its shortest round-tripping
// decimal representation (the Ryu driver). Zero, infinity, and NaN are not
// decomposed floats in the usual sense; callers (ConvertFloat64/32) handle
// those specially before ever building a DecomposedFloat, so Convert itself
// only has to handle the coefficient==0 case, which it does by returning
// early.
func Convert(f DecomposedFloat) Decimal {
	if f.Coefficient.IsZero() {
		return zeroDecimal(f.Sign)
	}

	P := f.MantissaBits
	c := f.Coefficient

	W := 64
	if P >= 64 {
		W = 128
	}

	e2 := f.BinaryExponent - 2
	even := c.lo&1 == 0
	acceptBounds := even

	mv := c.Lsh(2)
	var mmShift uint64
	if c.Cmp(u128FromU64(1).Lsh(uint(P-1))) != 0 {
		mmShift = 1
	}

	mp := mv.Add64(2)
	mm := mv.Sub64(1 + mmShift)

	if W == 64 {
		mv, mp, mm = truncW64(mv), truncW64(mp), truncW64(mm)
	}

	var vr, vp, vm U128
	var e10 int
	var vmIsTrailingZeros, vrIsTrailingZeros bool

	if e2 >= 0 {
		q := log10Pow2(e2)
		if e2 > 3 {
			q--
		}
		e10 = q
		k := 249 + pow5bits(q) - 1
		i := -e2 + q + k
		pow5 := computeInvPow5(q)

		vr = mulShift(mv, pow5, uint(i))
		vp = mulShift(mp, pow5, uint(i))
		vm = mulShift(mm, pow5, uint(i))

		if q <= 55 {
			switch {
			case divRem5ZeroCheck(mv):
				vrIsTrailingZeros = q == 0 || multipleOfPowerOf5(mv, uint(q-1))
			case acceptBounds:
				vmIsTrailingZeros = multipleOfPowerOf5(mm, uint(q))
			default:
				if multipleOfPowerOf5(mp, uint(q)) {
					vp = vp.Sub64(1)
				}
			}
		}
	} else {
		negE2 := -e2
		q := log10Pow5(negE2)
		if negE2 > 1 {
			q--
		}
		e10 = q + e2
		i := negE2 - q
		k := pow5bits(i) - 249
		j := q - k
		pow5 := computePow5(i)

		vr = mulShift(mv, pow5, uint(j))
		vp = mulShift(mp, pow5, uint(j))
		vm = mulShift(mm, pow5, uint(j))

		if q <= 1 {
			vrIsTrailingZeros = true
			if acceptBounds {
				vmIsTrailingZeros = mmShift == 1
			} else {
				vp = vp.Sub64(1)
			}
		} else if q < W-1 {
			vrIsTrailingZeros = multipleOfPowerOf2(mv, uint(q-1))
		}
	}

	// Step 3: shortest-decimal digit removal. One unified loop regardless
	// of the trailing-zero flags: when both start false they stay false
	// and the round-to-even corrections below collapse to the plain
	// "round by last removed digit" rule.
	removed := 0
	var lastRemovedDigit uint64
	for {
		vpDiv10, _ := divRem10(vp)
		vmDiv10, vmMod10 := divRem10(vm)
		if vpDiv10.Cmp(vmDiv10) <= 0 {
			break
		}
		vrDiv10, vrMod10 := divRem10(vr)
		vmIsTrailingZeros = vmIsTrailingZeros && vmMod10 == 0
		vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
		lastRemovedDigit = vrMod10
		vr, vp, vm = vrDiv10, vpDiv10, vmDiv10
		removed++
	}
	if vmIsTrailingZeros {
		for {
			vmDiv10, vmMod10 := divRem10(vm)
			if vmMod10 != 0 {
				break
			}
			vpDiv10, _ := divRem10(vp)
			_, vrMod10 := divRem10(vr)
			vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = vrMod10
			vr, vp, vm = vmDiv10, vpDiv10, vmDiv10
			removed++
		}
	}

	// Banker's rounding correction: an exact tie rounds to even.
	if vrIsTrailingZeros && lastRemovedDigit == 5 && vr.lo&1 == 0 {
		lastRemovedDigit = 4
	}

	// Step 4: select the final digit.
	out := vr
	if (vr.Cmp(vm) == 0 && (!acceptBounds || !vmIsTrailingZeros)) || lastRemovedDigit >= 5 {
		out = out.Add64(1)
	}

	return Decimal{Sign: f.Sign, Coefficient: out, DecimalExponent: e10 + removed}
}

// divRem5ZeroCheck reports whether mv is a multiple of 5.
func divRem5ZeroCheck(mv U128) bool {
	_, r := divRem5(mv)
	return r == 0
}

// truncW64 truncates u to 64 bits, matching the narrower arithmetic width
// used for sources with fewer than 64 mantissa bits (mirroring the
// reference 64-bit Ryu implementation, which carries mv/mp/mm in plain
// uint64 and lets the shifts that build them wrap at 64 bits).
func truncW64(u U128) U128 {
	return U128{lo: u.lo}
}
