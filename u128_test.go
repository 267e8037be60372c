package ryu128

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU128BitLen(t *testing.T) {
	testcases := []struct {
		u    U128
		want int
	}{
		{u: U128{}, want: 0},
		{u: u128FromU64(1), want: 1},
		{u: u128FromU64(0xFF), want: 8},
		{u: u128FromHiLo(1, 0), want: 65},
		{u: u128FromHiLo(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF), want: 128},
	}

	for i, tc := range testcases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			require.Equal(t, tc.want, tc.u.bitLen())
		})
	}
}

func TestU128Cmp(t *testing.T) {
	testcases := []struct {
		u, v U128
		want int
	}{
		{u: u128FromU64(1), v: u128FromU64(2), want: -1},
		{u: u128FromU64(2), v: u128FromU64(1), want: 1},
		{u: u128FromU64(5), v: u128FromU64(5), want: 0},
		{u: u128FromHiLo(1, 0), v: u128FromU64(0xFFFFFFFFFFFFFFFF), want: 1},
	}

	for i, tc := range testcases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			require.Equal(t, tc.want, tc.u.Cmp(tc.v))
		})
	}
}

func TestU128AddSub(t *testing.T) {
	a := u128FromHiLo(1, 0xFFFFFFFFFFFFFFFF)
	b := u128FromU64(1)

	require.Equal(t, u128FromHiLo(2, 0), a.Add(b))
	require.Equal(t, a, a.Add(b).Sub(b))
	require.Equal(t, u128FromHiLo(0, 0xFFFFFFFFFFFFFFFF), u128FromHiLo(1, 0).Sub64(1))
}

func TestU128Mul64(t *testing.T) {
	testcases := []struct {
		u    U128
		v    uint64
		want U128
	}{
		{u: u128FromU64(10), v: 20, want: u128FromU64(200)},
		{u: u128FromHiLo(1, 0), v: 2, want: u128FromHiLo(2, 0)},
	}

	for i, tc := range testcases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			require.Equal(t, tc.want, tc.u.Mul64(tc.v))
		})
	}
}

func TestU128MulToU256(t *testing.T) {
	// 5^55 must reconstruct exactly as a product of two table entries.
	got := pow5Table[27].MulToU256(pow5Table[28])
	want := pow5Table[55]
	require.Equal(t, want.hi, got.w1)
	require.Equal(t, want.lo, got.w0)
	require.Zero(t, got.w2)
	require.Zero(t, got.w3)
}

func TestU128QuoRem64(t *testing.T) {
	q, r := u128FromU64(103).QuoRem64(10)
	require.Equal(t, u128FromU64(10), q)
	require.Equal(t, uint64(3), r)
}

func TestU128LshRsh(t *testing.T) {
	u := u128FromU64(1)
	require.Equal(t, u128FromHiLo(1, 0), u.Lsh(64))
	require.Equal(t, u128FromHiLo(0, 1), u.Lsh(64).Rsh(64))
	require.Equal(t, U128{}, u.Lsh(128))
}

func TestU128String(t *testing.T) {
	testcases := []struct {
		u    U128
		want string
	}{
		{u: U128{}, want: "0"},
		{u: u128FromU64(123), want: "123"},
		{u: pow5Table[27], want: new(big.Int).Exp(big.NewInt(5), big.NewInt(27), nil).String()},
	}

	for i, tc := range testcases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			require.Equal(t, tc.want, tc.u.String())
		})
	}
}

func TestU128ToBigInt(t *testing.T) {
	u := u128FromHiLo(1, 2)
	want := new(big.Int).Lsh(big.NewInt(1), 64)
	want.Or(want, big.NewInt(2))
	require.Equal(t, 0, u.ToBigInt().Cmp(want))
}

func TestDiv5Div10(t *testing.T) {
	for _, x := range []uint64{0, 1, 4, 5, 9, 10, 11, 1234567890, 0xFFFFFFFFFFFFFFFF} {
		u := u128FromU64(x)
		require.Equal(t, x/5, div5(u).lo, "div5(%d)", x)
		require.Equal(t, x/10, div10(u).lo, "div10(%d)", x)
	}
}

func TestDivRem10(t *testing.T) {
	q, r := divRem10(u128FromU64(1234))
	require.Equal(t, uint64(123), q.lo)
	require.Equal(t, uint64(4), r)
}

func TestMultipleOfPowerOf2(t *testing.T) {
	testcases := []struct {
		x    uint64
		p    uint
		want bool
	}{
		{x: 2, p: 1, want: true},
		{x: 12, p: 2, want: true},
		{x: 13, p: 2, want: false},
		{x: 8, p: 4, want: false},
	}

	for _, tc := range testcases {
		t.Run(fmt.Sprintf("%d,%d", tc.x, tc.p), func(t *testing.T) {
			require.Equal(t, tc.want, multipleOfPowerOf2(u128FromU64(tc.x), tc.p))
		})
	}
}

func TestMultipleOfPowerOf5(t *testing.T) {
	testcases := []struct {
		x    uint64
		p    uint
		want bool
	}{
		{x: 1, p: 0, want: true},
		{x: 1, p: 1, want: false},
		{x: 5, p: 1, want: true},
		{x: 25, p: 2, want: true},
		{x: 75, p: 2, want: true},
		{x: 50, p: 2, want: true},
		{x: 51, p: 2, want: false},
		{x: 75, p: 4, want: false},
	}

	for _, tc := range testcases {
		t.Run(fmt.Sprintf("%d,%d", tc.x, tc.p), func(t *testing.T) {
			require.Equal(t, tc.want, multipleOfPowerOf5(u128FromU64(tc.x), tc.p))
		})
	}
}
