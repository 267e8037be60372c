package ryu128

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestComputePow5Exact checks the table-entry fast path: indices that are
// exact multiples of pow5TableStep return the stored split value unchanged.
func TestComputePow5Exact(t *testing.T) {
	require.Equal(t, pow5Split[0], computePow5(0))
	require.Equal(t, pow5Split[1], computePow5(pow5TableStep))
	require.Equal(t, pow5Split[2], computePow5(2*pow5TableStep))
}

// TestComputeInvPow5Exact checks the same fast path for the reciprocal table.
func TestComputeInvPow5Exact(t *testing.T) {
	require.Equal(t, pow5InvSplit[0].Add64(1), computeInvPow5(0))
	require.Equal(t, pow5InvSplit[1].Add64(1), computeInvPow5(pow5TableStep))
}

// TestComputePow5Spot checks a reconstructed (non-exact-multiple) index
// against the exact value of 5^55 at 249-bit fixed-point precision.
func TestComputePow5Spot(t *testing.T) {
	got := computePow5(55)
	want := U256{
		w0: 0,
		w1: 15708555500268290048,
		w2: 14699724349295723422,
		w3: 117549435082228750,
	}
	require.Equal(t, want, got)
}

// TestComputeInvPow5Spot checks two reconstructed indices against the exact
// value of 5^-i at 248-bit fixed-point precision.
func TestComputeInvPow5Spot(t *testing.T) {
	testcases := []struct {
		i    int
		want U256
	}{
		{
			i: 10,
			want: U256{
				w0: 13362655651931650467,
				w1: 3917988799323120213,
				w2: 9037289074543890586,
				w3: 123794003928538027,
			},
		},
		{
			i: 4896,
			want: U256{
				w0: 1432572115632717323,
				w1: 9719393440895634811,
				w2: 3482057763655621045,
				w3: 128990947194073851,
			},
		},
	}

	for _, tc := range testcases {
		require.Equal(t, tc.want, computeInvPow5(tc.i))
	}
}
