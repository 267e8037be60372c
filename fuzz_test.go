//go:build fuzz

package ryu128

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	gv "github.com/govalues/decimal"
	ss "github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var float64Corpus = []float64{
	0,
	1,
	-1,
	0.1,
	100,
	1e300,
	1e-300,
	math.MaxFloat64,
	math.SmallestNonzeroFloat64,
	math.NaN(),
	math.Inf(1),
	math.Inf(-1),
}

// decimalString renders d as a plain "[-]digitse<exponent>" string, the
// minimal textual form strconv.ParseFloat and the oracle decimal libraries
// both accept.
func decimalString(d Decimal) string {
	digits := d.Coefficient.String()
	exp := d.DecimalExponent

	s := fmt.Sprintf("%se%d", digits, exp)
	if d.Sign {
		s = "-" + s
	}
	return s
}

// FuzzConvertFloat64RoundTrip checks that parsing the decimal Convert
// produces recovers exactly the input float.
func FuzzConvertFloat64RoundTrip(f *testing.F) {
	for _, x := range float64Corpus {
		f.Add(x)
	}

	f.Fuzz(func(t *testing.T, x float64) {
		d := ConvertFloat64(x)

		switch {
		case math.IsNaN(x):
			require.True(t, d.IsNaN())
			return
		case math.IsInf(x, 0):
			require.True(t, d.IsInf())
			return
		case x == 0:
			require.True(t, d.Coefficient.IsZero())
			return
		}

		parsed, err := strconv.ParseFloat(decimalString(d), 64)
		require.NoError(t, err)
		require.Equal(t, x, parsed, "round-trip mismatch for %v, decimal %s", x, decimalString(d))
	})
}

// FuzzConvertAgainstShopspring cross-checks the decimal digits Convert
// produces against an independently implemented decimal library fed the
// same float through its own string-based constructor.
func FuzzConvertAgainstShopspring(f *testing.F) {
	for _, x := range float64Corpus {
		f.Add(x)
	}

	f.Fuzz(func(t *testing.T, x float64) {
		if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
			return
		}

		d := ConvertFloat64(x)
		got, err := ss.NewFromString(decimalString(d))
		require.NoError(t, err)

		want, err := ss.NewFromString(strconv.FormatFloat(x, 'e', -1, 64))
		require.NoError(t, err)

		require.True(t, want.Equal(got), "shopspring mismatch for %v: got %s want %s", x, got, want)
	})
}

// FuzzConvertAgainstGovalues cross-checks against a second, independently
// implemented decimal library. govalues/decimal caps magnitude and scale,
// so values outside its representable range are skipped.
func FuzzConvertAgainstGovalues(f *testing.F) {
	for _, x := range float64Corpus {
		f.Add(x)
	}

	f.Fuzz(func(t *testing.T, x float64) {
		if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
			return
		}
		if math.Abs(x) > 1e28 || math.Abs(x) < 1e-28 {
			return
		}

		d := ConvertFloat64(x)
		got, err := gv.Parse(decimalString(d))
		if err != nil {
			return
		}

		want, err := gv.Parse(strconv.FormatFloat(x, 'e', -1, 64))
		if err != nil {
			return
		}

		require.True(t, want.Equal(got), "govalues mismatch for %v: got %s want %s", x, got, want)
	})
}
