package benchmarks

import (
	"fmt"
	"strconv"
	"testing"

	gv "github.com/govalues/decimal"
	ss "github.com/shopspring/decimal"

	"github.com/quagmt/ryu128"
)

var floatCases = []float64{
	1234567890123456789.0,
	123,
	123456.123456,
	1234567890,
	0.1234567890123456879,
	1e300,
	1e-300,
}

func BenchmarkConvertFloat64(b *testing.B) {
	for _, tc := range floatCases {
		b.Run(fmt.Sprintf("ryu128/%v", tc), func(b *testing.B) {
			b.ResetTimer()
			for range b.N {
				_ = ryu128.ConvertFloat64(tc)
			}
		})

		b.Run(fmt.Sprintf("strconv/%v", tc), func(b *testing.B) {
			b.ResetTimer()
			for range b.N {
				_ = strconv.AppendFloat(nil, tc, 'g', -1, 64)
			}
		})

		b.Run(fmt.Sprintf("shopspring/%v", tc), func(b *testing.B) {
			b.ResetTimer()
			for range b.N {
				_ = ss.NewFromFloat(tc)
			}
		})

		b.Run(fmt.Sprintf("govalues/%v", tc), func(b *testing.B) {
			s := strconv.FormatFloat(tc, 'e', -1, 64)

			b.ResetTimer()
			for range b.N {
				_, _ = gv.Parse(s)
			}
		})
	}
}

func BenchmarkConvertFloat32(b *testing.B) {
	cases := []float32{1234.5, 0.1, 123456789, 1e30, 1e-30}

	for _, tc := range cases {
		b.Run(fmt.Sprintf("ryu128/%v", tc), func(b *testing.B) {
			b.ResetTimer()
			for range b.N {
				_ = ryu128.ConvertFloat32(tc)
			}
		})

		b.Run(fmt.Sprintf("strconv/%v", tc), func(b *testing.B) {
			b.ResetTimer()
			for range b.N {
				_ = strconv.AppendFloat(nil, float64(tc), 'g', -1, 32)
			}
		})
	}
}

func BenchmarkDecimalString(b *testing.B) {
	for _, tc := range floatCases {
		d := ryu128.ConvertFloat64(tc)

		b.Run(fmt.Sprintf("ryu128/%v", tc), func(b *testing.B) {
			b.ResetTimer()
			for range b.N {
				_ = d.Coefficient.String()
			}
		})
	}
}
