package currency

import (
	"math"

	"github.com/eos420/indexer-api/internal/bigint"
)

// DisplayDecimals is the most fractional digits ever carried into floating point
const DisplayDecimals = 6

// maxExponent is the largest n with 10^n below 2^256
const maxExponent = 77

// CalculateAmount converts a raw on-chain amount into a display value.
// Digits beyond DisplayDecimals are truncated as integers before the
// float division, so the result differs from amount / 10^decimals for
// decimals > 6.
func CalculateAmount(amount bigint.Uint256, decimals int32) float64 {
	if decimals < 0 {
		decimals = 0
	}

	exp := max(decimals-DisplayDecimals, 0)
	if exp > maxExponent {
		// every Uint256 is below 10^78
		return 0
	}
	quotient := amount.Div(bigint.Pow10(uint(exp)))

	return quotient.Float64() / math.Pow10(int(min(decimals, DisplayDecimals)))
}
