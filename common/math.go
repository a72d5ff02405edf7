package common

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// BigToDecimal converts an integer amount in base units to display units.
// Example:
// - BigToDecimal(1100, 3) = 1.1
// - BigToDecimal(1100, 5) = 0.011
func BigToDecimal(b *big.Int, decimals int32) decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(b, -decimals)
}

// Uint64ToDecimal is BigToDecimal for amounts that fit in 64 bits, such as
// lamports.
func Uint64ToDecimal(amount uint64, decimals int32) decimal.Decimal {
	return BigToDecimal(new(big.Int).SetUint64(amount), decimals)
}

// BasisPointsToPercent converts a basis point rate (1% = 100bp) to a
// percentage. It fails when the result is outside [0, 100].
func BasisPointsToPercent(bp *big.Int) (decimal.Decimal, error) {
	if bp == nil {
		return decimal.Zero, fmt.Errorf("nil rate")
	}
	if bp.Sign() < 0 || bp.Cmp(big.NewInt(10000)) > 0 {
		return decimal.Zero, fmt.Errorf("rate %s bp is not a percentage", bp.String())
	}
	return decimal.NewFromBigInt(bp, -2), nil
}

// IsIntegerString reports whether s is a non-negative base 10 integer.
func IsIntegerString(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ReadableNumber groups the digits of an integer string by thousands.
// Example: ReadableNumber("1000000") = "1,000,000"
func ReadableNumber(value string) string {
	if len(value) <= 3 || !IsIntegerString(value) {
		return value
	}
	var sb strings.Builder
	head := len(value) % 3
	if head > 0 {
		sb.WriteString(value[:head])
	}
	for i := head; i < len(value); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(value[i : i+3])
	}
	return sb.String()
}
