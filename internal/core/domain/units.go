package domain

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// NativeDecimals is the number of decimal places between the display unit
// (ETH) and the chain's smallest unit (wei).
const NativeDecimals int32 = 18

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrPrecisionLoss  = errors.New("amount exceeds smallest unit precision")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// ParseAmount parses a display-unit amount such as "0.1".
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// ToSmallestUnit converts a display amount into an integer of the smallest
// unit. Sub-unit digits beyond the chain granularity are rejected instead of
// being truncated.
func ToSmallestUnit(amount decimal.Decimal, decimals int32) (*big.Int, error) {
	if amount.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	shifted := amount.Shift(decimals)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("%w: %s", ErrPrecisionLoss, amount.String())
	}
	return shifted.BigInt(), nil
}

// FromSmallestUnit converts an integer of the smallest unit back to the
// display unit. A nil value is treated as zero.
func FromSmallestUnit(v *big.Int, decimals int32) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -decimals)
}

// WeiToEther is FromSmallestUnit for the native currency.
func WeiToEther(v *big.Int) decimal.Decimal {
	return FromSmallestUnit(v, NativeDecimals)
}

// EtherToWei is ToSmallestUnit for the native currency.
func EtherToWei(amount decimal.Decimal) (*big.Int, error) {
	return ToSmallestUnit(amount, NativeDecimals)
}

// PercentOf returns part/whole*100 rounded to two places. A zero whole is
// treated as fully funded.
func PercentOf(part, whole *big.Int) decimal.Decimal {
	if whole == nil || whole.Sign() == 0 {
		return decimal.NewFromInt(100)
	}
	p := decimal.NewFromBigInt(orZero(part), 0)
	w := decimal.NewFromBigInt(whole, 0)
	return p.Mul(decimal.NewFromInt(100)).DivRound(w, 2)
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
