package domain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEtherToWei(t *testing.T) {
	amount, err := ParseAmount("0.1")
	require.NoError(t, err)

	wei, err := EtherToWei(amount)
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000", wei.String())
}

func TestToSmallestUnitRejectsSubUnitDigits(t *testing.T) {
	amount := decimal.RequireFromString("0.0000000000000000001")
	_, err := EtherToWei(amount)
	assert.True(t, errors.Is(err, ErrPrecisionLoss))

	_, err = EtherToWei(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestUnitRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "0.1", "0.000000000000000001", "12345.678901234567890123", "3.14"} {
		amount, err := ParseAmount(s)
		require.NoError(t, err)
		wei, err := EtherToWei(amount)
		require.NoError(t, err)
		back := WeiToEther(wei)
		assert.True(t, back.Equal(amount), "round trip of %s gave %s", s, back)
	}
}

func TestParseAmountInvalid(t *testing.T) {
	_, err := ParseAmount("ten")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, "40", PercentOf(eth(4), eth(10)).String())
	assert.Equal(t, "33.33", PercentOf(big.NewInt(1), big.NewInt(3)).String())
	assert.Equal(t, "100", PercentOf(big.NewInt(5), big.NewInt(0)).String())
	assert.Equal(t, "0", PercentOf(nil, eth(1)).String())
}
