package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ownerAddr  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	walletAddr = common.HexToAddress("0x2222222222222222222222222222222222222222")
	donorAddr  = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

func TestNormalizeScenarios(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	yesterday := big.NewInt(now.Add(-24 * time.Hour).Unix())
	tomorrow := big.NewInt(now.Add(24 * time.Hour).Unix())

	completed := Normalize(RawCampaign{Target: eth(10), AmountCollected: eth(10), Deadline: yesterday}, now, "")
	assert.Equal(t, StatusCompleted, completed.Status)
	assert.Equal(t, int64(0), completed.DaysLeft)

	expired := Normalize(RawCampaign{Target: eth(10), AmountCollected: eth(4), Deadline: yesterday}, now, "")
	assert.Equal(t, StatusExpired, expired.Status)

	active := Normalize(RawCampaign{Target: eth(10), AmountCollected: eth(4), Deadline: tomorrow}, now, "")
	assert.Equal(t, StatusActive, active.Status)
	assert.Equal(t, int64(1), active.DaysLeft)
	assert.Equal(t, "40", active.PercentFunded.String())
	assert.Equal(t, "10", active.Goal.String())
	assert.Equal(t, "4", active.Raised.String())
}

func TestNormalizeFields(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	raw := RawCampaign{
		CampaignID:      big.NewInt(7),
		Owner:           ownerAddr,
		SmartWallet:     walletAddr,
		Title:           "Clean water",
		Description:     "Wells for villages",
		Target:          eth(2),
		Deadline:        big.NewInt(now.Unix() + 3*secondsPerDay + 1),
		AmountCollected: eth(1),
		Image:           "ipfs://bafy/cover.png",
		Donators:        []common.Address{donorAddr, ownerAddr},
		Donations:       []*big.Int{eth(1)},
	}

	c := Normalize(raw, now, "https://gw.example/ipfs/")
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, "https://gw.example/ipfs/bafy/cover.png", c.Image)
	assert.Equal(t, DefaultCategory, c.Category)
	assert.Equal(t, int64(4), c.DaysLeft)
	assert.Equal(t, ownerAddr, c.Creator())
	assert.True(t, c.OwnedBy(walletAddr))
	assert.False(t, c.OwnedBy(donorAddr))

	require.Len(t, c.Donators, 1)
	require.Len(t, c.Donations, 1)
	contributions := c.Contributions()
	require.Len(t, contributions, 1)
	assert.Equal(t, donorAddr, contributions[0].Donator)
	assert.Equal(t, 0, eth(1).Cmp(contributions[0].AmountWei))
}

func TestNormalizeEmptyRecord(t *testing.T) {
	c := Normalize(RawCampaign{}, time.Unix(1_700_000_000, 0), "")
	assert.Equal(t, "", c.Image)
	assert.Equal(t, int64(0), c.DaysLeft)
	assert.NotNil(t, c.Donators)
	assert.NotNil(t, c.Donations)
	assert.Empty(t, c.Donators)
	assert.Equal(t, StatusCompleted, c.Status)
}

func TestDaysLeftNeverNegative(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	for _, offset := range []int64{-10 * secondsPerDay, -1, 0, 1, secondsPerDay, secondsPerDay + 1} {
		got := DaysLeft(now.Unix()+offset, now)
		if got < 0 {
			t.Fatalf("DaysLeft(offset=%d) = %d", offset, got)
		}
	}
	assert.Equal(t, int64(1), DaysLeft(now.Unix()+1, now))
	assert.Equal(t, int64(2), DaysLeft(now.Unix()+secondsPerDay+1, now))
}

func TestGatewayURL(t *testing.T) {
	assert.Equal(t, "https://ipfs.io/ipfs/abc/1.png", GatewayURL("ipfs://abc/1.png", ""))
	assert.Equal(t, "https://cdn.example/x.png", GatewayURL("https://cdn.example/x.png", ""))
}

func TestNormalizeHugeDeadline(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	maxUint256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	for _, deadline := range []*big.Int{new(big.Int).Lsh(big.NewInt(1), 64), maxUint256} {
		c := Normalize(RawCampaign{Target: eth(10), AmountCollected: eth(4), Deadline: deadline}, now, "")
		assert.Equal(t, StatusActive, c.Status, "deadline %s", deadline)
		assert.Equal(t, MaxDeadline, c.Deadline)
		assert.Positive(t, c.DaysLeft)
		assert.True(t, c.AcceptsContributions(now))
	}
}

func TestNormalizeAllSkipsUnaddressableIDs(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	raws := []RawCampaign{
		{CampaignID: big.NewInt(1), Title: "small"},
		{CampaignID: new(big.Int).Lsh(big.NewInt(1), 64), Title: "huge"},
	}
	got := NormalizeAll(raws, now, "")
	require.Len(t, got, 1)
	assert.Equal(t, "small", got[0].Title)

	assert.True(t, raws[0].HasID(1))
	assert.False(t, raws[1].HasID(0))
	assert.Equal(t, int64(-1), Normalize(raws[1], now, "").ID)
}
