package domain

import (
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// IPFSScheme is the content-addressed URI prefix rewritten for display.
	IPFSScheme = "ipfs://"
	// DefaultIPFSGateway replaces IPFSScheme when no gateway is configured.
	DefaultIPFSGateway = "https://ipfs.io/ipfs/"
	// DefaultCategory is used for campaigns created without one.
	DefaultCategory = "uncategorized"

	secondsPerDay = 24 * 60 * 60

	// MaxDeadline caps uint256 deadlines. Larger values, including the
	// 2^256-1 "no deadline" sentinel, are treated as this far future instant,
	// which time.Unix still represents without overflow.
	MaxDeadline int64 = 1 << 62
)

// Normalize converts a raw contract record into a Campaign. It never panics
// on missing fields: absent amounts are zero and absent lists are empty.
func Normalize(raw RawCampaign, now time.Time, gateway string) Campaign {
	target := orZero(raw.Target)
	collected := orZero(raw.AmountCollected)
	deadline := DeadlineSeconds(raw.Deadline)

	donators, donations := pairLists(raw.Donators, raw.Donations)

	category := raw.Category
	if category == "" {
		category = DefaultCategory
	}

	return Campaign{
		ID:            campaignID(raw.CampaignID),
		Title:         raw.Title,
		Description:   raw.Description,
		Image:         GatewayURL(raw.Image, gateway),
		Category:      category,
		GoalWei:       new(big.Int).Set(target),
		RaisedWei:     new(big.Int).Set(collected),
		Goal:          WeiToEther(target),
		Raised:        WeiToEther(collected),
		PercentFunded: PercentOf(collected, target),
		Deadline:      deadline,
		DaysLeft:      DaysLeft(deadline, now),
		Owner:         raw.Owner,
		SmartWallet:   raw.SmartWallet,
		Donators:      donators,
		Donations:     donations,
		Status:        Classify(collected, target, time.Unix(deadline, 0), now),
	}
}

// NormalizeAll normalizes every record with the same reference time.
// Records whose id does not fit an int64 cannot be addressed and are
// skipped.
func NormalizeAll(raws []RawCampaign, now time.Time, gateway string) []Campaign {
	out := make([]Campaign, 0, len(raws))
	for _, raw := range raws {
		if !raw.Addressable() {
			continue
		}
		out = append(out, Normalize(raw, now, gateway))
	}
	return out
}

// DeadlineSeconds converts a uint256 deadline to unix seconds, clamping to
// [0, MaxDeadline].
func DeadlineSeconds(v *big.Int) int64 {
	switch {
	case v == nil || v.Sign() <= 0:
		return 0
	case !v.IsInt64() || v.Int64() > MaxDeadline:
		return MaxDeadline
	default:
		return v.Int64()
	}
}

// campaignID returns the id as an int64, or -1 when it does not fit.
func campaignID(v *big.Int) int64 {
	if v == nil {
		return 0
	}
	if !v.IsInt64() || v.Sign() < 0 {
		return -1
	}
	return v.Int64()
}

// GatewayURL rewrites an ipfs:// URI to an HTTP gateway URI, keeping the rest
// of the path. Other URIs are returned unchanged.
func GatewayURL(uri, gateway string) string {
	if !strings.HasPrefix(uri, IPFSScheme) {
		return uri
	}
	if gateway == "" {
		gateway = DefaultIPFSGateway
	}
	return gateway + strings.TrimPrefix(uri, IPFSScheme)
}

// DaysLeft returns max(0, ceil((deadline-now)/86400)).
func DaysLeft(deadline int64, now time.Time) int64 {
	remaining := deadline - now.Unix()
	if remaining <= 0 {
		return 0
	}
	return (remaining + secondsPerDay - 1) / secondsPerDay
}

// pairLists keeps the donator/donation lists index aligned, truncating to
// the shorter one when the contract returns mismatched lengths.
func pairLists(donators []common.Address, donations []*big.Int) ([]common.Address, []*big.Int) {
	n := min(len(donators), len(donations))
	outDonators := make([]common.Address, n)
	outDonations := make([]*big.Int, n)
	copy(outDonators, donators[:n])
	for i := 0; i < n; i++ {
		outDonations[i] = new(big.Int).Set(orZero(donations[i]))
	}
	return outDonators, outDonations
}
