package domain

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// RawCampaign mirrors one tuple returned by the contract's getCampaigns
// method. Amounts are in wei and Deadline is in unix seconds.
type RawCampaign struct {
	CampaignID      *big.Int
	Owner           common.Address
	SmartWallet     common.Address
	Title           string
	Description     string
	Target          *big.Int
	Deadline        *big.Int
	AmountCollected *big.Int
	Image           string
	Category        string
	Donators        []common.Address
	Donations       []*big.Int
}

// Addressable reports whether the record's id fits the int64 ids used by the
// API. A missing id counts as zero.
func (r RawCampaign) Addressable() bool {
	return r.CampaignID == nil || (r.CampaignID.Sign() >= 0 && r.CampaignID.IsInt64())
}

// HasID reports whether the record carries exactly id.
func (r RawCampaign) HasID(id int64) bool {
	return r.Addressable() && orZero(r.CampaignID).Cmp(big.NewInt(id)) == 0
}

// Campaign is the normalized, read-only view of an on-chain campaign.
type Campaign struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Image         string           `json:"image"`
	Category      string           `json:"category"`
	GoalWei       *big.Int         `json:"goalWei"`
	RaisedWei     *big.Int         `json:"raisedWei"`
	Goal          decimal.Decimal  `json:"goal"`
	Raised        decimal.Decimal  `json:"raised"`
	PercentFunded decimal.Decimal  `json:"percentFunded"`
	Deadline      int64            `json:"deadline"`
	DaysLeft      int64            `json:"daysLeft"`
	Owner         common.Address   `json:"owner"`
	SmartWallet   common.Address   `json:"smartWallet"`
	Donators      []common.Address `json:"donators"`
	Donations     []*big.Int       `json:"donations"`
	Status        Status           `json:"status"`
}

// Creator is the controlling identity of the campaign.
func (c Campaign) Creator() common.Address {
	return c.Owner
}

// OwnedBy reports whether addr controls the campaign either directly or
// through its smart wallet.
func (c Campaign) OwnedBy(addr common.Address) bool {
	return addr == c.Owner || addr == c.SmartWallet
}

// Contributions pairs the parallel donator and donation lists.
func (c Campaign) Contributions() []Contribution {
	out := make([]Contribution, 0, len(c.Donators))
	for i := range c.Donators {
		out = append(out, Contribution{
			CampaignID: c.ID,
			Index:      i,
			Donator:    c.Donators[i],
			AmountWei:  c.Donations[i],
		})
	}
	return out
}

// Contribution is a single funding event identified by its index within the
// campaign's donation lists.
type Contribution struct {
	CampaignID int64
	Index      int
	Donator    common.Address
	AmountWei  *big.Int
}

// Supporter is one row of the supporters view: a contribution made to a
// campaign owned by the viewer.
type Supporter struct {
	CampaignID    int64           `json:"campaignId"`
	CampaignTitle string          `json:"campaignTitle"`
	WalletAddress common.Address  `json:"walletAddress"`
	Amount        decimal.Decimal `json:"amount"`
	AmountWei     *big.Int        `json:"amountWei"`
	Index         int             `json:"index"`
}

// DashboardStats aggregates the campaigns owned by one viewer.
type DashboardStats struct {
	TotalRaised        decimal.Decimal `json:"totalRaised"`
	TotalGoal          decimal.Decimal `json:"totalGoal"`
	PercentReached     decimal.Decimal `json:"percentReached"`
	TotalCampaigns     int             `json:"totalCampaigns"`
	ActiveCampaigns    int             `json:"activeCampaigns"`
	CompletedCampaigns int             `json:"completedCampaigns"`
	ExpiredCampaigns   int             `json:"expiredCampaigns"`
	UniqueSupporters   int             `json:"uniqueSupporters"`
}

// ErrCampaignClosed is returned when a contribution targets a campaign whose
// deadline has passed.
var ErrCampaignClosed = errors.New("campaign deadline has passed")

// AcceptsContributions reports whether the campaign may still be funded at
// now. Funding past the goal is allowed until the deadline.
func (c Campaign) AcceptsContributions(now time.Time) bool {
	return !time.Unix(c.Deadline, 0).Before(now)
}
