package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// CampaignParams are the arguments of the contract's createCampaign method.
// Image is stored on chain as given, usually an ipfs:// URI.
type CampaignParams struct {
	Owner       common.Address `json:"owner"`
	Wallet      common.Address `json:"wallet"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	GoalWei     *big.Int       `json:"goalWei"`
	Deadline    int64          `json:"deadline"`
	Image       string         `json:"image"`
}

// CampaignLaunch is one on-chain campaign creation. It moves through the
// same TxState machine as a contribution attempt. The database draft is
// recorded only once the launch is confirmed.
type CampaignLaunch struct {
	ID             uuid.UUID      `json:"id"`
	Creator        common.Address `json:"creator"`
	Params         CampaignParams `json:"params"`
	State          TxState        `json:"state"`
	TxHash         *common.Hash   `json:"txHash,omitempty"`
	Receipt        *Receipt       `json:"receipt,omitempty"`
	Draft          *CampaignDraft `json:"draft,omitempty"`
	FailureKind    FailureKind    `json:"failureKind,omitempty"`
	FailureMessage string         `json:"failureMessage,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
