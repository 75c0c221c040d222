package port

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"crowdfund/internal/core/domain"
)

// CampaignContract is the outbound port to the crowdfunding smart contract.
// Every method is a network round trip.
type CampaignContract interface {
	// GetCampaigns returns every campaign tuple in contract order.
	GetCampaigns(ctx context.Context) ([]domain.RawCampaign, error)
	// BuildDonation prepares an unsigned payable call of donateToCampaign
	// sending amountWei from the given account.
	BuildDonation(ctx context.Context, from common.Address, campaignID int64, amountWei *big.Int) (*types.Transaction, error)
	// BuildCreateCampaign prepares an unsigned createCampaign call from the
	// given account.
	BuildCreateCampaign(ctx context.Context, from common.Address, params domain.CampaignParams) (*types.Transaction, error)
	// Send broadcasts a signed transaction. It returns as soon as the node
	// accepted it, before confirmation.
	Send(ctx context.Context, tx *types.Transaction) error
	// Receipt returns the receipt of a mined transaction or
	// ErrReceiptNotFound while it is still pending.
	Receipt(ctx context.Context, hash common.Hash) (*domain.Receipt, error)
}

// Signer authorizes transactions on behalf of one address.
type Signer interface {
	Address() common.Address
	SignTx(ctx context.Context, tx *types.Transaction) (*types.Transaction, error)
}

// SignerResolver maps a payer identity to its signer. It returns
// ErrUnauthorized when the identity has no connected signer.
type SignerResolver interface {
	Resolve(ctx context.Context, payer common.Address) (Signer, error)
}
