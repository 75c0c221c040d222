package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

// LaunchUseCase creates campaigns on chain and records their drafts once
// the creation transaction is confirmed.
type LaunchUseCase interface {
	// Launch builds, submits and confirms a createCampaign transaction. The
	// returned launch is always populated; errors follow Contribute.
	Launch(ctx context.Context, req LaunchRequest) (*domain.CampaignLaunch, error)
}

// LaunchRequest is a draft submitted for on-chain creation by Creator, who
// becomes both owner and wallet of the campaign.
type LaunchRequest struct {
	Creator common.Address
	Draft   DraftRequest
}
