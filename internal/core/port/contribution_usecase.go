package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
)

// ContributionUseCase runs the contribution workflow. Contribute is not
// idempotent: each call is an independent transfer attempt.
type ContributionUseCase interface {
	// Contribute builds, submits and confirms a donation. The returned
	// attempt is always populated; err is a *domain.ContributionError on
	// failure or wraps domain.ErrStillPending when confirmation timed out.
	Contribute(ctx context.Context, req ContributionRequest) (*domain.ContributionAttempt, error)
	// GetContribution returns a recorded attempt, re-checking the receipt
	// once when it is still pending.
	GetContribution(ctx context.Context, id uuid.UUID) (*domain.ContributionAttempt, error)
}

// ContributionRequest carries the caller's intent in display units.
type ContributionRequest struct {
	CampaignID int64
	Amount     decimal.Decimal
	Payer      common.Address
}
