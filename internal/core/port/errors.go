package port

import "errors"

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrContributionNotFound = errors.New("contribution not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUnauthorized         = errors.New("payer is not an authorized signer")
	// ErrReceiptNotFound is returned by CampaignContract.Receipt while the
	// transaction has not been mined yet.
	ErrReceiptNotFound = errors.New("receipt not found")
	ErrInvalidDraft    = errors.New("invalid campaign draft")
	ErrInvalidProfile  = errors.New("invalid profile")
)
