package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
)

// AccountUseCase is the REST persistence layer: user registration and
// profile, and database-backed campaign drafts.
type AccountUseCase interface {
	// Register creates a user for the wallet pair. When the smart wallet is
	// already registered the existing user is returned with created=false.
	Register(ctx context.Context, wallet, smartWallet string) (user *domain.User, created bool, err error)
	UpdateProfile(ctx context.Context, smartWallet, username, email string) (*domain.User, error)
	GetUser(ctx context.Context, wallet, smartWallet string) (*domain.User, error)
	CreateDraft(ctx context.Context, creatorSmartWallet string, req DraftRequest) (*domain.CampaignDraft, error)
	ListDrafts(ctx context.Context, creatorSmartWallet string) ([]domain.CampaignDraft, error)
}

// DraftRequest is the payload of POST /api/campaigns.
type DraftRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	GoalAmount  decimal.Decimal `json:"goalAmount"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Deadline    time.Time       `json:"deadline"`
	IPFSHash    string          `json:"ipfsHash"`
}
