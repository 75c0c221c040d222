package port

import (
	"context"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

// UserRepository persists registered users. Lookups return ErrUserNotFound
// when no row matches.
type UserRepository interface {
	FindBySmartWallet(ctx context.Context, smartWallet string) (*domain.User, error)
	FindByWallets(ctx context.Context, wallet, smartWallet string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) (*domain.User, error)
}

// DraftRepository persists database-backed campaign drafts.
type DraftRepository interface {
	Create(ctx context.Context, draft *domain.CampaignDraft) error
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.CampaignDraft, error)
}

// ContributionRepository records contribution attempts for diagnostics and
// for resolving pending transactions later.
type ContributionRepository interface {
	Save(ctx context.Context, attempt *domain.ContributionAttempt) error
	UpdateState(ctx context.Context, attempt *domain.ContributionAttempt) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ContributionAttempt, error)
}
