package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

// CampaignUseCase exposes the read side of campaigns: normalized views,
// the supporters view and dashboard statistics.
type CampaignUseCase interface {
	// ListCampaigns returns normalized campaigns matching the filter.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// GetCampaign returns one campaign or ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// Supporters lists contributions to campaigns owned by the viewer.
	Supporters(ctx context.Context, viewer common.Address) ([]domain.Supporter, error)
	// DashboardStats aggregates campaigns owned by the viewer.
	DashboardStats(ctx context.Context, viewer common.Address) (*domain.DashboardStats, error)
}

// CampaignFilter narrows ListCampaigns. Zero values disable a criterion.
type CampaignFilter struct {
	Status domain.Status
	Query  string
	Owner  *common.Address
}

// SupportersCache is the viewer-keyed result cache used by Supporters.
type SupportersCache interface {
	Get(viewerID string) ([]domain.Supporter, bool)
	Put(viewerID string, data []domain.Supporter)
}
