package usecase

import (
	"context"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/singleflight"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const defaultReadTimeout = 30 * time.Second

// CampaignUseCase serves normalized campaign views read from the contract.
type CampaignUseCase struct {
	contract port.CampaignContract
	cache    port.SupportersCache
	logger   *slog.Logger

	gateway     string
	now         func() time.Time
	readTimeout time.Duration

	// reads collapses concurrent getCampaigns calls into one RPC.
	reads singleflight.Group
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// CampaignOption customizes a CampaignUseCase.
type CampaignOption func(*CampaignUseCase)

// WithGateway sets the HTTP gateway used for ipfs:// images.
func WithGateway(gateway string) CampaignOption {
	return func(u *CampaignUseCase) { u.gateway = gateway }
}

// WithClock replaces time.Now as the reference time for status and days
// left.
func WithClock(now func() time.Time) CampaignOption {
	return func(u *CampaignUseCase) { u.now = now }
}

// WithReadTimeout bounds a shared contract read.
func WithReadTimeout(d time.Duration) CampaignOption {
	return func(u *CampaignUseCase) {
		if d > 0 {
			u.readTimeout = d
		}
	}
}

// NewCampaignUseCase creates the campaign read service. cache may be nil, in
// which case the supporters view is rebuilt on every call.
func NewCampaignUseCase(contract port.CampaignContract, cache port.SupportersCache, logger *slog.Logger, opts ...CampaignOption) *CampaignUseCase {
	u := &CampaignUseCase{
		contract: contract,
		cache:    cache,
		logger:   logger,
		gateway:  domain.DefaultIPFSGateway,
		now:      time.Now,

		readTimeout: defaultReadTimeout,
	}
	if u.logger == nil {
		u.logger = slog.New(slog.DiscardHandler)
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// campaigns reads and normalizes every campaign. Concurrent callers share
// one contract read; it runs detached from any single caller, bounded by
// readTimeout, and each caller stops waiting when its own ctx is done.
func (u *CampaignUseCase) campaigns(ctx context.Context) ([]domain.Campaign, error) {
	ch := u.reads.DoChan("getCampaigns", func() (any, error) {
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.readTimeout)
		defer cancel()
		return u.contract.GetCampaigns(readCtx)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		u.logger.Debug("campaign read shared between callers")
	}
	return domain.NormalizeAll(res.Val.([]domain.RawCampaign), u.now(), u.gateway), nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	all, err := u.campaigns(ctx)
	if err != nil {
		return nil, err
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]domain.Campaign, 0, len(all))
	for _, c := range all {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Owner != nil && !c.OwnedBy(*filter.Owner) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Title), query) &&
			!strings.Contains(strings.ToLower(c.Description), query) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	all, err := u.campaigns(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, port.ErrCampaignNotFound
}

// Supporters lists every contribution made to campaigns the viewer owns. The
// result is cached per viewer.
func (u *CampaignUseCase) Supporters(ctx context.Context, viewer common.Address) ([]domain.Supporter, error) {
	key := viewer.Hex()
	if u.cache != nil {
		if cached, ok := u.cache.Get(key); ok {
			return cached, nil
		}
	}

	all, err := u.campaigns(ctx)
	if err != nil {
		return nil, err
	}
	supporters := make([]domain.Supporter, 0)
	for _, c := range all {
		if !c.OwnedBy(viewer) {
			continue
		}
		for _, contribution := range c.Contributions() {
			supporters = append(supporters, domain.Supporter{
				CampaignID:    c.ID,
				CampaignTitle: c.Title,
				WalletAddress: contribution.Donator,
				Amount:        domain.WeiToEther(contribution.AmountWei),
				AmountWei:     contribution.AmountWei,
				Index:         contribution.Index,
			})
		}
	}

	if u.cache != nil {
		u.cache.Put(key, supporters)
	}
	return supporters, nil
}

func (u *CampaignUseCase) DashboardStats(ctx context.Context, viewer common.Address) (*domain.DashboardStats, error) {
	all, err := u.campaigns(ctx)
	if err != nil {
		return nil, err
	}

	raised, goal := new(big.Int), new(big.Int)
	supporters := make(map[common.Address]struct{})
	stats := &domain.DashboardStats{}
	for _, c := range all {
		if !c.OwnedBy(viewer) {
			continue
		}
		stats.TotalCampaigns++
		switch c.Status {
		case domain.StatusActive:
			stats.ActiveCampaigns++
		case domain.StatusCompleted:
			stats.CompletedCampaigns++
		case domain.StatusExpired:
			stats.ExpiredCampaigns++
		}
		raised.Add(raised, c.RaisedWei)
		goal.Add(goal, c.GoalWei)
		for _, d := range c.Donators {
			supporters[d] = struct{}{}
		}
	}

	stats.TotalRaised = domain.WeiToEther(raised)
	stats.TotalGoal = domain.WeiToEther(goal)
	if stats.TotalCampaigns > 0 {
		stats.PercentReached = domain.PercentOf(raised, goal)
	}
	stats.UniqueSupporters = len(supporters)
	return stats, nil
}
