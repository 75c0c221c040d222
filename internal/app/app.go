// Package app assembles adapters and use cases from configuration. It is
// shared by the API server and the operator CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/adapter/cache"
	"crowdfund/internal/adapter/chain"
	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/sqlite"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/auth"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/db"
)

// SupportersCacheKey is the storage key of the supporters view.
const SupportersCacheKey = "crowdfund:supporters"

// Chain holds an open RPC connection and the bound contract.
type Chain struct {
	Client   *ethclient.Client
	Contract *chain.CampaignContract
	Signers  *chain.KeyRing
}

// OpenChain dials the RPC endpoint and binds the campaign contract.
func OpenChain(ctx context.Context, cfg configs.Chain) (*Chain, error) {
	if cfg.ContractAddress == "" {
		return nil, fmt.Errorf("CHAIN_CONTRACT_ADDRESS is required")
	}
	client, err := chain.Dial(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.RPCURL, err)
	}
	contract, err := chain.NewCampaignContract(client, cfg.Contract(), cfg.ID())
	if err != nil {
		client.Close()
		return nil, err
	}
	signers, err := chain.NewKeyRing(cfg.ID(), cfg.SignerKeys)
	if err != nil {
		client.Close()
		return nil, err
	}
	return &Chain{Client: client, Contract: contract, Signers: signers}, nil
}

func (c *Chain) Close() {
	c.Client.Close()
}

// SupportersCache is the cache type used for the supporters view.
type SupportersCache = cache.ResultCache[[]domain.Supporter]

// OpenCache builds the supporters cache over the configured storage. The
// returned func releases the storage.
func OpenCache(ctx context.Context, cfg configs.Cache, logger *slog.Logger) (*SupportersCache, func(), error) {
	var (
		storage cache.Storage
		closeFn = func() {}
	)
	switch cfg.Driver {
	case configs.CacheDriverSQLite:
		kv, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		storage = kv
		closeFn = func() { _ = kv.Close() }
	case configs.CacheDriverMemory, "":
		storage = cache.NewMemoryStorage()
	default:
		return nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
	return cache.New[[]domain.Supporter](storage, SupportersCacheKey, cfg.TTL, nil, logger), closeFn, nil
}

// App is the fully wired API service.
type App struct {
	Config config.Config
	Logger *slog.Logger

	Pool  *pgxpool.Pool
	Chain *Chain

	Campaigns     *usecase.CampaignUseCase
	Contributions *usecase.ContributionUseCase
	Accounts      *usecase.AccountUseCase
	Launches      *usecase.LaunchUseCase
	Verifier      *auth.Verifier

	closers []func()
}

// New connects to PostgreSQL and the chain and builds every use case. On
// error everything opened so far is closed.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (a *App, err error) {
	a = &App{Config: cfg, Logger: logger, Verifier: auth.NewVerifier(cfg.Auth.JWTSecret)}
	defer func() {
		if err != nil {
			a.Close()
			a = nil
		}
	}()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return a, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}
	if a.Pool, err = db.NewPostgresPool(ctx, cfg.Psql); err != nil {
		return a, fmt.Errorf("database connection: %w", err)
	}
	a.closers = append(a.closers, a.Pool.Close)

	if a.Chain, err = OpenChain(ctx, cfg.Chain); err != nil {
		return a, err
	}
	a.closers = append(a.closers, a.Chain.Close)

	supporters, closeCache, err := OpenCache(ctx, cfg.Cache, logger)
	if err != nil {
		return a, err
	}
	a.closers = append(a.closers, closeCache)

	a.Campaigns = usecase.NewCampaignUseCase(a.Chain.Contract, supporters, logger,
		usecase.WithGateway(cfg.Chain.IPFSGateway))
	a.Contributions = usecase.NewContributionUseCase(a.Chain.Contract, a.Chain.Signers,
		postgres.NewContributionRepository(a.Pool), cfg.Contribution, logger)
	users, drafts := postgres.NewUserRepository(a.Pool), postgres.NewDraftRepository(a.Pool)
	a.Accounts = usecase.NewAccountUseCase(users, drafts, logger)
	a.Launches = usecase.NewLaunchUseCase(a.Chain.Contract, a.Chain.Signers, users, drafts, cfg.Contribution, logger)

	logger.Info("application wired",
		slog.String("env", cfg.Env),
		slog.String("contract", cfg.Chain.Contract().Hex()),
		slog.Int("signers", len(a.Chain.Signers.Addresses())),
		slog.String("cache", cfg.Cache.Driver))
	return a, nil
}

// Handler returns the HTTP API.
func (a *App) Handler() http.Handler {
	return httpadapter.NewHandler(httpadapter.Services{
		Campaigns:     a.Campaigns,
		Contributions: a.Contributions,
		Accounts:      a.Accounts,
		Launches:      a.Launches,
	}, a.Verifier, a.Config.Auth.CookieName, a.Logger).Router()
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
