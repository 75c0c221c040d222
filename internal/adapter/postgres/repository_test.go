package postgres

import (
	"context"
	"math/big"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// testPool connects to the database named by PSQL_TEST_ADDRESS and applies
// the migrations. Tests are skipped when it is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	require.NoError(t, db.Migrate(addr))

	u, err := url.Parse(addr)
	require.NoError(t, err)
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func newUser(t *testing.T, repo *UserRepository) *domain.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()
	user := &domain.User{
		ID:                 id,
		WalletAddress:      common.BytesToAddress(id[:]).Hex(),
		SmartWalletAddress: "0x" + uuid.NewString(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserRepository(t *testing.T) {
	pool := testPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	user := newUser(t, repo)

	got, err := repo.FindBySmartWallet(ctx, user.SmartWalletAddress)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.Username)

	got, err = repo.FindByWallets(ctx, user.WalletAddress, "0xunknown")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	updated, err := repo.UpdateProfile(ctx, user.ID, "alice", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)

	_, err = repo.FindBySmartWallet(ctx, "0xmissing")
	assert.ErrorIs(t, err, port.ErrUserNotFound)
}

func TestDraftRepository(t *testing.T) {
	pool := testPool(t)
	users := NewUserRepository(pool)
	drafts := NewDraftRepository(pool)
	ctx := context.Background()
	creator := newUser(t, users)

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i, title := range []string{"older", "newer"} {
		require.NoError(t, drafts.Create(ctx, &domain.CampaignDraft{
			ID:          uuid.New(),
			CreatorID:   creator.ID,
			Title:       title,
			Description: "d",
			GoalAmount:  decimal.RequireFromString("1.25"),
			Category:    domain.DefaultCategory,
			Deadline:    base.Add(24 * time.Hour),
			IPFSHash:    "cid",
			Status:      domain.DraftStatusActive,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := drafts.ListByCreator(ctx, creator.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Title)
	assert.True(t, got[0].GoalAmount.Equal(decimal.RequireFromString("1.25")))
}

func TestContributionRepository(t *testing.T) {
	pool := testPool(t)
	repo := NewContributionRepository(pool)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	wei, _ := new(big.Int).SetString("123456789000000000000", 10)
	attempt := &domain.ContributionAttempt{
		ID:         uuid.New(),
		CampaignID: 4,
		Payer:      common.HexToAddress("0x4444444444444444444444444444444444444444"),
		AmountWei:  wei,
		Amount:     domain.WeiToEther(wei),
		State:      domain.StateBuilding,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, repo.Save(ctx, attempt))

	hash := common.HexToHash("0xfeed")
	attempt.TxHash = &hash
	attempt.State = domain.StateConfirmed
	attempt.Receipt = &domain.Receipt{TxHash: hash, BlockNumber: 77, GasUsed: 50_000, Success: true}
	require.NoError(t, repo.UpdateState(ctx, attempt))

	got, err := repo.Get(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateConfirmed, got.State)
	assert.Equal(t, wei.String(), got.AmountWei.String())
	assert.Equal(t, attempt.Payer, got.Payer)
	require.NotNil(t, got.Receipt)
	assert.Equal(t, uint64(77), got.Receipt.BlockNumber)

	_, err = repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, port.ErrContributionNotFound)

	missing := *attempt
	missing.ID = uuid.New()
	assert.ErrorIs(t, repo.UpdateState(ctx, &missing), port.ErrContributionNotFound)
}

func TestSeedIsRepeatable(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	require.NoError(t, db.Seed(ctx, pool, db.DefaultSeed))
	require.NoError(t, db.Seed(ctx, pool, db.DefaultSeed))

	user, err := NewUserRepository(pool).FindBySmartWallet(ctx, "0x0000000000000000000000000000000000001001")
	require.NoError(t, err)
	assert.Equal(t, "demo1", user.Username)

	drafts, err := NewDraftRepository(pool).ListByCreator(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, drafts, db.DefaultSeed.DraftsPerUser)
}
