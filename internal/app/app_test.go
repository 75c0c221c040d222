package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
)

func TestOpenCacheDrivers(t *testing.T) {
	wallet := common.HexToAddress("0x01")
	supporters := []domain.Supporter{{CampaignID: 4, CampaignTitle: "Wells", WalletAddress: wallet}}

	for _, driver := range []string{configs.CacheDriverMemory, configs.CacheDriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := configs.Cache{Driver: driver, Path: filepath.Join(t.TempDir(), "cache.db"), TTL: time.Minute}
			c, done, err := OpenCache(context.Background(), cfg, nil)
			require.NoError(t, err)
			defer done()

			c.Put("viewer", supporters)
			got, ok := c.Get("viewer")
			require.True(t, ok)
			require.Len(t, got, 1)
			assert.Equal(t, int64(4), got[0].CampaignID)
			assert.Equal(t, wallet, got[0].WalletAddress)
		})
	}
}

func TestOpenCacheUnknownDriver(t *testing.T) {
	_, _, err := OpenCache(context.Background(), configs.Cache{Driver: "redis"}, nil)
	assert.Error(t, err)
}

func TestOpenChainRequiresContract(t *testing.T) {
	_, err := OpenChain(context.Background(), configs.Chain{RPCURL: "http://127.0.0.1:1"})
	assert.Error(t, err)
}
