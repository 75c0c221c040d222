package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedOptions controls how much demo data Seed writes.
type SeedOptions struct {
	Users            int
	DraftsPerUser    int
	AttemptsPerDraft int
}

// DefaultSeed is used by the CLI when no counts are given.
var DefaultSeed = SeedOptions{Users: 3, DraftsPerUser: 2, AttemptsPerDraft: 3}

var (
	seedCategories = []string{"education", "health", "environment", "community"}
	seedStates     = []string{"confirmed", "confirmed", "failed", "pending"}
)

// Seed inserts demo users, campaign drafts and contribution attempts. Rows
// use deterministic IDs so running it twice changes nothing.
func Seed(ctx context.Context, db *pgxpool.Pool, opts SeedOptions) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i := 1; i <= opts.Users; i++ {
		userID := seedID("user", i)
		wallet := fmt.Sprintf("0x%040x", i)
		smartWallet := fmt.Sprintf("0x%040x", 0x1000+i)
		_, err := db.Exec(ctx, `INSERT INTO users
    (id, wallet_address, smart_wallet_address, username, email, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$6) ON CONFLICT DO NOTHING`,
			userID, wallet, smartWallet, fmt.Sprintf("demo%d", i), fmt.Sprintf("demo%d@example.com", i), now)
		if err != nil {
			return err
		}

		for j := 1; j <= opts.DraftsPerUser; j++ {
			n := (i-1)*opts.DraftsPerUser + j
			goal := fmt.Sprintf("%d.5", 1+r.Intn(20))
			category := seedCategories[r.Intn(len(seedCategories))]
			deadline := now.AddDate(0, 0, 7+r.Intn(60))
			_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, creator_id, title, description, goal_amount, category, image_url, deadline, ipfs_hash, status, created_at)
VALUES ($1,$2,$3,$4,$5::numeric,$6,$7,$8,$9,'ACTIVE',$10) ON CONFLICT DO NOTHING`,
				seedID("draft", n), userID,
				fmt.Sprintf("Demo campaign %d", n),
				fmt.Sprintf("Seeded campaign %d owned by demo%d", n, i),
				goal, category,
				fmt.Sprintf("https://ipfs.io/ipfs/demo-%d", n),
				deadline, fmt.Sprintf("demo-%d", n), now)
			if err != nil {
				return err
			}

			for k := 1; k <= opts.AttemptsPerDraft; k++ {
				state := seedStates[r.Intn(len(seedStates))]
				var txHash *string
				if state != "failed" {
					h := fmt.Sprintf("0x%064x", n*1000+k)
					txHash = &h
				}
				var failureKind *string
				if state == "failed" {
					kind := "insufficient_funds"
					failureKind = &kind
				}
				_, err = db.Exec(ctx, `INSERT INTO contributions
    (id, campaign_id, payer, amount_wei, amount, state, tx_hash, failure_kind, created_at, updated_at)
VALUES ($1,$2,$3,'100000000000000000'::numeric,0.1,$4,$5,$6,$7,$7) ON CONFLICT DO NOTHING`,
					seedID("attempt", n*1000+k), n, wallet, state, txHash, failureKind, now)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func seedID(kind string, n int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("crowdfund-seed-%s-%d", kind, n)))
}
