package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// DraftRepository stores campaign drafts in the campaigns table.
type DraftRepository struct {
	pool *pgxpool.Pool
}

var _ port.DraftRepository = (*DraftRepository)(nil)

func NewDraftRepository(pool *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{pool: pool}
}

func (r *DraftRepository) Create(ctx context.Context, d *domain.CampaignDraft) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
(id, creator_id, title, description, goal_amount, category, image_url, deadline, ipfs_hash, status, created_at)
VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10, $11)`,
		d.ID, d.CreatorID, d.Title, d.Description, d.GoalAmount.String(), d.Category, d.ImageURL,
		d.Deadline, d.IPFSHash, d.Status, d.CreatedAt)
	return err
}

// ListByCreator returns the creator's drafts, newest first.
func (r *DraftRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.CampaignDraft, error) {
	rows, err := r.pool.Query(ctx, `SELECT
    id, creator_id, title, description, goal_amount::text, category,
    COALESCE(image_url, ''), deadline, ipfs_hash, status, created_at
FROM campaigns
WHERE creator_id = $1
ORDER BY created_at DESC`, creatorID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignDraft, error) {
		var (
			d    domain.CampaignDraft
			goal string
		)
		if err := row.Scan(&d.ID, &d.CreatorID, &d.Title, &d.Description, &goal, &d.Category,
			&d.ImageURL, &d.Deadline, &d.IPFSHash, &d.Status, &d.CreatedAt); err != nil {
			return d, err
		}
		amount, err := decimal.NewFromString(goal)
		d.GoalAmount = amount
		return d, err
	})
}
