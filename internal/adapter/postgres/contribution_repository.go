package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// ContributionRepository records contribution attempts. Wei amounts are
// NUMERIC(78,0) and travel as decimal strings.
type ContributionRepository struct {
	pool *pgxpool.Pool
}

var _ port.ContributionRepository = (*ContributionRepository)(nil)

func NewContributionRepository(pool *pgxpool.Pool) *ContributionRepository {
	return &ContributionRepository{pool: pool}
}

func (r *ContributionRepository) Save(ctx context.Context, a *domain.ContributionAttempt) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO contributions
(id, campaign_id, payer, amount_wei, amount, state, tx_hash, failure_kind, failure_message, created_at, updated_at)
VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11)`,
		a.ID, a.CampaignID, a.Payer.Hex(), weiString(a.AmountWei), a.Amount.String(), string(a.State),
		hashString(a.TxHash), string(a.FailureKind), a.FailureMessage, a.CreatedAt, a.UpdatedAt)
	return err
}

// UpdateState writes the mutable part of an attempt: state, hash, receipt
// and failure details.
func (r *ContributionRepository) UpdateState(ctx context.Context, a *domain.ContributionAttempt) error {
	var (
		block   *int64
		gasUsed *int64
		success *bool
	)
	if a.Receipt != nil {
		b, g, s := int64(a.Receipt.BlockNumber), int64(a.Receipt.GasUsed), a.Receipt.Success
		block, gasUsed, success = &b, &g, &s
	}
	tag, err := r.pool.Exec(ctx, `UPDATE contributions SET
    state = $2,
    tx_hash = $3,
    block_number = $4,
    gas_used = $5,
    receipt_success = $6,
    failure_kind = NULLIF($7, ''),
    failure_message = NULLIF($8, ''),
    updated_at = $9
WHERE id = $1`,
		a.ID, string(a.State), hashString(a.TxHash), block, gasUsed, success,
		string(a.FailureKind), a.FailureMessage, a.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrContributionNotFound
	}
	return nil
}

func (r *ContributionRepository) Get(ctx context.Context, id uuid.UUID) (*domain.ContributionAttempt, error) {
	var (
		a              domain.ContributionAttempt
		payer          string
		amountWei      string
		amount         string
		state          string
		txHash         *string
		block, gasUsed *int64
		success        *bool
		failureKind    string
	)
	err := r.pool.QueryRow(ctx, `SELECT
    id, campaign_id, payer, amount_wei::text, amount::text, state, tx_hash,
    block_number, gas_used, receipt_success,
    COALESCE(failure_kind, ''), COALESCE(failure_message, ''), created_at, updated_at
FROM contributions WHERE id = $1`, id).Scan(
		&a.ID, &a.CampaignID, &payer, &amountWei, &amount, &state, &txHash,
		&block, &gasUsed, &success,
		&failureKind, &a.FailureMessage, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrContributionNotFound
	}
	if err != nil {
		return nil, err
	}

	wei, ok := new(big.Int).SetString(amountWei, 10)
	if !ok {
		return nil, fmt.Errorf("contribution %s: malformed amount_wei %q", id, amountWei)
	}
	if a.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("contribution %s: %w", id, err)
	}
	a.AmountWei = wei
	a.Payer = common.HexToAddress(payer)
	a.State = domain.TxState(state)
	a.FailureKind = domain.FailureKind(failureKind)
	if txHash != nil {
		h := common.HexToHash(*txHash)
		a.TxHash = &h
		if success != nil {
			a.Receipt = &domain.Receipt{TxHash: h, Success: *success}
			if block != nil {
				a.Receipt.BlockNumber = uint64(*block)
			}
			if gasUsed != nil {
				a.Receipt.GasUsed = uint64(*gasUsed)
			}
		}
	}
	return &a, nil
}

func weiString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func hashString(h *common.Hash) *string {
	if h == nil {
		return nil
	}
	s := h.Hex()
	return &s
}
