package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const userColumns = `id, wallet_address, smart_wallet_address, COALESCE(username, ''), COALESCE(email, ''), created_at, updated_at`

// UserRepository implements port.UserRepository on PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ port.UserRepository = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindBySmartWallet(ctx context.Context, smartWallet string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE smart_wallet_address = $1`, smartWallet)
	return scanUser(row)
}

// FindByWallets matches a user on either address of the pair.
func (r *UserRepository) FindByWallets(ctx context.Context, wallet, smartWallet string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users
WHERE smart_wallet_address = $2 OR wallet_address = $1
ORDER BY (smart_wallet_address = $2) DESC
LIMIT 1`, wallet, smartWallet)
	return scanUser(row)
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO users
(id, wallet_address, smart_wallet_address, username, email, created_at, updated_at)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)`,
		user.ID, user.WalletAddress, user.SmartWalletAddress, user.Username, user.Email, user.CreatedAt, user.UpdatedAt)
	return err
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `UPDATE users
SET username = NULLIF($2, ''), email = NULLIF($3, ''), updated_at = now()
WHERE id = $1
RETURNING `+userColumns, id, username, email)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.WalletAddress, &u.SmartWalletAddress, &u.Username, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
