package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// AccountUseCase manages registered users and their database-backed
// campaign drafts.
type AccountUseCase struct {
	users  port.UserRepository
	drafts port.DraftRepository
	logger *slog.Logger
	now    func() time.Time
}

var _ port.AccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(users port.UserRepository, drafts port.DraftRepository, logger *slog.Logger) *AccountUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AccountUseCase{users: users, drafts: drafts, logger: logger, now: time.Now}
}

// Register creates the user for a wallet pair unless the smart wallet is
// already known.
func (u *AccountUseCase) Register(ctx context.Context, wallet, smartWallet string) (*domain.User, bool, error) {
	wallet, smartWallet, err := normalizeWallets(wallet, smartWallet)
	if err != nil {
		return nil, false, err
	}

	existing, err := u.users.FindBySmartWallet(ctx, smartWallet)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, port.ErrUserNotFound):
		return nil, false, err
	}

	now := u.now()
	user := &domain.User{
		ID:                 uuid.New(),
		WalletAddress:      wallet,
		SmartWalletAddress: smartWallet,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err = u.users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	u.logger.Info("user registered", slog.String("smart_wallet", smartWallet))
	return user, true, nil
}

func (u *AccountUseCase) UpdateProfile(ctx context.Context, smartWallet, username, email string) (*domain.User, error) {
	user, err := u.users.FindBySmartWallet(ctx, strings.ToLower(smartWallet))
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	if email != "" && !validEmail(email) {
		return nil, fmt.Errorf("%w: malformed email", port.ErrInvalidProfile)
	}
	return u.users.UpdateProfile(ctx, user.ID, strings.TrimSpace(username), email)
}

// validEmail accepts local@domain with both parts non-empty and no blanks.
func validEmail(email string) bool {
	local, domainPart, ok := strings.Cut(email, "@")
	return ok && local != "" && domainPart != "" &&
		!strings.ContainsAny(email, " \t") && !strings.Contains(domainPart, "@")
}

func (u *AccountUseCase) GetUser(ctx context.Context, wallet, smartWallet string) (*domain.User, error) {
	wallet, smartWallet, err := normalizeWallets(wallet, smartWallet)
	if err != nil {
		return nil, err
	}
	return u.users.FindByWallets(ctx, wallet, smartWallet)
}

// CreateDraft records a campaign for the creator identified by their smart
// wallet.
func (u *AccountUseCase) CreateDraft(ctx context.Context, creatorSmartWallet string, req port.DraftRequest) (*domain.CampaignDraft, error) {
	if err := validateDraft(req, u.now()); err != nil {
		return nil, err
	}
	creator, err := u.users.FindBySmartWallet(ctx, strings.ToLower(creatorSmartWallet))
	if err != nil {
		return nil, err
	}

	draft := newDraft(creator.ID, req, u.now())
	if err = u.drafts.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (u *AccountUseCase) ListDrafts(ctx context.Context, creatorSmartWallet string) ([]domain.CampaignDraft, error) {
	creator, err := u.users.FindBySmartWallet(ctx, strings.ToLower(creatorSmartWallet))
	if err != nil {
		return nil, err
	}
	return u.drafts.ListByCreator(ctx, creator.ID)
}

// normalizeWallets validates both addresses and lowercases them, the form
// in which they are stored.
func normalizeWallets(wallet, smartWallet string) (string, string, error) {
	if !common.IsHexAddress(wallet) || !common.IsHexAddress(smartWallet) {
		return "", "", fmt.Errorf("%w: wallet addresses must be hex", port.ErrInvalidProfile)
	}
	return strings.ToLower(wallet), strings.ToLower(smartWallet), nil
}

// newDraft builds an active draft from a validated request.
func newDraft(creatorID uuid.UUID, req port.DraftRequest, now time.Time) *domain.CampaignDraft {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = domain.DefaultCategory
	}
	draft := &domain.CampaignDraft{
		ID:          uuid.New(),
		CreatorID:   creatorID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		GoalAmount:  req.GoalAmount,
		Category:    category,
		ImageURL:    req.ImageURL,
		Deadline:    req.Deadline.UTC(),
		IPFSHash:    req.IPFSHash,
		Status:      domain.DraftStatusActive,
		CreatedAt:   now,
	}
	if draft.ImageURL == "" {
		draft.ImageURL = domain.GatewayURL(domain.IPFSScheme+req.IPFSHash, "")
	}
	return draft
}

func validateDraft(req port.DraftRequest, now time.Time) error {
	var missing []string
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, "description")
	}
	if !req.GoalAmount.IsPositive() {
		missing = append(missing, "goalAmount")
	}
	if req.Deadline.IsZero() {
		missing = append(missing, "deadline")
	}
	if strings.TrimSpace(req.IPFSHash) == "" {
		missing = append(missing, "ipfsHash")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing or invalid %s", port.ErrInvalidDraft, strings.Join(missing, ", "))
	}
	if !req.Deadline.After(now) {
		return fmt.Errorf("%w: deadline must be in the future", port.ErrInvalidDraft)
	}
	return nil
}
