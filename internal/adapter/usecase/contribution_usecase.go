package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const persistTimeout = 5 * time.Second

var (
	errInvalidCampaignID = errors.New("campaign id must not be negative")
	errMissingPayer      = errors.New("payer address is required")
)

// ContributionUseCase runs the build, submit, confirm workflow of a
// donation.
type ContributionUseCase struct {
	contract port.CampaignContract
	signers  port.SignerResolver
	repo     port.ContributionRepository
	cfg      configs.Contribution
	logger   *slog.Logger
	now      func() time.Time
}

var _ port.ContributionUseCase = (*ContributionUseCase)(nil)

// NewContributionUseCase wires the workflow. Zero durations in cfg fall back
// to a five minute confirmation bound polled from two seconds up to fifteen.
func NewContributionUseCase(
	contract port.CampaignContract,
	signers port.SignerResolver,
	repo port.ContributionRepository,
	cfg configs.Contribution,
	logger *slog.Logger,
) *ContributionUseCase {
	cfg = confirmDefaults(cfg)
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ContributionUseCase{
		contract: contract,
		signers:  signers,
		repo:     repo,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Contribute performs one contribution attempt. The attempt is returned in
// every case. On failure err is a *domain.ContributionError; when no receipt
// arrived within the confirmation bound the attempt is pending and err wraps
// domain.ErrStillPending.
func (u *ContributionUseCase) Contribute(ctx context.Context, req port.ContributionRequest) (*domain.ContributionAttempt, error) {
	now := u.now()
	attempt := &domain.ContributionAttempt{
		ID:         uuid.New(),
		CampaignID: req.CampaignID,
		Payer:      req.Payer,
		Amount:     req.Amount,
		State:      domain.StateBuilding,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	run := &contributionRun{
		u:       u,
		attempt: attempt,
		log: u.logger.With(
			slog.String("attempt_id", attempt.ID.String()),
			slog.Int64("campaign_id", req.CampaignID),
			slog.String("payer", req.Payer.Hex()),
		),
	}

	// Validation happens before any network call and is not recorded.
	wei, err := validateContribution(req)
	if err != nil {
		return attempt, run.fail(ctx, domain.FailureValidation, err)
	}
	attempt.AmountWei = wei
	run.record = true
	run.persist(ctx)

	signer, err := u.signers.Resolve(ctx, req.Payer)
	if err != nil {
		return attempt, run.fail(ctx, domain.FailureAuthorization, err)
	}
	if kind, err := u.checkCampaign(ctx, req.CampaignID); err != nil {
		return attempt, run.fail(ctx, kind, err)
	}

	tx, err := u.contract.BuildDonation(ctx, signer.Address(), req.CampaignID, wei)
	if err != nil {
		return attempt, run.fail(ctx, classifyRPCError(err, domain.FailureNetwork), fmt.Errorf("build: %w", err))
	}
	signed, err := signer.SignTx(ctx, tx)
	if err != nil {
		return attempt, run.fail(ctx, domain.FailureAuthorization, fmt.Errorf("sign: %w", err))
	}
	if err = u.contract.Send(ctx, signed); err != nil {
		return attempt, run.fail(ctx, classifyRPCError(err, domain.FailureNetwork), fmt.Errorf("send: %w", err))
	}

	hash := signed.Hash()
	attempt.TxHash = &hash
	run.log = run.log.With(slog.String("tx_hash", hash.Hex()))
	if err = run.move(ctx, domain.StateSubmitted); err != nil {
		return attempt, err
	}
	if err = run.move(ctx, domain.StateConfirming); err != nil {
		return attempt, err
	}

	receipt, err := u.awaitReceipt(ctx, hash, run.log)
	if err != nil {
		run.log.Warn("no receipt within confirmation bound",
			slog.Duration("timeout", u.cfg.ConfirmTimeout), slog.Any("error", err))
		if moveErr := run.move(ctx, domain.StatePending); moveErr != nil {
			return attempt, moveErr
		}
		return attempt, fmt.Errorf("%w: %s", domain.ErrStillPending, hash.Hex())
	}
	return attempt, run.settle(ctx, receipt)
}

// GetContribution returns a recorded attempt. A pending attempt gets one
// receipt lookup and is settled when the receipt has arrived since.
func (u *ContributionUseCase) GetContribution(ctx context.Context, id uuid.UUID) (*domain.ContributionAttempt, error) {
	attempt, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if attempt.State != domain.StatePending || attempt.TxHash == nil {
		return attempt, nil
	}

	log := u.logger.With(slog.String("attempt_id", id.String()), slog.String("tx_hash", attempt.TxHash.Hex()))
	receipt, err := u.contract.Receipt(ctx, *attempt.TxHash)
	if errors.Is(err, port.ErrReceiptNotFound) {
		return attempt, nil
	}
	if err != nil {
		log.Warn("receipt lookup failed", slog.Any("error", err))
		return attempt, nil
	}

	run := &contributionRun{u: u, attempt: attempt, log: log, record: true, saved: true}
	if err = run.settle(ctx, receipt); err != nil && domain.FailureKindOf(err) == "" {
		return nil, err
	}
	return attempt, nil
}

// checkCampaign verifies the target exists and is still open.
func (u *ContributionUseCase) checkCampaign(ctx context.Context, id int64) (domain.FailureKind, error) {
	raws, err := u.contract.GetCampaigns(ctx)
	if err != nil {
		return domain.FailureNetwork, fmt.Errorf("read campaigns: %w", err)
	}
	now := u.now()
	for _, raw := range raws {
		if !raw.HasID(id) {
			continue
		}
		if !domain.Normalize(raw, now, "").AcceptsContributions(now) {
			return domain.FailureValidation, domain.ErrCampaignClosed
		}
		return "", nil
	}
	return domain.FailureValidation, port.ErrCampaignNotFound
}

func (u *ContributionUseCase) awaitReceipt(ctx context.Context, hash common.Hash, log *slog.Logger) (*domain.Receipt, error) {
	return awaitReceipt(ctx, u.contract, u.cfg, hash, log)
}

// awaitReceipt polls for the receipt with exponential backoff until it is
// found or the confirmation bound elapses. Lookup errors are retried.
func awaitReceipt(ctx context.Context, contract port.CampaignContract, cfg configs.Contribution, hash common.Hash, log *slog.Logger) (*domain.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConfirmTimeout)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.PollInterval
	b.MaxInterval = cfg.MaxPollInterval

	return backoff.Retry(ctx,
		func() (*domain.Receipt, error) {
			return contract.Receipt(ctx, hash)
		},
		backoff.WithBackOff(b),
		backoff.WithMaxElapsedTime(cfg.ConfirmTimeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Debug("waiting for receipt", slog.Duration("next", next), slog.Any("error", err))
		}),
	)
}

// confirmDefaults fills zero durations with a five minute confirmation
// bound polled from two seconds up to fifteen.
func confirmDefaults(cfg configs.Contribution) configs.Contribution {
	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = 5 * time.Minute
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxPollInterval < cfg.PollInterval {
		cfg.MaxPollInterval = max(cfg.PollInterval, 15*time.Second)
	}
	return cfg
}

func validateContribution(req port.ContributionRequest) (*big.Int, error) {
	if req.CampaignID < 0 {
		return nil, errInvalidCampaignID
	}
	if req.Payer == (common.Address{}) {
		return nil, errMissingPayer
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: must be greater than zero", domain.ErrInvalidAmount)
	}
	return domain.EtherToWei(req.Amount)
}

// classifyRPCError maps node error messages to failure kinds. JSON-RPC
// errors carry no stable codes for these cases, only their text.
func classifyRPCError(err error, fallback domain.FailureKind) domain.FailureKind {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"):
		return domain.FailureInsufficientFunds
	case strings.Contains(msg, "execution reverted"):
		return domain.FailureExecution
	default:
		return fallback
	}
}

// contributionRun tracks one attempt through the state machine.
type contributionRun struct {
	u       *ContributionUseCase
	attempt *domain.ContributionAttempt
	log     *slog.Logger
	// record enables persistence once the request passed validation.
	record bool
	saved  bool
}

func (r *contributionRun) move(ctx context.Context, to domain.TxState) error {
	from := r.attempt.State
	if !from.CanTransition(to) {
		r.log.Error("illegal contribution transition", slog.String("from", string(from)), slog.String("to", string(to)))
		return fmt.Errorf("illegal contribution transition %s -> %s", from, to)
	}
	r.attempt.State = to
	r.attempt.UpdatedAt = r.u.now()
	r.log.Info("contribution state changed", slog.String("from", string(from)), slog.String("to", string(to)))
	r.persist(ctx)
	return nil
}

func (r *contributionRun) fail(ctx context.Context, kind domain.FailureKind, err error) error {
	cerr := &domain.ContributionError{Kind: kind, Stage: r.attempt.State, Err: err}
	r.attempt.FailureKind = kind
	r.attempt.FailureMessage = err.Error()
	r.log.Warn("contribution failed", slog.String("kind", string(kind)), slog.Any("error", err))
	if moveErr := r.move(ctx, domain.StateFailed); moveErr != nil {
		return errors.Join(cerr, moveErr)
	}
	return cerr
}

// settle records the outcome carried by a receipt.
func (r *contributionRun) settle(ctx context.Context, receipt *domain.Receipt) error {
	r.attempt.Receipt = receipt
	if !receipt.Success {
		return r.fail(ctx, domain.FailureExecution, domain.ErrReverted)
	}
	return r.move(ctx, domain.StateConfirmed)
}

// persist writes the attempt. Errors are logged and never change the
// outcome of the workflow; the write outlives caller cancellation.
func (r *contributionRun) persist(ctx context.Context) {
	if !r.record || r.u.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	var err error
	if r.saved {
		err = r.u.repo.UpdateState(ctx, r.attempt)
	} else if err = r.u.repo.Save(ctx, r.attempt); err == nil {
		r.saved = true
	}
	if err != nil {
		r.log.Warn("failed to record contribution attempt", slog.Any("error", err))
	}
}
