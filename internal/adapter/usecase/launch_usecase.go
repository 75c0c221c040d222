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

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

var errMissingCreator = errors.New("creator address is required")

// LaunchUseCase creates campaigns on chain. The draft row is written only
// after the creation transaction is confirmed.
type LaunchUseCase struct {
	contract port.CampaignContract
	signers  port.SignerResolver
	users    port.UserRepository
	drafts   port.DraftRepository
	cfg      configs.Contribution
	logger   *slog.Logger
	now      func() time.Time
}

var _ port.LaunchUseCase = (*LaunchUseCase)(nil)

// NewLaunchUseCase wires the launch workflow. With nil users or drafts the
// creator is not required to be registered and no draft is recorded.
func NewLaunchUseCase(
	contract port.CampaignContract,
	signers port.SignerResolver,
	users port.UserRepository,
	drafts port.DraftRepository,
	cfg configs.Contribution,
	logger *slog.Logger,
) *LaunchUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if users == nil || drafts == nil {
		users, drafts = nil, nil
	}
	return &LaunchUseCase{
		contract: contract,
		signers:  signers,
		users:    users,
		drafts:   drafts,
		cfg:      confirmDefaults(cfg),
		logger:   logger,
		now:      time.Now,
	}
}

// Launch runs createCampaign for req.Creator. Failures and the pending
// outcome are reported as in Contribute. The draft is attached to the
// launch when it was recorded.
func (u *LaunchUseCase) Launch(ctx context.Context, req port.LaunchRequest) (*domain.CampaignLaunch, error) {
	now := u.now()
	launch := &domain.CampaignLaunch{
		ID:        uuid.New(),
		Creator:   req.Creator,
		State:     domain.StateBuilding,
		CreatedAt: now,
		UpdatedAt: now,
	}
	run := &launchRun{
		u:      u,
		launch: launch,
		log: u.logger.With(
			slog.String("launch_id", launch.ID.String()),
			slog.String("creator", req.Creator.Hex()),
		),
	}

	params, err := launchParams(req, now)
	if err != nil {
		return launch, run.fail(domain.FailureValidation, err)
	}
	launch.Params = params

	var creator *domain.User
	if u.users != nil {
		creator, err = u.users.FindBySmartWallet(ctx, strings.ToLower(req.Creator.Hex()))
		switch {
		case errors.Is(err, port.ErrUserNotFound):
			return launch, run.fail(domain.FailureAuthorization, err)
		case err != nil:
			return launch, run.fail(domain.FailureNetwork, fmt.Errorf("find creator: %w", err))
		}
	}
	signer, err := u.signers.Resolve(ctx, req.Creator)
	if err != nil {
		return launch, run.fail(domain.FailureAuthorization, err)
	}

	tx, err := u.contract.BuildCreateCampaign(ctx, signer.Address(), params)
	if err != nil {
		return launch, run.fail(classifyRPCError(err, domain.FailureNetwork), fmt.Errorf("build: %w", err))
	}
	signed, err := signer.SignTx(ctx, tx)
	if err != nil {
		return launch, run.fail(domain.FailureAuthorization, fmt.Errorf("sign: %w", err))
	}
	if err = u.contract.Send(ctx, signed); err != nil {
		return launch, run.fail(classifyRPCError(err, domain.FailureNetwork), fmt.Errorf("send: %w", err))
	}

	hash := signed.Hash()
	launch.TxHash = &hash
	run.log = run.log.With(slog.String("tx_hash", hash.Hex()))
	if err = run.move(domain.StateSubmitted); err != nil {
		return launch, err
	}
	if err = run.move(domain.StateConfirming); err != nil {
		return launch, err
	}

	receipt, err := awaitReceipt(ctx, u.contract, u.cfg, hash, run.log)
	if err != nil {
		run.log.Warn("no receipt within confirmation bound",
			slog.Duration("timeout", u.cfg.ConfirmTimeout), slog.Any("error", err))
		if moveErr := run.move(domain.StatePending); moveErr != nil {
			return launch, moveErr
		}
		return launch, fmt.Errorf("%w: %s", domain.ErrStillPending, hash.Hex())
	}
	launch.Receipt = receipt
	if !receipt.Success {
		return launch, run.fail(domain.FailureExecution, domain.ErrReverted)
	}
	if err = run.move(domain.StateConfirmed); err != nil {
		return launch, err
	}

	if creator != nil {
		launch.Draft = u.recordDraft(ctx, creator.ID, req.Draft, run.log)
	}
	return launch, nil
}

// recordDraft writes the draft of a confirmed launch. The campaign already
// exists on chain, so a failed write is logged and leaves the outcome alone.
func (u *LaunchUseCase) recordDraft(ctx context.Context, creatorID uuid.UUID, req port.DraftRequest, log *slog.Logger) *domain.CampaignDraft {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	draft := newDraft(creatorID, req, u.now())
	if err := u.drafts.Create(ctx, draft); err != nil {
		log.Warn("failed to record launched campaign draft", slog.Any("error", err))
		return nil
	}
	return draft
}

// launchParams validates the draft and converts it to contract arguments.
// The goal is converted exactly; sub-wei digits are rejected.
func launchParams(req port.LaunchRequest, now time.Time) (domain.CampaignParams, error) {
	if req.Creator == (common.Address{}) {
		return domain.CampaignParams{}, errMissingCreator
	}
	if err := validateDraft(req.Draft, now); err != nil {
		return domain.CampaignParams{}, err
	}
	goal, err := domain.EtherToWei(req.Draft.GoalAmount)
	if err != nil {
		return domain.CampaignParams{}, fmt.Errorf("%w: goalAmount: %v", port.ErrInvalidDraft, err)
	}
	image := strings.TrimSpace(req.Draft.ImageURL)
	if image == "" {
		image = domain.IPFSScheme + strings.TrimSpace(req.Draft.IPFSHash)
	}
	return domain.CampaignParams{
		Owner:       req.Creator,
		Wallet:      req.Creator,
		Title:       strings.TrimSpace(req.Draft.Title),
		Description: strings.TrimSpace(req.Draft.Description),
		GoalWei:     goal,
		Deadline:    req.Draft.Deadline.Unix(),
		Image:       image,
	}, nil
}

// launchRun tracks one launch through the state machine. Launches are not
// persisted, only logged.
type launchRun struct {
	u      *LaunchUseCase
	launch *domain.CampaignLaunch
	log    *slog.Logger
}

func (r *launchRun) move(to domain.TxState) error {
	from := r.launch.State
	if !from.CanTransition(to) {
		r.log.Error("illegal launch transition", slog.String("from", string(from)), slog.String("to", string(to)))
		return fmt.Errorf("illegal launch transition %s -> %s", from, to)
	}
	r.launch.State = to
	r.launch.UpdatedAt = r.u.now()
	r.log.Info("launch state changed", slog.String("from", string(from)), slog.String("to", string(to)))
	return nil
}

func (r *launchRun) fail(kind domain.FailureKind, err error) error {
	lerr := &domain.ContributionError{Kind: kind, Stage: r.launch.State, Err: err}
	r.launch.FailureKind = kind
	r.launch.FailureMessage = err.Error()
	r.log.Warn("launch failed", slog.String("kind", string(kind)), slog.Any("error", err))
	if moveErr := r.move(domain.StateFailed); moveErr != nil {
		return errors.Join(lerr, moveErr)
	}
	return lerr
}
