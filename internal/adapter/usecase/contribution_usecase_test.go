package usecase

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/port/mocks"
)

var (
	testChainID = big.NewInt(11155111)
	fixedNow    = time.Unix(1_700_000_000, 0)
	contractTo  = common.HexToAddress("0x00000000000000000000000000000000c0ffee00")
)

type stubSigner struct {
	key *ecdsa.PrivateKey
	err error
}

func (s stubSigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

func (s stubSigner) SignTx(_ context.Context, tx *types.Transaction) (*types.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	return types.SignTx(tx, types.LatestSignerForChainID(testChainID), s.key)
}

type contributionFixture struct {
	uc       *ContributionUseCase
	contract *mocks.MockCampaignContract
	signers  *mocks.MockSignerResolver
	repo     *mocks.MockContributionRepository
	signer   stubSigner
}

func newContributionFixture(t *testing.T, confirmTimeout time.Duration) *contributionFixture {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	f := &contributionFixture{
		contract: mocks.NewMockCampaignContract(t),
		signers:  mocks.NewMockSignerResolver(t),
		repo:     mocks.NewMockContributionRepository(t),
		signer:   stubSigner{key: key},
	}
	f.uc = NewContributionUseCase(f.contract, f.signers, f.repo, configs.Contribution{
		ConfirmTimeout:  confirmTimeout,
		PollInterval:    time.Millisecond,
		MaxPollInterval: 5 * time.Millisecond,
	}, nil)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func (f *contributionFixture) request(amount string) port.ContributionRequest {
	return port.ContributionRequest{
		CampaignID: 1,
		Amount:     decimal.RequireFromString(amount),
		Payer:      f.signer.Address(),
	}
}

func openCampaigns() []domain.RawCampaign {
	return []domain.RawCampaign{{
		CampaignID:      big.NewInt(1),
		Title:           "Clean water",
		Target:          big.NewInt(1e18),
		AmountCollected: big.NewInt(0),
		Deadline:        big.NewInt(fixedNow.Add(48 * time.Hour).Unix()),
	}}
}

func unsignedDonation(value *big.Int) *types.Transaction {
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   testChainID,
		Nonce:     3,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(10),
		Gas:       60_000,
		To:        &contractTo,
		Value:     value,
	})
}

// expectThroughBuild sets up the calls that precede broadcasting.
func (f *contributionFixture) expectThroughBuild(wantWei string) {
	f.signers.EXPECT().Resolve(mock.Anything, f.signer.Address()).Return(f.signer, nil)
	f.contract.EXPECT().GetCampaigns(mock.Anything).Return(openCampaigns(), nil)
	f.contract.EXPECT().
		BuildDonation(mock.Anything, f.signer.Address(), int64(1), mock.MatchedBy(func(w *big.Int) bool {
			return w.String() == wantWei
		})).
		RunAndReturn(func(_ context.Context, _ common.Address, _ int64, wei *big.Int) (*types.Transaction, error) {
			return unsignedDonation(wei), nil
		})
}

func (f *contributionFixture) recordStates() *[]domain.TxState {
	var states []domain.TxState
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *domain.ContributionAttempt) { states = append(states, a.State) }).
		Return(nil).Once()
	f.repo.EXPECT().UpdateState(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *domain.ContributionAttempt) { states = append(states, a.State) }).
		Return(nil)
	return &states
}

func TestContributeConfirmed(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	f.expectThroughBuild("100000000000000000")
	states := f.recordStates()

	var sent *types.Transaction
	f.contract.EXPECT().Send(mock.Anything, mock.Anything).
		Run(func(_ context.Context, tx *types.Transaction) { sent = tx }).
		Return(nil)
	f.contract.EXPECT().Receipt(mock.Anything, mock.Anything).Return(nil, port.ErrReceiptNotFound).Twice()
	f.contract.EXPECT().Receipt(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, h common.Hash) (*domain.Receipt, error) {
			return &domain.Receipt{TxHash: h, BlockNumber: 42, Success: true}, nil
		}).Once()

	attempt, err := f.uc.Contribute(context.Background(), f.request("0.1"))
	require.NoError(t, err)

	assert.Equal(t, domain.StateConfirmed, attempt.State)
	require.NotNil(t, attempt.TxHash)
	assert.Equal(t, sent.Hash(), *attempt.TxHash)
	require.NotNil(t, attempt.Receipt)
	assert.Equal(t, uint64(42), attempt.Receipt.BlockNumber)
	assert.Equal(t, "100000000000000000", attempt.AmountWei.String())
	assert.Equal(t, []domain.TxState{
		domain.StateBuilding, domain.StateSubmitted, domain.StateConfirming, domain.StateConfirmed,
	}, *states)

	sender, err := types.Sender(types.LatestSignerForChainID(testChainID), sent)
	require.NoError(t, err)
	assert.Equal(t, f.signer.Address(), sender)
}

func TestContributePendingAfterBound(t *testing.T) {
	f := newContributionFixture(t, 30*time.Millisecond)
	f.expectThroughBuild("1000000000000000000")
	states := f.recordStates()
	f.contract.EXPECT().Send(mock.Anything, mock.Anything).Return(nil)
	f.contract.EXPECT().Receipt(mock.Anything, mock.Anything).Return(nil, port.ErrReceiptNotFound)

	attempt, err := f.uc.Contribute(context.Background(), f.request("1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStillPending)
	assert.Equal(t, domain.StatePending, attempt.State)
	assert.NotNil(t, attempt.TxHash)
	assert.Nil(t, attempt.Receipt)
	assert.Equal(t, domain.StatePending, (*states)[len(*states)-1])
}

func TestContributePendingWhenCallerCancels(t *testing.T) {
	f := newContributionFixture(t, time.Minute)
	f.expectThroughBuild("1000000000000000000")
	f.recordStates()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.contract.EXPECT().Send(mock.Anything, mock.Anything).
		Run(func(context.Context, *types.Transaction) { cancel() }).
		Return(nil)
	f.contract.EXPECT().Receipt(mock.Anything, mock.Anything).Return(nil, port.ErrReceiptNotFound).Maybe()

	attempt, err := f.uc.Contribute(ctx, f.request("1"))
	assert.ErrorIs(t, err, domain.ErrStillPending)
	assert.Equal(t, domain.StatePending, attempt.State)
}

func TestContributeReverted(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	f.expectThroughBuild("100000000000000000")
	f.recordStates()
	f.contract.EXPECT().Send(mock.Anything, mock.Anything).Return(nil)
	f.contract.EXPECT().Receipt(mock.Anything, mock.Anything).Return(&domain.Receipt{Success: false}, nil)

	attempt, err := f.uc.Contribute(context.Background(), f.request("0.1"))
	assert.Equal(t, domain.FailureExecution, domain.FailureKindOf(err))
	assert.ErrorIs(t, err, domain.ErrReverted)
	assert.Equal(t, domain.StateFailed, attempt.State)
	assert.NotNil(t, attempt.Receipt)
}

func TestContributeSubmitFailures(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
		want    domain.FailureKind
	}{
		{"insufficient funds", errors.New("insufficient funds for gas * price + value"), domain.FailureInsufficientFunds},
		{"network", errors.New("Post \"http://rpc\": dial tcp: connection refused"), domain.FailureNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContributionFixture(t, time.Second)
			f.expectThroughBuild("100000000000000000")
			f.recordStates()
			f.contract.EXPECT().Send(mock.Anything, mock.Anything).Return(tt.sendErr)

			attempt, err := f.uc.Contribute(context.Background(), f.request("0.1"))
			assert.Equal(t, tt.want, domain.FailureKindOf(err))
			assert.Equal(t, domain.StateFailed, attempt.State)
			assert.Nil(t, attempt.TxHash, "no hash may be reported when submit failed")
			assert.Equal(t, tt.want, attempt.FailureKind)
		})
	}
}

func TestContributeSignerRejects(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	rejecting := stubSigner{key: f.signer.key, err: errors.New("user rejected")}
	f.signers.EXPECT().Resolve(mock.Anything, mock.Anything).Return(rejecting, nil)
	f.contract.EXPECT().GetCampaigns(mock.Anything).Return(openCampaigns(), nil)
	f.contract.EXPECT().BuildDonation(mock.Anything, mock.Anything, int64(1), mock.Anything).
		Return(unsignedDonation(big.NewInt(1)), nil)
	f.recordStates()

	_, err := f.uc.Contribute(context.Background(), f.request("0.1"))
	assert.Equal(t, domain.FailureAuthorization, domain.FailureKindOf(err))
}

func TestContributeUnknownPayer(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	f.signers.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, port.ErrUnauthorized)
	states := f.recordStates()

	attempt, err := f.uc.Contribute(context.Background(), f.request("0.1"))
	assert.Equal(t, domain.FailureAuthorization, domain.FailureKindOf(err))
	assert.ErrorIs(t, err, port.ErrUnauthorized)
	assert.Equal(t, domain.StateFailed, attempt.State)
	assert.Equal(t, []domain.TxState{domain.StateBuilding, domain.StateFailed}, *states)
}

func TestContributeCampaignChecks(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	closed := openCampaigns()
	closed[0].Deadline = big.NewInt(fixedNow.Add(-time.Hour).Unix())
	f.signers.EXPECT().Resolve(mock.Anything, mock.Anything).Return(f.signer, nil)
	f.contract.EXPECT().GetCampaigns(mock.Anything).Return(closed, nil).Once()
	f.contract.EXPECT().GetCampaigns(mock.Anything).Return(nil, nil).Once()
	f.contract.EXPECT().GetCampaigns(mock.Anything).Return(nil, errors.New("rpc timeout")).Once()
	f.recordStates()
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.Contribute(context.Background(), f.request("0.1"))
	assert.Equal(t, domain.FailureValidation, domain.FailureKindOf(err))
	assert.ErrorIs(t, err, domain.ErrCampaignClosed)

	_, err = f.uc.Contribute(context.Background(), f.request("0.1"))
	assert.Equal(t, domain.FailureValidation, domain.FailureKindOf(err))
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)

	_, err = f.uc.Contribute(context.Background(), f.request("0.1"))
	assert.Equal(t, domain.FailureNetwork, domain.FailureKindOf(err))
}

func TestContributeUint256Bounds(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	noDeadline := openCampaigns()
	noDeadline[0].Deadline = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	wrapped := openCampaigns()
	wrapped[0].CampaignID = new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))

	f.signers.EXPECT().Resolve(mock.Anything, mock.Anything).Return(f.signer, nil)
	f.contract.EXPECT().GetCampaigns(mock.Anything).Return(noDeadline, nil).Once()
	f.contract.EXPECT().GetCampaigns(mock.Anything).Return(wrapped, nil).Once()
	f.contract.EXPECT().BuildDonation(mock.Anything, mock.Anything, int64(1), mock.Anything).
		Return(nil, errors.New("i/o timeout")).Once()
	f.recordStates()
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	// A campaign without a practical deadline is open and reaches the build step.
	_, err := f.uc.Contribute(context.Background(), f.request("0.1"))
	assert.Equal(t, domain.FailureNetwork, domain.FailureKindOf(err))
	assert.NotErrorIs(t, err, domain.ErrCampaignClosed)

	// An id of 2^64+1 must not be mistaken for campaign 1.
	_, err = f.uc.Contribute(context.Background(), f.request("0.1"))
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestContributeBuildFailure(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	f.signers.EXPECT().Resolve(mock.Anything, mock.Anything).Return(f.signer, nil)
	f.contract.EXPECT().GetCampaigns(mock.Anything).Return(openCampaigns(), nil)
	f.contract.EXPECT().BuildDonation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("estimate gas: execution reverted")).Once()
	f.contract.EXPECT().BuildDonation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("i/o timeout")).Once()
	f.recordStates()
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.Contribute(context.Background(), f.request("0.1"))
	assert.Equal(t, domain.FailureExecution, domain.FailureKindOf(err))
	_, err = f.uc.Contribute(context.Background(), f.request("0.1"))
	assert.Equal(t, domain.FailureNetwork, domain.FailureKindOf(err))
}

// Validation failures make no calls at all: the mocks carry no expectations.
func TestContributeValidation(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	valid := f.request("0.1")

	cases := map[string]port.ContributionRequest{
		"zero amount":     {CampaignID: 1, Amount: decimal.Zero, Payer: valid.Payer},
		"negative amount": {CampaignID: 1, Amount: decimal.NewFromInt(-1), Payer: valid.Payer},
		"sub-wei amount":  {CampaignID: 1, Amount: decimal.RequireFromString("0.0000000000000000001"), Payer: valid.Payer},
		"negative id":     {CampaignID: -1, Amount: valid.Amount, Payer: valid.Payer},
		"missing payer":   {CampaignID: 1, Amount: valid.Amount},
	}
	seen := make(map[string]bool)
	for name, req := range cases {
		attempt, err := f.uc.Contribute(context.Background(), req)
		if domain.FailureKindOf(err) != domain.FailureValidation {
			t.Fatalf("%s: expected validation failure, got %v", name, err)
		}
		if attempt.State != domain.StateFailed {
			t.Fatalf("%s: state %s", name, attempt.State)
		}
		if seen[attempt.ID.String()] {
			t.Fatalf("%s: attempt id reused", name)
		}
		seen[attempt.ID.String()] = true
	}
}

func TestContributePersistenceFailureDoesNotChangeOutcome(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	f.expectThroughBuild("100000000000000000")
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("db down"))
	f.contract.EXPECT().Send(mock.Anything, mock.Anything).Return(nil)
	f.contract.EXPECT().Receipt(mock.Anything, mock.Anything).Return(&domain.Receipt{Success: true}, nil)

	attempt, err := f.uc.Contribute(context.Background(), f.request("0.1"))
	require.NoError(t, err)
	assert.Equal(t, domain.StateConfirmed, attempt.State)
}

func TestGetContributionSettlesPending(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	hash := common.HexToHash("0xabc")
	stored := &domain.ContributionAttempt{ID: uuid.New(), State: domain.StatePending, TxHash: &hash}

	f.repo.EXPECT().Get(mock.Anything, stored.ID).Return(stored, nil)
	f.contract.EXPECT().Receipt(mock.Anything, hash).Return(&domain.Receipt{TxHash: hash, Success: true}, nil)
	f.repo.EXPECT().UpdateState(mock.Anything, stored).Return(nil).Once()

	got, err := f.uc.GetContribution(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateConfirmed, got.State)
}

func TestGetContributionStillPending(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	hash := common.HexToHash("0xabc")
	stored := &domain.ContributionAttempt{ID: uuid.New(), State: domain.StatePending, TxHash: &hash}

	f.repo.EXPECT().Get(mock.Anything, stored.ID).Return(stored, nil)
	f.contract.EXPECT().Receipt(mock.Anything, hash).Return(nil, port.ErrReceiptNotFound)

	got, err := f.uc.GetContribution(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePending, got.State)
}

func TestGetContributionNotFound(t *testing.T) {
	f := newContributionFixture(t, time.Second)
	f.repo.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, port.ErrContributionNotFound)

	_, err := f.uc.GetContribution(context.Background(), uuid.New())
	assert.ErrorIs(t, err, port.ErrContributionNotFound)
}
