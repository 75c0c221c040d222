package domain

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxState is a state of the contribution workflow.
type TxState string

const (
	StateBuilding   TxState = "building"
	StateSubmitted  TxState = "submitted"
	StateConfirming TxState = "confirming"
	StateConfirmed  TxState = "confirmed"
	StateFailed     TxState = "failed"
	// StatePending means the transaction was broadcast but no receipt was
	// seen within the confirmation bound.
	StatePending TxState = "pending"
)

var transitions = map[TxState][]TxState{
	StateBuilding:   {StateSubmitted, StateFailed},
	StateSubmitted:  {StateConfirming, StateFailed},
	StateConfirming: {StateConfirmed, StateFailed, StatePending},
	StatePending:    {StateConfirmed, StateFailed},
}

// CanTransition reports whether the workflow may move from one state to the
// other.
func (s TxState) CanTransition(to TxState) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further automatic progress happens from s.
// Pending is terminal for a single call but may be resolved later.
func (s TxState) Terminal() bool {
	return s == StateConfirmed || s == StateFailed || s == StatePending
}

// FailureKind classifies why a contribution failed.
type FailureKind string

const (
	FailureValidation        FailureKind = "validation"
	FailureAuthorization     FailureKind = "authorization"
	FailureNetwork           FailureKind = "network"
	FailureInsufficientFunds FailureKind = "insufficient_funds"
	FailureExecution         FailureKind = "execution"
)

// ErrStillPending is returned when a submitted transaction was not confirmed
// within the polling bound. The transaction may still be mined later.
var ErrStillPending = errors.New("transaction still pending")

// ErrReverted is the cause of an execution failure: the transaction was mined
// but its receipt reports failure.
var ErrReverted = errors.New("transaction reverted")

// ContributionError is the typed failure of a contribution attempt or a
// campaign launch.
type ContributionError struct {
	Kind  FailureKind
	Stage TxState
	Err   error
}

func (e *ContributionError) Error() string {
	return fmt.Sprintf("%s failure during %s: %v", e.Kind, e.Stage, e.Err)
}

func (e *ContributionError) Unwrap() error {
	return e.Err
}

// FailureKindOf extracts the failure kind from err, or "" if err is not a
// ContributionError.
func FailureKindOf(err error) FailureKind {
	var ce *ContributionError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// Receipt is the confirmation of a mined transaction.
type Receipt struct {
	TxHash      common.Hash `json:"txHash"`
	BlockNumber uint64      `json:"blockNumber"`
	GasUsed     uint64      `json:"gasUsed"`
	Success     bool        `json:"success"`
}

// ContributionAttempt is one invocation of the contribution workflow. A retry
// creates a new attempt with a new ID.
type ContributionAttempt struct {
	ID             uuid.UUID       `json:"id"`
	CampaignID     int64           `json:"campaignId"`
	Payer          common.Address  `json:"payer"`
	AmountWei      *big.Int        `json:"amountWei"`
	Amount         decimal.Decimal `json:"amount"`
	State          TxState         `json:"state"`
	TxHash         *common.Hash    `json:"txHash,omitempty"`
	Receipt        *Receipt        `json:"receipt,omitempty"`
	FailureKind    FailureKind     `json:"failureKind,omitempty"`
	FailureMessage string          `json:"failureMessage,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
