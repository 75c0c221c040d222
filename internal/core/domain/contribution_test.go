package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTxStateTransitions(t *testing.T) {
	assert.True(t, StateBuilding.CanTransition(StateSubmitted))
	assert.True(t, StateConfirming.CanTransition(StatePending))
	assert.True(t, StatePending.CanTransition(StateConfirmed))
	assert.False(t, StateBuilding.CanTransition(StateConfirming))
	assert.False(t, StateSubmitted.CanTransition(StateConfirmed))
	assert.False(t, StateConfirmed.CanTransition(StateFailed))
	assert.True(t, StatePending.Terminal())
	assert.False(t, StateSubmitted.Terminal())
}

func TestFailureKindOf(t *testing.T) {
	err := fmt.Errorf("submit: %w", &ContributionError{Kind: FailureNetwork, Stage: StateBuilding, Err: errors.New("dial tcp")})
	assert.Equal(t, FailureNetwork, FailureKindOf(err))
	assert.Equal(t, FailureKind(""), FailureKindOf(errors.New("plain")))
	assert.ErrorContains(t, err, "dial tcp")
}
