package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Status is the lifecycle state of a campaign. It is always computed, never
// stored.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
)

// Classify derives the campaign status. Reaching the goal wins over passing
// the deadline, so a funded campaign is completed even after it closed.
// Both amounts must be in the same unit.
func Classify(raised, target *big.Int, deadline, now time.Time) Status {
	if orZero(raised).Cmp(orZero(target)) >= 0 {
		return StatusCompleted
	}
	if deadline.Before(now) {
		return StatusExpired
	}
	return StatusActive
}

// ParseStatus parses a status filter value. The empty string and "all"
// return an empty Status, meaning no filter.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return "", nil
	case string(StatusActive):
		return StatusActive, nil
	case string(StatusCompleted):
		return StatusCompleted, nil
	case string(StatusExpired):
		return StatusExpired, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}
