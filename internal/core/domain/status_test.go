package domain

import (
	"math/big"
	"testing"
	"time"
)

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func TestClassify(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		raised   *big.Int
		target   *big.Int
		deadline time.Time
		want     Status
	}{
		{"funded after deadline", eth(10), eth(10), yesterday, StatusCompleted},
		{"overfunded before deadline", eth(12), eth(10), tomorrow, StatusCompleted},
		{"underfunded after deadline", eth(4), eth(10), yesterday, StatusExpired},
		{"underfunded before deadline", eth(4), eth(10), tomorrow, StatusActive},
		{"deadline equal to now", eth(4), eth(10), now, StatusActive},
		{"one wei short", new(big.Int).Sub(eth(10), big.NewInt(1)), eth(10), yesterday, StatusExpired},
		{"nil amounts", nil, nil, yesterday, StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.raised, tt.target, tt.deadline, now); got != tt.want {
				t.Fatalf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestClassifyCompletedDominates checks the tie-break over a grid of inputs.
func TestClassifyCompletedDominates(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	for raised := int64(0); raised <= 20; raised++ {
		for offset := int64(-3); offset <= 3; offset++ {
			deadline := now.Add(time.Duration(offset) * time.Hour)
			got := Classify(big.NewInt(raised), big.NewInt(10), deadline, now)
			switch {
			case raised >= 10 && got != StatusCompleted:
				t.Fatalf("raised=%d offset=%d: got %q, want completed", raised, offset, got)
			case raised < 10 && offset < 0 && got != StatusExpired:
				t.Fatalf("raised=%d offset=%d: got %q, want expired", raised, offset, got)
			case raised < 10 && offset >= 0 && got != StatusActive:
				t.Fatalf("raised=%d offset=%d: got %q, want active", raised, offset, got)
			}
		}
	}
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{
		"":          "",
		"all":       "",
		"Active":    StatusActive,
		"completed": StatusCompleted,
		" expired ": StatusExpired,
	} {
		got, err := ParseStatus(in)
		if err != nil {
			t.Fatalf("ParseStatus(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseStatus("successful"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestAcceptsContributions(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	open := Campaign{Deadline: now.Unix()}
	closed := Campaign{Deadline: now.Unix() - 1}
	if !open.AcceptsContributions(now) {
		t.Fatal("campaign closing now should still accept contributions")
	}
	if closed.AcceptsContributions(now) {
		t.Fatal("campaign past its deadline accepted a contribution")
	}
}
