package configs

import "time"

// Contribution bounds receipt polling after a transaction is broadcast.
type Contribution struct {
	// ConfirmTimeout is the longest the workflow waits for a receipt before
	// reporting the attempt as pending.
	ConfirmTimeout time.Duration `env:"CONFIRM_TIMEOUT" envDefault:"5m"`
	// PollInterval is the first wait between receipt lookups. Later waits
	// grow exponentially up to MaxPollInterval.
	PollInterval    time.Duration `env:"POLL_INTERVAL" envDefault:"2s"`
	MaxPollInterval time.Duration `env:"MAX_POLL_INTERVAL" envDefault:"15s"`
}
