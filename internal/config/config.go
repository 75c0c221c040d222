package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"crowdfund/internal/config/configs"
)

// Config aggregates all configuration sections of the service. Each nested
// struct is parsed from environment variables carrying its envPrefix; see the
// configs package for the individual defaults.
type Config struct {
	// Env names the deployment environment (prod, dev). It is only logged.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP     `envPrefix:"HTTP_"`
	Log  configs.Logger   `envPrefix:"LOG_"`
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Chain configures the RPC endpoint, the campaign contract and the local
	// signing keys.
	Chain configs.Chain `envPrefix:"CHAIN_"`

	Cache configs.Cache `envPrefix:"CACHE_"`
	Auth  configs.Auth  `envPrefix:"AUTH_"`

	// Contribution bounds the confirmation phase of the contribution
	// workflow.
	Contribution configs.Contribution `envPrefix:"CONTRIBUTION_"`
}

// Load reads an optional .env file from the working directory and then parses
// the environment into a Config. Variables already set in the environment
// take precedence over the file.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Chain.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
