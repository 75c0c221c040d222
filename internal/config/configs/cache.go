package configs

import "time"

// Cache drivers.
const (
	CacheDriverMemory = "memory"
	CacheDriverSQLite = "sqlite"
)

// Cache configures the supporters cache.
type Cache struct {
	// Driver selects the key-value storage: memory or sqlite.
	Driver string `env:"DRIVER" envDefault:"memory"`
	// Path is the SQLite database file, used by the sqlite driver.
	Path string        `env:"PATH" envDefault:"crowdfund-cache.db"`
	TTL  time.Duration `env:"TTL" envDefault:"5m"`
}
