package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"crowdfund/db/migrations"
)

// ErrDirty is returned when a previous migration failed half way.
var ErrDirty = errors.New("database is in dirty state")

// Migrate brings the schema at addr to migrations.Version.
func Migrate(addr string) error {
	return migrateTo(addr, migrations.Version)
}

// Rollback reverts every migration.
func Rollback(addr string) error {
	return migrateTo(addr, 0)
}

func migrateTo(addr string, version uint) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return ErrDirty
	}

	if version == 0 {
		err = mg.Down()
	} else {
		err = mg.Migrate(version)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
