package sqlite

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/samber/oops"

	"github.com/aussiebroadwan/planner/internal/auth/store/drivers/sqlite/migrations"
)

// ApplyMigrations brings the users, preferences and reset token tables up to
// the embedded schema. Running it again on a current database does nothing.
func (m *Store) ApplyMigrations() error {
	driver, err := sqlite.WithInstance(m.db, &sqlite.Config{})
	if err != nil {
		return oops.Code("MIGRATION_INIT_FAILED").With("driver", "sqlite").Wrap(err)
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return oops.Code("MIGRATION_SOURCE_FAILED").With("driver", "sqlite").Wrap(err)
	}

	instance, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		_ = source.Close()
		return oops.Code("MIGRATION_INIT_FAILED").With("driver", "sqlite").Wrap(err)
	}

	// instance.Close would also close m.db, which the Store still owns.
	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return oops.Code("MIGRATION_UP_FAILED").With("driver", "sqlite").Wrap(err)
	}
	return nil
}
