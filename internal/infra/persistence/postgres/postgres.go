// Package postgres contains the concrete implementation of the persistence
// layer using GORM and PostgreSQL.
package postgres

import (
	"log/slog"

	"lounas/config"
	"lounas/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New opens the database connection and migrates the schema.
func New(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), &gorm.Config{
		Logger: newQueryLogger(logger, cfg),
		// TranslateError maps driver constraint violations onto GORM's
		// portable sentinel errors, which constraint_errors.go relies on.
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres connection")
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.SessionModel{},
		&model.MenuDayModel{},
		&model.OrderModel{},
		&model.AnnouncementModel{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate schema")
	}

	return db, nil
}
