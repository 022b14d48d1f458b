// Package store opens the relational store behind the client. gorm's
// connection pool hands each operation a live handle and replaces stale
// ones transparently, which is all the reconnect behavior the client needs.
package store

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"miniblog/internal/config"
	"miniblog/internal/models"
)

func Open(cfg config.DB, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMin) * time.Minute)

	log.Info("database connection established")

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Info("database migration completed")
	}
	return db, nil
}

// Migrate creates or updates the five tables of the external schema. Also
// used by the test suite against its own dialect.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Credential{},
		&models.Blog{},
		&models.Comment{},
		&models.Reaction{},
	)
}
