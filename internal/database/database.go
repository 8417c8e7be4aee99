package database

import (
	"time"

	"github.com/haydenmontgomery/Warbler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL store and configures the connection pool.
// The returned handle is injected into repositories; nothing in this package
// holds onto it.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Migrate creates or updates the schema for all entities. Tables are created
// first with foreign keys disabled, then constraints are added in a second
// pass so circular references cannot wedge the migration.
func Migrate(db *gorm.DB) error {
	tableModels := []interface{}{
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
	}

	db.Config.DisableForeignKeyConstraintWhenMigrating = true
	for _, m := range tableModels {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}

	db.Config.DisableForeignKeyConstraintWhenMigrating = false
	return db.AutoMigrate(tableModels...)
}
