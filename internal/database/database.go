package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
)

// Open connects to PostgreSQL. TranslateError is on so a violated
// unique constraint surfaces as gorm.ErrDuplicatedKey, which the
// booking path relies on to detect commit-time seat races.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema, including the composite
// unique index on tickets(performance_id, row, seat).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(model.AllModels()...)
}
