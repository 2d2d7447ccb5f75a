package sqlite

import (
	"fmt"

	"AIGov_Community/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database file with foreign-key enforcement on.
// TranslateError lets callers match gorm.ErrDuplicatedKey instead of
// engine-specific constraint codes.
func Open(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_fk=1", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate creates or updates every table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Resource{},
		&model.Event{},
		&model.TeamMember{},
		&model.Question{},
		&model.Answer{},
		&model.Playbook{},
		&model.Product{},
		&model.ProductReview{},
	)
}

// Close releases the underlying connection. Called from main on shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
