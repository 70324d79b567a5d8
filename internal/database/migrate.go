package database

import (
	"fmt"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
