package migrations

import (
	"github.com/Arjunnair2005/dasG/models"

	"gorm.io/gorm"
)

// Run creates any missing tables. Existing tables are never altered.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Student{},
		&models.FeeStructure{},
		&models.Payment{},
		&models.Admin{},
	)
}
