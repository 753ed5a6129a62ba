// seed/seed.go
package seed

import (
	"errors"
	"log"

	"github.com/Arjunnair2005/dasG/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultAdminPassword = "admin123"

// Run inserts the default admin account and a sample student on a fresh
// store. Running it again on a seeded store is a no-op.
func Run(db *gorm.DB) error {
	var admin models.Admin
	err := db.First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin = models.Admin{
			Username:     "admin",
			PasswordHash: string(hash),
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}

		log.Println("Default admin account seeded successfully.")
	} else if err != nil {
		return err
	}

	var student models.Student
	err = db.First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		student = models.Student{
			RollNo:    "BCA001",
			Name:      "Arjun Murlidharan Nair",
			Course:    "BCA 3rd Year",
			Email:     "arjun@example.com",
			TotalDues: 15000,
		}
		if err := db.Create(&student).Error; err != nil {
			return err
		}

		log.Println("Sample student seeded successfully.")
	} else if err != nil {
		return err
	}

	return nil
}
