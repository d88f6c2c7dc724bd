package database

import (
	"fmt"
	"log"

	"github.com/sefazor/recipeai-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(databaseURL string) *gorm.DB {
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserCredits{},
		&models.Booking{},
		&models.Transaction{},
		&models.CreditPackage{},
	)
	if err != nil {
		return err
	}

	return SeedCreditPackages(db)
}

// SeedCreditPackages sabit paket tablosunu ekler (yoksa).
// Kredi adedi paket anahtarıdır; listede olmayan adetler satın alınamaz.
func SeedCreditPackages(db *gorm.DB) error {
	packages := []models.CreditPackage{
		{Name: "10 Credits", Credits: 10, Price: 9.99, IsActive: true},
		{Name: "25 Credits", Credits: 25, Price: 19.99, IsActive: true},
		{Name: "50 Credits", Credits: 50, Price: 34.99, IsActive: true},
		{Name: "100 Credits", Credits: 100, Price: 59.99, IsActive: true},
	}

	for i := range packages {
		packages[i].Description = fmt.Sprintf("%d recipe generation credits", packages[i].Credits)

		var count int64
		if err := db.Model(&models.CreditPackage{}).
			Where("credits = ?", packages[i].Credits).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&packages[i]).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
