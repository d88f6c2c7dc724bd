package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/sefazor/recipeai-backend/internal/models"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// newTestDB her test için izole bir in-memory veritabanı açar.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	// :memory: bağlantı başına ayrı veritabanıdır, tek bağlantıda kal.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.User{},
		&models.UserCredits{},
		&models.Booking{},
		&models.Transaction{},
		&models.CreditPackage{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
