package repository

import (
	"errors"

	"github.com/sefazor/recipeai-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreditRepository struct {
	db *gorm.DB
}

func NewCreditRepository(db *gorm.DB) *CreditRepository {
	return &CreditRepository{db: db}
}

func (r *CreditRepository) GetByUserID(userID uint) (*models.UserCredits, error) {
	var credits models.UserCredits
	err := r.db.Where("user_id = ?", userID).First(&credits).Error
	if err != nil {
		return nil, err
	}
	return &credits, nil
}

// GetOrCreate kullanıcının bakiye kaydını döndürür, yoksa 0 ile açar.
// Eşzamanlı ilk erişimde unique index + ON CONFLICT DO NOTHING tek
// kayıt garantisi verir; yarışı kaybeden yeniden okur.
func (r *CreditRepository) GetOrCreate(userID uint, email string) (*models.UserCredits, error) {
	credits, err := r.GetByUserID(userID)
	if err == nil {
		return credits, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := models.UserCredits{UserID: userID, Credits: 0, Email: email}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&fresh).Error; err != nil {
		return nil, err
	}

	return r.GetByUserID(userID)
}

// Debit koşullu azaltmadır: tek UPDATE hem bakiyeyi kontrol eder hem
// düşer, iki ayrı round-trip ile yarış penceresi açılmaz. Yetersiz
// bakiyede hiçbir satır etkilenmez.
func (r *CreditRepository) Debit(userID uint, amount int) (int, error) {
	result := r.db.Model(&models.UserCredits{}).
		Where("user_id = ? AND credits >= ?", userID, amount).
		UpdateColumn("credits", gorm.Expr("credits - ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, models.ErrInsufficientCredit
	}

	credits, err := r.GetByUserID(userID)
	if err != nil {
		return 0, err
	}
	return credits.Credits, nil
}

// Credit bakiyeye ekler; kayıt yoksa verilen miktarla açar.
func (r *CreditRepository) Credit(userID uint, amount int, email string) (int, error) {
	record := models.UserCredits{UserID: userID, Credits: amount, Email: email}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"credits": gorm.Expr("credits + ?", amount),
		}),
	}).Create(&record).Error
	if err != nil {
		return 0, err
	}

	credits, err := r.GetByUserID(userID)
	if err != nil {
		return 0, err
	}
	return credits.Credits, nil
}
