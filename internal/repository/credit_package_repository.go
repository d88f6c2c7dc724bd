package repository

import (
	"github.com/sefazor/recipeai-backend/internal/models"
	"gorm.io/gorm"
)

type CreditPackageRepository struct {
	db *gorm.DB
}

func NewCreditPackageRepository(db *gorm.DB) *CreditPackageRepository {
	return &CreditPackageRepository{db: db}
}

// GetByCredits paketi kredi adediyle arar; paket tablosunda kredi
// adedi anahtardır.
func (r *CreditPackageRepository) GetByCredits(credits int) (*models.CreditPackage, error) {
	var creditPackage models.CreditPackage
	err := r.db.Where("credits = ? AND is_active = ?", credits, true).First(&creditPackage).Error
	if err != nil {
		return nil, err
	}
	return &creditPackage, nil
}

func (r *CreditPackageRepository) GetAll() ([]models.CreditPackage, error) {
	var packages []models.CreditPackage
	err := r.db.Where("is_active = ?", true).Order("credits ASC").Find(&packages).Error
	return packages, err
}
