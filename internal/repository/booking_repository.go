package repository

import (
	"github.com/sefazor/recipeai-backend/internal/models"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetUserBooking sahibiyle birlikte arar; başka kullanıcının kaydı
// sızmasın diye id tek başına kullanılmaz.
func (r *BookingRepository) GetUserBooking(userID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Where("id = ? AND user_id = ?", bookingID, userID).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) GetUserBookings(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) Update(booking *models.Booking) error {
	return r.db.Save(booking).Error
}
