package models

import "time"

// BookingStatus kapalı bir durum kümesidir; serbest metin statü yazılmaz.
type BookingStatus string

const (
	BookingStatusConfirmed   BookingStatus = "confirmed"
	BookingStatusRescheduled BookingStatus = "rescheduled"
	BookingStatusCanceled    BookingStatus = "canceled" // terminal
)

type Booking struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID uint   `json:"user_id" gorm:"index;not null"`
	Name   string `json:"name" gorm:"not null"`
	Email  string `json:"email" gorm:"not null"`
	Topic  string `json:"topic" gorm:"not null"`
	Notes  string `json:"notes"`

	// Date "2025-01-10", Time "09:00 AM" biçimindedir; StartTime
	// sağlayıcının onayladığı ISO 8601 başlangıç anıdır.
	Date     string `json:"date" gorm:"not null"`
	Time     string `json:"time" gorm:"not null"`
	Timezone string `json:"timezone"`

	// MeetingID bir kez yazılır; reschedule/cancel hep aynı toplantıyı hedefler.
	MeetingID  string        `json:"meeting_id" gorm:"not null"`
	MeetingURL string        `json:"meeting_url" gorm:"not null"`
	StartTime  string        `json:"start_time"`
	Status     BookingStatus `json:"status" gorm:"not null;default:'confirmed'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBookingRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Topic    string `json:"topic" validate:"required"`
	Notes    string `json:"notes"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required,clock12"`
	Timezone string `json:"timezone"`
}

type RescheduleBookingRequest struct {
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required,clock12"`
	Timezone string `json:"timezone"`
}
