package models

import "time"

// UserCredits kullanıcı başına tek bakiye kaydıdır. user_id üzerindeki
// uniqueIndex, eşzamanlı ilk erişimde çift kayıt oluşmasını engeller.
type UserCredits struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Credits   int       `json:"credits" gorm:"not null;default:0"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreditBalanceResponse struct {
	Credits int `json:"credits"`
}
