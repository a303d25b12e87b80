package model

import (
	"time"

	"gorm.io/gorm"
)

// OtpCode menyimpan OTP per percobaan login. Kode disimpan sebagai hash bcrypt.
type OtpCode struct {
	gorm.Model
	Username  string    `json:"username" gorm:"index;not null"`
	CodeHash  string    `json:"-" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used" gorm:"default:false"`
}
