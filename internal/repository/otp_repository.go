package repository

import (
	"web-absensi/internal/model"

	"gorm.io/gorm"
)

type OtpRepository interface {
	Create(otp model.OtpCode) error
	GetLatest(username string) (*model.OtpCode, error)
	MarkUsed(otp *model.OtpCode) error
}

type otpRepository struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) OtpRepository {
	return &otpRepository{db}
}

func (r *otpRepository) Create(otp model.OtpCode) error {
	return r.db.Create(&otp).Error
}

// GetLatest mengambil OTP terbaru yang belum dipakai untuk username.
func (r *otpRepository) GetLatest(username string) (*model.OtpCode, error) {
	var otp model.OtpCode
	err := r.db.Where("username = ? AND used = ?", username, false).
		Order("created_at desc").First(&otp).Error
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) MarkUsed(otp *model.OtpCode) error {
	otp.Used = true
	return r.db.Save(otp).Error
}
