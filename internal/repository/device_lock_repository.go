package repository

import (
	"web-absensi/internal/model"

	"gorm.io/gorm"
)

type DeviceLockRepository interface {
	GetByDeviceID(deviceID string) (*model.DeviceLock, error)
	Create(lock model.DeviceLock) error
	Delete(deviceID string, karyawanID uint) error
}

type deviceLockRepository struct {
	db *gorm.DB
}

func NewDeviceLockRepository(db *gorm.DB) DeviceLockRepository {
	return &deviceLockRepository{db}
}

func (r *deviceLockRepository) GetByDeviceID(deviceID string) (*model.DeviceLock, error) {
	var lock model.DeviceLock
	// Preload karyawan agar response locked_by bisa menampilkan siapa penguncinya
	err := r.db.Preload("Karyawan").Where("device_id = ?", deviceID).First(&lock).Error
	if err != nil {
		return nil, err
	}
	return &lock, nil
}

func (r *deviceLockRepository) Create(lock model.DeviceLock) error {
	return r.db.Create(&lock).Error
}

func (r *deviceLockRepository) Delete(deviceID string, karyawanID uint) error {
	return r.db.Unscoped().
		Where("device_id = ? AND karyawan_id = ?", deviceID, karyawanID).
		Delete(&model.DeviceLock{}).Error
}
