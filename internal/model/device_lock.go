package model

import "gorm.io/gorm"

// DeviceLock mengikat satu device ke satu user aktif (1 device = 1 user).
type DeviceLock struct {
	gorm.Model
	DeviceID   string `json:"device_id" gorm:"unique;not null"`
	KaryawanID uint   `json:"karyawan_id"`

	Karyawan Karyawan `gorm:"foreignKey:KaryawanID"`
}
