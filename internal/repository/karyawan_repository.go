package repository

import (
	"web-absensi/internal/model"

	"gorm.io/gorm"
)

type KaryawanRepository interface {
	Create(karyawan model.Karyawan) error
	GetByUsername(username string) (*model.Karyawan, error)
	GetByID(id uint) (*model.Karyawan, error)
}

type karyawanRepository struct {
	db *gorm.DB
}

func NewKaryawanRepository(db *gorm.DB) KaryawanRepository {
	return &karyawanRepository{db}
}

func (r *karyawanRepository) Create(karyawan model.Karyawan) error {
	return r.db.Create(&karyawan).Error
}

func (r *karyawanRepository) GetByUsername(username string) (*model.Karyawan, error) {
	var karyawan model.Karyawan
	err := r.db.Where("username = ? AND is_active = ?", username, true).First(&karyawan).Error
	if err != nil {
		return nil, err
	}
	return &karyawan, nil
}

func (r *karyawanRepository) GetByID(id uint) (*model.Karyawan, error) {
	var karyawan model.Karyawan
	err := r.db.First(&karyawan, id).Error
	if err != nil {
		return nil, err
	}
	return &karyawan, nil
}
