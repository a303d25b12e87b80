package repository

import (
	"time"

	"web-absensi/internal/model"

	"gorm.io/gorm"
)

type AbsenRepository interface {
	Create(absen model.Absen) error
	GetHistory(idKar string) ([]model.Absen, error)
	CountToday(idKar string) (int64, error)
}

type absenRepository struct {
	db *gorm.DB
}

func NewAbsenRepository(db *gorm.DB) AbsenRepository {
	return &absenRepository{db}
}

func (r *absenRepository) Create(absen model.Absen) error {
	return r.db.Create(&absen).Error
}

func (r *absenRepository) GetHistory(idKar string) ([]model.Absen, error) {
	var history []model.Absen
	err := r.db.Where("id_kar = ?", idKar).Order("created_at desc").Find(&history).Error
	return history, err
}

// CountToday dipakai menentukan apakah event berikutnya check-in atau
// check-out (ganjil = sudah check-in).
func (r *absenRepository) CountToday(idKar string) (int64, error) {
	var count int64
	today := time.Now().Format("2006-01-02")
	err := r.db.Model(&model.Absen{}).
		Where("id_kar = ? AND tanggal = ?", idKar, today).Count(&count).Error
	return count, err
}
