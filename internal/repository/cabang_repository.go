package repository

import (
	"web-absensi/internal/model"

	"gorm.io/gorm"
)

type CabangRepository interface {
	Create(cabang model.Cabang) error
	GetByID(idCabang string) (*model.Cabang, error)
	GetAll() ([]model.Cabang, error)
}

type cabangRepository struct {
	db *gorm.DB
}

func NewCabangRepository(db *gorm.DB) CabangRepository {
	return &cabangRepository{db}
}

func (r *cabangRepository) Create(cabang model.Cabang) error {
	return r.db.Create(&cabang).Error
}

func (r *cabangRepository) GetByID(idCabang string) (*model.Cabang, error) {
	var cabang model.Cabang
	err := r.db.Where("id_cabang = ?", idCabang).First(&cabang).Error
	if err != nil {
		return nil, err
	}
	return &cabang, nil
}

func (r *cabangRepository) GetAll() ([]model.Cabang, error) {
	var list []model.Cabang
	err := r.db.Find(&list).Error
	return list, err
}
