package model

import "gorm.io/gorm"

type Karyawan struct {
	gorm.Model
	IDKar    string `json:"id_kar" gorm:"column:id_kar;unique;not null"`
	Nama     string `json:"nama"`
	Username string `json:"username" gorm:"unique;not null"` // ID login, BUKAN id_kar
	Email    string `json:"email"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// UserProfile adalah bentuk user yang dikirim ke client: hanya id_kar + nama.
type UserProfile struct {
	IDKar string `json:"id_kar"`
	Nama  string `json:"nama"`
}

func (k *Karyawan) Profile() UserProfile {
	return UserProfile{IDKar: k.IDKar, Nama: k.Nama}
}
