package model

import (
	"time"

	"gorm.io/gorm"
)

// Jenis event absen. Bergantian per karyawan per hari: event pertama
// checkin, berikutnya checkout, dan seterusnya.
const (
	JenisCheckin  = "checkin"
	JenisCheckout = "checkout"
)

type Absen struct {
	gorm.Model
	IDKar    string    `json:"id_kar" gorm:"column:id_kar;index;not null"`
	IDCabang string    `json:"id_cabang" gorm:"column:id_cabang;not null"`
	Jenis    string    `json:"jenis" gorm:"column:jenis;not null"` // checkin / checkout
	Waktu    time.Time `json:"waktu"`
	Tanggal  string    `json:"tanggal"`
}
