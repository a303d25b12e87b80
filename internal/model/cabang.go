package model

// Cabang adalah lokasi kerja dengan radius toleransi absensi.
// Struct ini juga menjadi bentuk payload QR: {"data":[{...cabang}]}.
type Cabang struct {
	IDCabang  string  `json:"id_cabang" gorm:"column:id_cabang;primaryKey"`
	Nama      string  `json:"nama"`
	Lat       float64 `json:"lat"`
	Long      float64 `json:"long"`
	Toleransi float64 `json:"toleransi"` // meter
}

// QRPayload adalah isi QR code yang ditempel di tiap cabang.
type QRPayload struct {
	Data []Cabang `json:"data"`
}
