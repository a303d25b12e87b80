package absen

import (
	"encoding/json"
	"strconv"

	"web-absensi/internal/apperror"
	"web-absensi/internal/model"
)

// qrCabang menerima id_cabang berupa string MAUPUN angka, karena producer QR
// tidak konsisten soal tipenya.
type qrCabang struct {
	IDCabang  any     `json:"id_cabang"`
	Nama      string  `json:"nama"`
	Lat       float64 `json:"lat"`
	Long      float64 `json:"long"`
	Toleransi float64 `json:"toleransi"`
}

type qrPayload struct {
	Data []qrCabang `json:"data"`
}

// ParseQR men-decode teks hasil scan menjadi cabang aktif (elemen pertama
// array data). JSON rusak atau data kosong = QR tidak valid; client tetap di
// mode scanning dan tidak ada panggilan backend.
func ParseQR(text string) (*model.Cabang, error) {
	var payload qrPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, apperror.Wrap(apperror.Decode, "QR Code tidak valid! Pastikan scan QR code yang benar.", err)
	}
	if len(payload.Data) == 0 {
		return nil, apperror.New(apperror.Decode, "QR Code tidak valid! Pastikan scan QR code yang benar.")
	}

	first := payload.Data[0]
	return &model.Cabang{
		IDCabang:  normalizeID(first.IDCabang),
		Nama:      first.Nama,
		Lat:       first.Lat,
		Long:      first.Long,
		Toleransi: first.Toleransi,
	}, nil
}

func normalizeID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}
