package absen

import (
	"fmt"

	"web-absensi/internal/geofence"
	"web-absensi/internal/location"
	"web-absensi/internal/model"
)

// TooFarError berarti posisi device di luar radius toleransi cabang.
// Penolakan terjadi murni di sisi client, tanpa panggilan backend.
type TooFarError struct {
	Distance float64
	Limit    float64
}

func (e *TooFarError) Error() string {
	return fmt.Sprintf("Anda terlalu jauh dari cabang! Jarak: %.0fm, Maks: %.0fm", e.Distance, e.Limit)
}

// Flow memegang hasil scan dan menjalankan urutan absen: decode QR, ambil
// posisi, gate geofence, submit.
type Flow struct {
	submitter *Submitter
	locations location.Provider

	cabang *model.Cabang
}

func NewFlow(submitter *Submitter, locations location.Provider) *Flow {
	return &Flow{submitter: submitter, locations: locations}
}

// Cabang mengembalikan cabang hasil scan terakhir, nil jika belum ada.
func (f *Flow) Cabang() *model.Cabang { return f.cabang }

// HandleScan men-decode hasil scan dan menyimpannya sebagai cabang aktif.
// Decode gagal tidak mengubah state; user diminta scan ulang.
func (f *Flow) HandleScan(decodedText string) (*model.Cabang, error) {
	cabang, err := ParseQR(decodedText)
	if err != nil {
		return nil, err
	}
	f.cabang = cabang
	return cabang, nil
}

// Absen menjalankan check-in/check-out untuk karyawan pada cabang hasil scan.
// Di luar toleransi = tolak lokal dengan jarak dan batas; submit TIDAK
// dipanggil. Kegagalan submit mempertahankan cabang supaya bisa retry tanpa
// scan ulang. Jenis event (checkin/checkout) ditentukan server dan
// diteruskan ke caller.
func (f *Flow) Absen(user model.UserProfile) (string, float64, error) {
	if f.cabang == nil {
		return "", 0, fmt.Errorf("belum ada QR cabang yang terbaca")
	}

	pos, err := f.locations.Current()
	if err != nil {
		return "", 0, err
	}

	distance := geofence.DistanceMeters(pos, geofence.Position{Lat: f.cabang.Lat, Lng: f.cabang.Long})
	if !geofence.IsWithinTolerance(distance, f.cabang.Toleransi) {
		return "", distance, &TooFarError{Distance: distance, Limit: f.cabang.Toleransi}
	}

	jenis, err := f.submitter.Submit(user.IDKar, f.cabang.IDCabang)
	if err != nil {
		return "", distance, err
	}
	return jenis, distance, nil
}

// ScanAgain membuang hasil scan saat ini; kamera dinyalakan lagi oleh caller.
func (f *Flow) ScanAgain() {
	f.cabang = nil
}
