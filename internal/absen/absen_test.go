package absen

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"web-absensi/internal/apperror"
	"web-absensi/internal/geofence"
	"web-absensi/internal/model"
)

func TestParseQRValid(t *testing.T) {
	text := `{"data":[{"id_cabang":"1","nama":"Kantor Pusat","lat":-6.2,"long":106.816666,"toleransi":50}]}`
	cabang, err := ParseQR(text)
	if err != nil {
		t.Fatalf("ParseQR gagal: %v", err)
	}
	if cabang.IDCabang != "1" || cabang.Nama != "Kantor Pusat" || cabang.Toleransi != 50 {
		t.Fatalf("cabang tidak sesuai: %+v", cabang)
	}
}

func TestParseQRNumericID(t *testing.T) {
	// Producer QR kadang mengirim id_cabang sebagai angka
	text := `{"data":[{"id_cabang":7,"nama":"Cabang Tujuh","lat":1,"long":2,"toleransi":100}]}`
	cabang, err := ParseQR(text)
	if err != nil {
		t.Fatalf("ParseQR gagal: %v", err)
	}
	if cabang.IDCabang != "7" {
		t.Fatalf("id_cabang = %q, mau 7", cabang.IDCabang)
	}
}

func TestParseQRTakesFirstElement(t *testing.T) {
	text := `{"data":[{"id_cabang":"1","nama":"Pertama"},{"id_cabang":"2","nama":"Kedua"}]}`
	cabang, err := ParseQR(text)
	if err != nil {
		t.Fatalf("ParseQR gagal: %v", err)
	}
	if cabang.Nama != "Pertama" {
		t.Fatalf("harus ambil elemen pertama, dapat %q", cabang.Nama)
	}
}

func TestParseQRInvalid(t *testing.T) {
	cases := []string{
		"bukan json",
		`{"data":[]}`,
		`{}`,
		`{"lain":"bentuk"}`,
	}
	for _, text := range cases {
		_, err := ParseQR(text)
		if !apperror.IsDecode(err) {
			t.Errorf("ParseQR(%q) harus DecodeError, dapat %v", text, err)
		}
	}
}

type fixedProvider struct {
	pos geofence.Position
}

func (p fixedProvider) Current() (geofence.Position, error) { return p.pos, nil }

// Jarak 51m dengan toleransi 50m: submit tidak boleh terjadi.
func TestAbsenRejectedOutsideTolerance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("di luar toleransi tidak boleh ada panggilan backend")
	}))
	defer server.Close()

	// 51 meter ke utara dari titik cabang (1 derajat lat = ~111.195m)
	branchLat := -6.2
	userLat := branchLat + 51.0/111194.93

	flow := NewFlow(NewSubmitter(server.URL), fixedProvider{geofence.Position{Lat: userLat, Lng: 106.816666}})
	_, err := flow.HandleScan(`{"data":[{"id_cabang":"1","nama":"Kantor","lat":-6.2,"long":106.816666,"toleransi":50}]}`)
	if err != nil {
		t.Fatalf("HandleScan gagal: %v", err)
	}

	_, _, err = flow.Absen(model.UserProfile{IDKar: "K001"})
	var tooFar *TooFarError
	if !errors.As(err, &tooFar) {
		t.Fatalf("harus TooFarError, dapat %v", err)
	}
	if tooFar.Limit != 50 {
		t.Errorf("limit = %v, mau 50", tooFar.Limit)
	}
	if tooFar.Distance <= 50 || tooFar.Distance > 55 {
		t.Errorf("jarak hasil hitung tidak masuk akal: %v", tooFar.Distance)
	}
}

func TestAbsenSubmitsWithinTolerance(t *testing.T) {
	var gotIDKar, gotIDCabang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/karyawan/absen" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("content type = %s", ct)
		}
		r.ParseForm()
		gotIDKar = r.PostFormValue("id_kar")
		gotIDCabang = r.PostFormValue("id_cabang")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "jenis": model.JenisCheckin})
	}))
	defer server.Close()

	flow := NewFlow(NewSubmitter(server.URL), fixedProvider{geofence.Position{Lat: -6.2, Lng: 106.816666}})
	_, err := flow.HandleScan(`{"data":[{"id_cabang":"1","nama":"Kantor","lat":-6.2,"long":106.816666,"toleransi":50}]}`)
	if err != nil {
		t.Fatalf("HandleScan gagal: %v", err)
	}

	jenis, distance, err := flow.Absen(model.UserProfile{IDKar: "K001"})
	if err != nil {
		t.Fatalf("Absen gagal: %v", err)
	}
	if distance != 0 {
		t.Errorf("jarak = %v, mau 0", distance)
	}
	if jenis != model.JenisCheckin {
		t.Errorf("jenis = %q, mau %q", jenis, model.JenisCheckin)
	}
	if gotIDKar != "K001" || gotIDCabang != "1" {
		t.Errorf("form = (%q, %q), mau (K001, 1)", gotIDKar, gotIDCabang)
	}
}

// Jenis event adalah keputusan server; client hanya meneruskannya.
func TestAbsenReportsServerJenis(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "jenis": model.JenisCheckout})
	}))
	defer server.Close()

	flow := NewFlow(NewSubmitter(server.URL), fixedProvider{geofence.Position{Lat: -6.2, Lng: 106.816666}})
	flow.HandleScan(`{"data":[{"id_cabang":"1","nama":"Kantor","lat":-6.2,"long":106.816666,"toleransi":50}]}`)

	jenis, _, err := flow.Absen(model.UserProfile{IDKar: "K001"})
	if err != nil {
		t.Fatalf("Absen gagal: %v", err)
	}
	if jenis != model.JenisCheckout {
		t.Errorf("jenis = %q, mau %q", jenis, model.JenisCheckout)
	}
}

// Kegagalan submit mempertahankan cabang hasil scan supaya bisa retry tanpa
// scan ulang.
func TestAbsenFailureKeepsCabang(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Sudah absen hari ini"})
	}))
	defer server.Close()

	flow := NewFlow(NewSubmitter(server.URL), fixedProvider{geofence.Position{Lat: -6.2, Lng: 106.816666}})
	flow.HandleScan(`{"data":[{"id_cabang":"1","nama":"Kantor","lat":-6.2,"long":106.816666,"toleransi":50}]}`)

	_, _, err := flow.Absen(model.UserProfile{IDKar: "K001"})
	if !apperror.IsProtocol(err) {
		t.Fatalf("penolakan server harus ProtocolRejection, dapat %v", err)
	}
	if apperror.Message(err) != "Sudah absen hari ini" {
		t.Errorf("pesan server harus diteruskan, dapat %q", apperror.Message(err))
	}
	if flow.Cabang() == nil {
		t.Fatal("cabang harus dipertahankan untuk retry")
	}
}

func TestScanAgainDiscardsCabang(t *testing.T) {
	flow := NewFlow(NewSubmitter("http://unused"), fixedProvider{})
	flow.HandleScan(`{"data":[{"id_cabang":"1","nama":"Kantor","lat":0,"long":0,"toleransi":50}]}`)
	if flow.Cabang() == nil {
		t.Fatal("cabang harus terisi setelah scan")
	}

	flow.ScanAgain()
	if flow.Cabang() != nil {
		t.Fatal("scan ulang harus membuang cabang")
	}
}

func TestHandleScanInvalidKeepsState(t *testing.T) {
	flow := NewFlow(NewSubmitter("http://unused"), fixedProvider{})
	if _, err := flow.HandleScan("bukan json"); !apperror.IsDecode(err) {
		t.Fatalf("harus DecodeError, dapat %v", err)
	}
	if flow.Cabang() != nil {
		t.Fatal("scan gagal tidak boleh mengubah state")
	}
}
