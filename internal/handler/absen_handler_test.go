package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"web-absensi/internal/model"

	"github.com/gofiber/fiber/v2"
)

func decodeJSON(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("baca body gagal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("response bukan JSON: %v (%s)", err, data)
	}
	return out
}

type fakeAbsenRepo struct {
	records []model.Absen
}

func (r *fakeAbsenRepo) Create(absen model.Absen) error {
	r.records = append(r.records, absen)
	return nil
}

func (r *fakeAbsenRepo) GetHistory(idKar string) ([]model.Absen, error) {
	var history []model.Absen
	for _, a := range r.records {
		if a.IDKar == idKar {
			history = append(history, a)
		}
	}
	return history, nil
}

func (r *fakeAbsenRepo) CountToday(idKar string) (int64, error) {
	var count int64
	for _, a := range r.records {
		if a.IDKar == idKar {
			count++
		}
	}
	return count, nil
}

type fakeCabangRepo struct {
	cabangs map[string]*model.Cabang
}

func (r *fakeCabangRepo) Create(cabang model.Cabang) error { return nil }

func (r *fakeCabangRepo) GetByID(idCabang string) (*model.Cabang, error) {
	if c, ok := r.cabangs[idCabang]; ok {
		return c, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeCabangRepo) GetAll() ([]model.Cabang, error) { return nil, nil }

func newAbsenApp(absens *fakeAbsenRepo, cabangs *fakeCabangRepo) *fiber.App {
	hdl := NewAbsenHandler(absens, cabangs)
	// Immutable agar string dari FormValue aman disimpan oleh fake repo
	// setelah handler selesai (lihat REVIEW_FINDINGS.md F5).
	app := fiber.New(fiber.Config{Immutable: true})
	app.Post("/karyawan/absen", hdl.Submit)
	app.Get("/karyawan/absen/riwayat", hdl.History)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) map[string]any {
	t.Helper()
	req, err := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test gagal: %v", err)
	}
	defer resp.Body.Close()
	return decodeJSON(t, resp.Body)
}

func TestSubmitRecordsAbsen(t *testing.T) {
	absens := &fakeAbsenRepo{}
	cabangs := &fakeCabangRepo{cabangs: map[string]*model.Cabang{
		"1": {IDCabang: "1", Nama: "Kantor Pusat", Toleransi: 50},
	}}
	app := newAbsenApp(absens, cabangs)

	out := postForm(t, app, "/karyawan/absen", url.Values{
		"id_kar":    {"K001"},
		"id_cabang": {"1"},
	})
	if out["success"] != true {
		t.Fatalf("submit gagal: %v", out)
	}
	if len(absens.records) != 1 || absens.records[0].IDKar != "K001" || absens.records[0].IDCabang != "1" {
		t.Fatalf("record tidak sesuai: %+v", absens.records)
	}
	if absens.records[0].Jenis != model.JenisCheckin {
		t.Errorf("event pertama harus checkin, dapat %q", absens.records[0].Jenis)
	}
}

// Jenis bergantian per karyawan per hari: checkin, checkout, checkin, ...
// Karyawan lain tidak mempengaruhi paritas.
func TestSubmitAlternatesJenis(t *testing.T) {
	absens := &fakeAbsenRepo{}
	cabangs := &fakeCabangRepo{cabangs: map[string]*model.Cabang{
		"1": {IDCabang: "1", Nama: "Kantor Pusat", Toleransi: 50},
	}}
	app := newAbsenApp(absens, cabangs)

	submit := func(idKar string) string {
		out := postForm(t, app, "/karyawan/absen", url.Values{
			"id_kar":    {idKar},
			"id_cabang": {"1"},
		})
		if out["success"] != true {
			t.Fatalf("submit gagal: %v", out)
		}
		jenis, _ := out["jenis"].(string)
		return jenis
	}

	if jenis := submit("K001"); jenis != model.JenisCheckin {
		t.Errorf("event pertama = %q, mau checkin", jenis)
	}
	if jenis := submit("K002"); jenis != model.JenisCheckin {
		t.Errorf("karyawan lain harus mulai dari checkin, dapat %q", jenis)
	}
	if jenis := submit("K001"); jenis != model.JenisCheckout {
		t.Errorf("event kedua = %q, mau checkout", jenis)
	}
	if jenis := submit("K001"); jenis != model.JenisCheckin {
		t.Errorf("event ketiga = %q, mau checkin", jenis)
	}

	// Record yang tersimpan ikut membawa jenis
	if absens.records[0].Jenis != model.JenisCheckin || absens.records[2].Jenis != model.JenisCheckout {
		t.Errorf("jenis record tidak sesuai: %+v", absens.records)
	}
}

func TestSubmitUnknownCabang(t *testing.T) {
	app := newAbsenApp(&fakeAbsenRepo{}, &fakeCabangRepo{cabangs: map[string]*model.Cabang{}})

	out := postForm(t, app, "/karyawan/absen", url.Values{
		"id_kar":    {"K001"},
		"id_cabang": {"99"},
	})
	if out["success"] != false {
		t.Fatalf("cabang tak dikenal harus ditolak: %v", out)
	}
	if out["message"] != "Cabang tidak ditemukan" {
		t.Errorf("pesan = %v", out["message"])
	}
}

func TestSubmitMissingFields(t *testing.T) {
	app := newAbsenApp(&fakeAbsenRepo{}, &fakeCabangRepo{cabangs: map[string]*model.Cabang{}})

	out := postForm(t, app, "/karyawan/absen", url.Values{"id_kar": {"K001"}})
	if out["success"] != false {
		t.Fatalf("field kurang harus ditolak: %v", out)
	}
}
