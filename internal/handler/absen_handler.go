package handler

import (
	"time"

	"web-absensi/internal/model"
	"web-absensi/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AbsenHandler struct {
	absenRepo  repository.AbsenRepository
	cabangRepo repository.CabangRepository
}

func NewAbsenHandler(absenRepo repository.AbsenRepository, cabangRepo repository.CabangRepository) *AbsenHandler {
	return &AbsenHandler{absenRepo: absenRepo, cabangRepo: cabangRepo}
}

// Submit mencatat absen. Body form-encoded {id_kar, id_cabang}; validasi
// jarak terjadi di client (kontrak tidak membawa posisi, lihat DESIGN.md).
func (h *AbsenHandler) Submit(c *fiber.Ctx) error {
	idKar := c.FormValue("id_kar")
	idCabang := c.FormValue("id_cabang")
	if idKar == "" || idCabang == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "id_kar dan id_cabang wajib diisi"})
	}

	if _, err := h.cabangRepo.GetByID(idCabang); err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Cabang tidak ditemukan"})
	}

	// Jenis bergantian dari jumlah absen hari ini: genap = checkin,
	// ganjil = checkout
	count, err := h.absenRepo.CountToday(idKar)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyimpan absensi"})
	}
	jenis := model.JenisCheckin
	if count%2 == 1 {
		jenis = model.JenisCheckout
	}

	now := time.Now()
	absen := model.Absen{
		IDKar:    idKar,
		IDCabang: idCabang,
		Jenis:    jenis,
		Waktu:    now,
		Tanggal:  now.Format("2006-01-02"),
	}
	if err := h.absenRepo.Create(absen); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyimpan absensi"})
	}

	return c.JSON(fiber.Map{"success": true, "jenis": jenis})
}

// History mengembalikan riwayat absen seorang karyawan.
func (h *AbsenHandler) History(c *fiber.Ctx) error {
	idKar := c.Query("id_kar")
	if idKar == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "id_kar wajib diisi"})
	}

	history, err := h.absenRepo.GetHistory(idKar)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil data riwayat"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    history,
	})
}
