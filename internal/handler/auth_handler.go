package handler

import (
	"strings"

	"web-absensi/internal/model"
	"web-absensi/internal/repository"
	"web-absensi/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	karyawanRepo repository.KaryawanRepository
	lockRepo     repository.DeviceLockRepository
	otpUsecase   *usecase.OtpUsecase
}

func NewAuthHandler(karyawanRepo repository.KaryawanRepository, lockRepo repository.DeviceLockRepository, otpUsecase *usecase.OtpUsecase) *AuthHandler {
	return &AuthHandler{karyawanRepo: karyawanRepo, lockRepo: lockRepo, otpUsecase: otpUsecase}
}

type deviceRequest struct {
	DeviceID string `json:"device_id"`
}

type usernameRequest struct {
	Username string `json:"username"`
}

type verifyRequest struct {
	Username string `json:"username"`
	Otp      string `json:"otp"`
	DeviceID string `json:"device_id"`
}

type sessionRequest struct {
	Username string `json:"username"`
	DeviceID string `json:"device_id"`
}

// CheckDevice melaporkan apakah device masih bebas. Device terkunci
// menyertakan profil user penguncinya agar bisa ditampilkan di client.
func (h *AuthHandler) CheckDevice(c *fiber.Ctx) error {
	var req deviceRequest
	if err := c.BodyParser(&req); err != nil || req.DeviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "device_id wajib diisi"})
	}

	lock, err := h.lockRepo.GetByDeviceID(req.DeviceID)
	if err != nil || lock == nil {
		// Tidak ada lock = device bebas
		return c.JSON(fiber.Map{"success": true})
	}

	return c.JSON(fiber.Map{
		"success":   false,
		"locked_by": lock.Karyawan.Profile(),
	})
}

// RequestOTP menerbitkan OTP untuk username. Pada mode echo, OTP ikut di
// response (perilaku deployment asli, untuk dibacakan IT admin); pada mode
// email, OTP hanya lewat jalur out-of-band.
func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var req usernameRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Username) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "username wajib diisi"})
	}

	karyawan, err := h.karyawanRepo.GetByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "User tidak ditemukan"})
	}

	otp, err := h.otpUsecase.Issue(karyawan)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	resp := fiber.Map{
		"success": true,
		"user":    karyawan.Profile(),
	}
	if h.otpUsecase.Mode() == usecase.DeliveryEcho {
		resp["otp"] = otp
	}
	return c.JSON(resp)
}

// VerifyOTP menukar OTP valid menjadi session token dan mengunci device ke
// user tersebut.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Otp == "" || req.DeviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "username, otp, dan device_id wajib diisi"})
	}

	karyawan, err := h.karyawanRepo.GetByUsername(req.Username)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "User tidak ditemukan"})
	}

	// Tolak kalau device sudah terkunci user lain (lock check sebelum sesi baru)
	if lock, err := h.lockRepo.GetByDeviceID(req.DeviceID); err == nil && lock != nil {
		if lock.KaryawanID != karyawan.ID {
			return c.JSON(fiber.Map{"success": false, "message": "Device sudah terkunci oleh user lain"})
		}
	}

	if err := h.otpUsecase.Verify(req.Username, req.Otp); err != nil {
		return c.JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	token, err := usecase.IssueSessionToken(req.Username, req.DeviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal membuat session"})
	}

	if lock, err := h.lockRepo.GetByDeviceID(req.DeviceID); err != nil || lock == nil {
		if err := h.lockRepo.Create(model.DeviceLock{DeviceID: req.DeviceID, KaryawanID: karyawan.ID}); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengunci device"})
		}
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"session_token": token,
		"user":          karyawan.Profile(),
	})
}

// ValidateSession memastikan lock device masih milik username tersebut, lalu
// mengembalikan profile terbaru (server jadi source of truth untuk display).
func (h *AuthHandler) ValidateSession(c *fiber.Ctx) error {
	var req sessionRequest
	if err := c.BodyParser(&req); err != nil || req.Username == "" || req.DeviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "username dan device_id wajib diisi"})
	}

	karyawan, err := h.karyawanRepo.GetByUsername(req.Username)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "User tidak ditemukan"})
	}

	lock, err := h.lockRepo.GetByDeviceID(req.DeviceID)
	if err != nil || lock == nil || lock.KaryawanID != karyawan.ID {
		return c.JSON(fiber.Map{"success": false, "message": "Session tidak valid untuk device ini"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    karyawan.Profile(),
	})
}

// Logout melepas device lock. Hanya success:true yang boleh membuat client
// menghapus session lokalnya.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req sessionRequest
	if err := c.BodyParser(&req); err != nil || req.Username == "" || req.DeviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "username dan device_id wajib diisi"})
	}

	karyawan, err := h.karyawanRepo.GetByUsername(req.Username)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "User tidak ditemukan"})
	}

	lock, err := h.lockRepo.GetByDeviceID(req.DeviceID)
	if err != nil || lock == nil || lock.KaryawanID != karyawan.ID {
		return c.JSON(fiber.Map{"success": false, "message": "Device tidak terkunci oleh user ini"})
	}

	if err := h.lockRepo.Delete(req.DeviceID, karyawan.ID); err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Gagal melepas device lock"})
	}

	return c.JSON(fiber.Map{"success": true})
}
