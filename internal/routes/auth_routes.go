package routes

import (
	"web-absensi/config"
	"web-absensi/internal/handler"
	"web-absensi/internal/mailer"
	"web-absensi/internal/repository"
	"web-absensi/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	karyawanRepo := repository.NewKaryawanRepository(db)
	lockRepo := repository.NewDeviceLockRepository(db)
	otpRepo := repository.NewOtpRepository(db)

	// Mode pengiriman OTP: echo (di response) atau email (out-of-band)
	mode := usecase.DeliveryMode(config.GetEnv("OTP_DELIVERY", "echo"))
	otpUsecase := usecase.NewOtpUsecase(otpRepo, mode, mailer.NewSMTP())

	hdl := handler.NewAuthHandler(karyawanRepo, lockRepo, otpUsecase)

	auth := app.Group("/auth")
	auth.Post("/check-device", hdl.CheckDevice)
	auth.Post("/request-otp", hdl.RequestOTP)
	auth.Post("/verify-otp", hdl.VerifyOTP)
	auth.Post("/validate-session", hdl.ValidateSession)
	auth.Post("/logout", hdl.Logout)
}
