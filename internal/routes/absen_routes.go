package routes

import (
	"web-absensi/internal/handler"
	"web-absensi/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAbsenRoutes(app *fiber.App, db *gorm.DB) {
	absenRepo := repository.NewAbsenRepository(db)
	cabangRepo := repository.NewCabangRepository(db)
	hdl := handler.NewAbsenHandler(absenRepo, cabangRepo)

	karyawan := app.Group("/karyawan")
	karyawan.Post("/absen", hdl.Submit)
	karyawan.Get("/absen/riwayat", hdl.History)
}
