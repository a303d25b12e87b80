package main

import (
	"encoding/json"
	"fmt"
	"log"

	"web-absensi/config"
	"web-absensi/internal/model"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	karyawans := []model.Karyawan{
		{IDKar: "K001", Nama: "Budi Santoso", Username: "budi", Email: "budi@example.com"},
		{IDKar: "K002", Nama: "Siti Rahayu", Username: "siti", Email: "siti@example.com"},
	}
	for _, k := range karyawans {
		if err := config.DB.Where("username = ?", k.Username).FirstOrCreate(&k).Error; err != nil {
			log.Println("Gagal seed karyawan:", err)
		}
	}

	cabangs := []model.Cabang{
		{IDCabang: "1", Nama: "Kantor Pusat", Lat: -6.200000, Long: 106.816666, Toleransi: 50},
		{IDCabang: "2", Nama: "Cabang Bandung", Lat: -6.914744, Long: 107.609810, Toleransi: 100},
	}
	for _, c := range cabangs {
		if err := config.DB.Where("id_cabang = ?", c.IDCabang).FirstOrCreate(&c).Error; err != nil {
			log.Println("Gagal seed cabang:", err)
		}
	}

	// Cetak payload QR tiap cabang; tinggal dijadikan QR code dan ditempel
	fmt.Println("\nPayload QR per cabang:")
	for _, c := range cabangs {
		payload, _ := json.Marshal(model.QRPayload{Data: []model.Cabang{c}})
		fmt.Printf("  %s: %s\n", c.Nama, payload)
	}

	fmt.Println("\nSeeding Selesai!")
}
