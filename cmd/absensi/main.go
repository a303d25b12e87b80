package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"web-absensi/config"
	"web-absensi/internal/absen"
	"web-absensi/internal/apperror"
	"web-absensi/internal/authclient"
	"web-absensi/internal/device"
	"web-absensi/internal/geofence"
	"web-absensi/internal/location"
	"web-absensi/internal/model"
	"web-absensi/internal/scanner"
	"web-absensi/internal/session"
	"web-absensi/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	// .env opsional untuk CLI
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()
	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		fmt.Println("Gagal menyiapkan storage:", err)
		os.Exit(1)
	}
	sessions := session.NewRepository(store)
	client := authclient.New(cfg.APIURL)

	switch os.Args[1] {
	case "device":
		runDevice(store)
	case "login":
		runLogin(cfg, store, sessions, client)
	case "status":
		runStatus(client, sessions, os.Args[2:])
	case "absen":
		runAbsen(cfg, sessions, os.Args[2:])
	case "logout":
		runLogout(client, sessions)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Pemakaian: absensi <perintah>")
	fmt.Println("  device   tampilkan device ID perangkat ini")
	fmt.Println("  login    login dengan username + OTP")
	fmt.Println("  status   tampilkan session & jam (flag: -watch)")
	fmt.Println("  absen    scan QR cabang lalu check-in/out")
	fmt.Println("           (flag: -qr <file>, -lat, -lng)")
	fmt.Println("  logout   logout dan lepas device lock")
}

func runDevice(store storage.Store) {
	id, err := device.EnsureDeviceID(store)
	if err != nil {
		fmt.Println("Gagal membentuk device ID:", err)
		os.Exit(1)
	}
	fmt.Println("Device ID:", id)
}

func runLogin(cfg config.App, store storage.Store, sessions session.Repository, client *authclient.Client) {
	if s, err := sessions.Load(); err == nil && s != nil {
		fmt.Printf("Sudah login sebagai %s (%s). Logout dulu untuk ganti user.\n", s.User.Nama, s.User.IDKar)
		return
	}

	deviceID, err := device.EnsureDeviceID(store)
	if err != nil {
		fmt.Println("Gagal membentuk device ID:", err)
		os.Exit(1)
	}
	fmt.Printf("%s v%s\n", cfg.AppName, cfg.AppVersion)
	fmt.Printf("Device Ready - %s...\n\n", deviceID[:min(8, len(deviceID))])

	flow := authclient.NewLoginFlow(client, sessions, deviceID)

	fmt.Println("Memeriksa status perangkat...")
	if flow.CheckDevice() == authclient.StateLocked {
		fmt.Println("\nPerangkat Terkunci - device sudah digunakan user lain.")
		lockedName := ""
		if locked := flow.LockedBy(); locked != nil {
			fmt.Printf("User yang mengunci: %s (ID: %s)\n", locked.Nama, locked.IDKar)
			lockedName = locked.Nama
		}
		fmt.Println("User tersebut harus logout dulu, atau hubungi admin:")
		fmt.Println("  " + authclient.WhatsAppURL(cfg.AdminWhatsApp, deviceID, lockedName))
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("ID User: ")
		username, _ := reader.ReadString('\n')

		grant, err := flow.RequestOTP(strings.TrimSpace(username))
		if err != nil {
			fmt.Println(apperror.Message(err))
			continue
		}
		fmt.Printf("OTP terkirim untuk %s (ID: %s). Berlaku 5 menit.\n", grant.User.Nama, grant.User.IDKar)
		if grant.OTP != "" {
			// Mode echo: server menyertakan OTP di response untuk IT admin
			fmt.Println("OTP UNTUK IT ADMIN:", grant.OTP)
		}
		break
	}

	for {
		fmt.Print("Kode OTP (6 digit, ketik 'ulang' untuk ganti user): ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "ulang" {
			flow.Reset()
			runLogin(cfg, store, sessions, client)
			return
		}

		s, err := flow.VerifyOTP(input)
		if err != nil {
			fmt.Println(apperror.Message(err))
			continue
		}
		fmt.Printf("\nLogin berhasil! Selamat datang, %s (ID: %s)\n", s.User.Nama, s.User.IDKar)
		return
	}
}

func runStatus(client *authclient.Client, sessions session.Repository, args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	watch := fs.Bool("watch", false, "tampilkan jam berjalan")
	fs.Parse(args)

	s, err := sessions.Load()
	if err != nil || s == nil {
		fmt.Println("Belum login. Jalankan: absensi login")
		os.Exit(1)
	}

	// Profile dari server kalau bisa, cache lokal kalau tidak
	profile := authclient.Validate(client, s)
	fmt.Printf("User   : %s (ID: %s)\n", profile.Nama, profile.IDKar)
	fmt.Printf("Login  : %s\n", s.LoginTime.Format("Monday, 02 January 2006 15:04:05"))
	fmt.Printf("Device : %s\n", s.DeviceID)

	if !*watch {
		fmt.Printf("Waktu  : %s\n", time.Now().Format("15:04:05"))
		return
	}

	// Jam berjalan tiap detik; ticker dihentikan saat Ctrl-C
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case now := <-ticker.C:
			fmt.Printf("\r%s", now.Format("Monday, 02 January 2006 15:04:05"))
		case <-interrupt:
			fmt.Println()
			return
		}
	}
}

func runAbsen(cfg config.App, sessions session.Repository, args []string) {
	fs := flag.NewFlagSet("absen", flag.ExitOnError)
	qrFile := fs.String("qr", "", "file berisi payload QR (default: stdin)")
	lat := fs.Float64("lat", 0, "latitude posisi saat ini")
	lng := fs.Float64("lng", 0, "longitude posisi saat ini")
	fs.Parse(args)

	s, err := sessions.Load()
	if err != nil || s == nil {
		fmt.Println("Belum login. Jalankan: absensi login")
		os.Exit(1)
	}

	var qr scanner.Scanner
	if *qrFile != "" {
		qr, err = scanner.NewFileScanner(*qrFile)
		if err != nil {
			fmt.Println(apperror.Message(err))
			os.Exit(1)
		}
	} else {
		fmt.Println("Tempel payload QR lalu Enter:")
		qr = scanner.NewReaderScanner(os.Stdin)
	}
	if err := qr.Start(); err != nil {
		fmt.Println(apperror.Message(err))
		os.Exit(1)
	}
	defer qr.Stop()

	decoded, err := qr.Scan()
	if err != nil {
		fmt.Println(apperror.Message(err))
		os.Exit(1)
	}

	var latSet, lngSet bool
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			latSet = true
		case "lng":
			lngSet = true
		}
	})
	provider := &location.StaticProvider{
		Position: geofence.Position{Lat: *lat, Lng: *lng},
		Set:      latSet && lngSet,
	}
	flow := absen.NewFlow(absen.NewSubmitter(cfg.APIURL), location.NewCachedProvider(provider, location.DefaultOptions()))

	cabang, err := flow.HandleScan(decoded)
	if err != nil {
		fmt.Println(apperror.Message(err))
		os.Exit(1)
	}
	fmt.Printf("QR Code Terbaca - Cabang: %s (ID: %s)\n", cabang.Nama, cabang.IDCabang)
	fmt.Printf("Koordinat: %v, %v | Toleransi: %.0fm\n", cabang.Lat, cabang.Long, cabang.Toleransi)

	jenis, distance, err := flow.Absen(s.User)
	if err != nil {
		var tooFar *absen.TooFarError
		if errors.As(err, &tooFar) {
			fmt.Println(tooFar.Error())
		} else {
			fmt.Println("Absen gagal:", apperror.Message(err))
		}
		os.Exit(1)
	}
	switch jenis {
	case model.JenisCheckout:
		fmt.Printf("Check-out tercatat! Jarak ke cabang: %.0fm\n", distance)
	default:
		fmt.Printf("Check-in tercatat! Jarak ke cabang: %.0fm\n", distance)
	}
}

func runLogout(client *authclient.Client, sessions session.Repository) {
	s, err := sessions.Load()
	if err != nil || s == nil {
		fmt.Println("Tidak ada session aktif.")
		return
	}

	if err := authclient.Logout(client, sessions, s); err != nil {
		// Session dipertahankan; device masih terkunci di server
		fmt.Println("Logout gagal:", apperror.Message(err))
		os.Exit(1)
	}
	fmt.Println("Logout berhasil. Device lock sudah dilepas.")
}
