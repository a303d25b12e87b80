package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get environment variable as boolean with fallback
func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

// App menampung seluruh konfigurasi sisi client (web absensi).
type App struct {
	APIURL              string
	AppName             string
	AppVersion          string
	EnableQRScanner     bool
	EnableLocationCheck bool
	AdminWhatsApp       string
	DataDir             string
}

// Load membaca konfigurasi client dari environment variables dengan nilai default.
func Load() App {
	return App{
		APIURL:              GetEnv("API_URL", "http://localhost:8086"),
		AppName:             GetEnv("APP_NAME", "Web Absensi"),
		AppVersion:          GetEnv("APP_VERSION", "1.0.0"),
		EnableQRScanner:     GetEnvAsBool("ENABLE_QR_SCANNER", false),
		EnableLocationCheck: GetEnvAsBool("ENABLE_LOCATION_CHECK", false),
		AdminWhatsApp:       GetEnv("ADMIN_WHATSAPP", "0895055654708"),
		DataDir:             GetEnv("ABSENSI_DATA_DIR", defaultDataDir()),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".absensi"
	}
	return filepath.Join(home, ".absensi")
}
