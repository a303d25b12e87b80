package device

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Signals adalah tuple sinyal hardware yang dipakai membentuk device ID.
// Urutan field TIDAK boleh diubah: hash dihitung dari join berurutan.
type Signals struct {
	CPUCount       string // jumlah logical CPU, atau "unknown"
	DeviceMemory   string // memori device (GB), atau "unknown"
	Screen         string // "WxH"
	MaxTouchPoints string // default "0"
	Platform       string // iphone / ipad / android / other
	Renderer       string // "vendor|renderer", atau sentinel no-webgl dll
}

func (s Signals) join() string {
	return s.CPUCount + "|" + s.DeviceMemory + "|" + s.Screen + "|" +
		s.MaxTouchPoints + "|" + s.Platform + "|" + s.Renderer
}

// Fingerprint menghitung device ID dari tuple sinyal: rolling hash 32-bit
// (h = h*31 + c, overflow signed 32-bit), nilai absolut, base-36.
// Deterministik: sinyal sama selalu menghasilkan ID sama.
func Fingerprint(s Signals) string {
	return "device_" + simpleHash(s.join())
}

func simpleHash(str string) string {
	// Iterasi per code unit UTF-16, bukan per byte, supaya renderer string
	// non-ASCII menghasilkan hash yang sama dengan charCodeAt
	var hash int32
	for _, c := range utf16.Encode([]rune(str)) {
		hash = (hash << 5) - hash + int32(c)
	}
	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return strconv.FormatInt(abs, 36)
}

// PlatformBucket memetakan string platform mentah ke salah satu dari
// {iphone, ipad, android, other} dengan substring match.
func PlatformBucket(platform string) string {
	switch {
	case strings.Contains(platform, "iPhone"):
		return "iphone"
	case strings.Contains(platform, "iPad"):
		return "ipad"
	case strings.Contains(platform, "Android"):
		return "android"
	default:
		return "other"
	}
}

// FormatScreen membentuk komponen layar "WxH".
func FormatScreen(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}
