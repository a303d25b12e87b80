package device

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// Collect mengumpulkan sinyal hardware dari host. Sinyal yang tidak tersedia
// diisi nilai fallback, sama seperti browser yang tidak mengekspos API-nya.
func Collect() Signals {
	return Signals{
		CPUCount:       strconv.Itoa(runtime.NumCPU()),
		DeviceMemory:   probeMemory(),
		Screen:         probeScreen(),
		MaxTouchPoints: "0",
		Platform:       PlatformBucket(platformString()),
		Renderer:       probeRenderer(),
	}
}

func platformString() string {
	switch runtime.GOOS {
	case "android":
		return "Android"
	case "ios":
		return "iPhone"
	default:
		return runtime.GOOS
	}
}

func probeMemory() string {
	// /proc/meminfo hanya ada di Linux; platform lain pakai fallback
	if runtime.GOOS != "linux" {
		return "unknown"
	}
	out, err := exec.Command("cat", "/proc/meminfo").Output()
	if err != nil {
		return "unknown"
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "MemTotal:") {
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				kb, err := strconv.ParseInt(fields[1], 10, 64)
				if err == nil {
					// Bulatkan ke GB seperti navigator.deviceMemory
					return strconv.FormatInt((kb+1<<20-1)/(1<<20), 10)
				}
			}
		}
	}
	return "unknown"
}

func probeScreen() string {
	// Framebuffer ekspos resolusi sebagai "W,H"; host headless tidak
	// punya, fallback "unknown"
	data, err := os.ReadFile("/sys/class/graphics/fb0/virtual_size")
	if err != nil {
		return "unknown"
	}
	return parseScreenSize(string(data))
}

func parseScreenSize(raw string) string {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != 2 {
		return "unknown"
	}
	width, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	height, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return "unknown"
	}
	return FormatScreen(width, height)
}

// probeRenderer mencoba membaca identitas GPU dari host. Sentinel mengikuti
// state yang sama dengan probing WebGL: tidak ada context, context tanpa
// debug info, atau error saat probing.
func probeRenderer() string {
	switch runtime.GOOS {
	case "linux":
		out, err := exec.Command("lspci").Output()
		if err != nil {
			return "no-webgl"
		}
		for _, line := range strings.Split(string(out), "\n") {
			if strings.Contains(line, "VGA compatible controller") || strings.Contains(line, "3D controller") {
				parts := strings.SplitN(line, ": ", 2)
				if len(parts) == 2 {
					return "lspci|" + strings.TrimSpace(parts[1])
				}
			}
		}
		return "webgl-no-debug"
	case "darwin":
		out, err := exec.Command("system_profiler", "SPDisplaysDataType").Output()
		if err != nil {
			return "no-webgl"
		}
		for _, line := range strings.Split(string(out), "\n") {
			if strings.Contains(line, "Chipset Model:") {
				parts := strings.SplitN(line, ":", 2)
				if len(parts) == 2 {
					return "apple|" + strings.TrimSpace(parts[1])
				}
			}
		}
		return "webgl-no-debug"
	default:
		return "no-webgl"
	}
}
