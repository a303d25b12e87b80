package authclient

import (
	"fmt"
	"net/url"
)

// WhatsAppURL membentuk deep-link wa.me ke admin untuk reset device lock,
// satu-satunya jalur pemulihan dari state locked.
func WhatsAppURL(phone, deviceID, lockedName string) string {
	if lockedName == "" {
		lockedName = "Unknown"
	}
	message := fmt.Sprintf(
		"Halo, saya butuh bantuan reset device lock untuk web absensi.\n\nDevice ID: %s\nUser yang terkunci: %s",
		deviceID, lockedName,
	)
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}
