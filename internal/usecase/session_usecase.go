package usecase

import (
	"time"

	"web-absensi/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func jwtSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "rahasia-negara-sangat-kuat"))
}

// IssueSessionToken membuat session token JWT yang terikat ke username +
// device. Session permanen sampai logout manual, jadi exp dibuat panjang.
func IssueSessionToken(username, deviceID string) (string, error) {
	claims := jwt.MapClaims{
		"username":  username,
		"device_id": deviceID,
		"jti":       uuid.NewString(),
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(365 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}
