package authclient

import (
	"strings"
	"time"

	"web-absensi/internal/apperror"
	"web-absensi/internal/model"
	"web-absensi/internal/session"
)

// State mesin login.
type State string

const (
	StateCheckingDevice State = "checking_device"
	StateLocked         State = "locked"
	StateUsernameEntry  State = "username_entry"
	StateOTPEntry       State = "otp_entry"
	StateAuthenticated  State = "authenticated"
)

// LoginFlow menjalankan mesin state login tiga langkah:
// cek device -> minta OTP -> verifikasi OTP.
type LoginFlow struct {
	client   *Client
	sessions session.Repository

	state    State
	deviceID string
	username string
	lockedBy *model.UserProfile
}

func NewLoginFlow(client *Client, sessions session.Repository, deviceID string) *LoginFlow {
	return &LoginFlow{
		client:   client,
		sessions: sessions,
		state:    StateCheckingDevice,
		deviceID: deviceID,
	}
}

func (f *LoginFlow) State() State                 { return f.state }
func (f *LoginFlow) DeviceID() string             { return f.deviceID }
func (f *LoginFlow) Username() string             { return f.username }
func (f *LoginFlow) LockedBy() *model.UserProfile { return f.lockedBy }

// CheckDevice adalah entry action flow. Kegagalan jaringan DISENGAJA
// fail-open ke available: device yang hard-block karena error transient akan
// mengunci login selamanya, jadi block-nya dibuat lunak.
func (f *LoginFlow) CheckDevice() State {
	status, err := f.client.CheckDevice(f.deviceID)
	if err != nil || status.Available {
		f.state = StateUsernameEntry
		f.lockedBy = nil
		return f.state
	}
	f.state = StateLocked
	f.lockedBy = status.LockedBy
	return f.state
}

// RequestOTP memvalidasi username lalu meminta OTP ke server. Saat sukses,
// flow pindah ke entry OTP; saat gagal, tetap di entry username.
func (f *LoginFlow) RequestOTP(username string) (*OTPGrant, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return nil, apperror.New(apperror.Validation, "ID User harus diisi")
	}

	grant, err := f.client.RequestOTP(trimmed)
	if err != nil {
		return nil, err
	}
	f.username = trimmed
	f.state = StateOTPEntry
	return grant, nil
}

// NormalizeOTP membuang karakter non-digit dan memotong ke 6 digit,
// meniru input OTP yang difilter saat diketik.
func NormalizeOTP(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == 6 {
			break
		}
	}
	return b.String()
}

// VerifyOTP memverifikasi OTP dan, saat sukses, menyimpan session lengkap
// secara atomik lalu pindah ke authenticated. OTP TIDAK direset saat gagal;
// user boleh mencoba ulang atau memanggil Reset.
func (f *LoginFlow) VerifyOTP(otp string) (*session.Session, error) {
	normalized := NormalizeOTP(otp)
	if len(normalized) != 6 {
		return nil, apperror.New(apperror.Validation, "OTP harus 6 digit")
	}

	result, err := f.client.VerifyOTP(f.username, normalized, f.deviceID)
	if err != nil {
		return nil, err
	}

	s := session.Session{
		Token:     result.SessionToken,
		User:      result.User,
		DeviceID:  f.deviceID,
		LoginTime: time.Now(),
		Username:  f.username,
	}
	if err := f.sessions.Save(s); err != nil {
		return nil, err
	}
	f.state = StateAuthenticated
	return &s, nil
}

// Reset kembali ke entry username, membuang OTP dan error tapi
// mempertahankan device ID.
func (f *LoginFlow) Reset() {
	f.state = StateUsernameEntry
	f.username = ""
}

// Validate memvalidasi session tersimpan ke server. Pada kegagalan APAPUN
// (termasuk jaringan) profile cache lokal yang dipakai; availability lebih
// penting daripada freshness di sini.
func Validate(client *Client, s *session.Session) model.UserProfile {
	profile, err := client.ValidateSession(s.Username, s.DeviceID)
	if err != nil || profile == nil {
		return s.User
	}
	return *profile
}

// Logout melepas device lock di server. Session lokal HANYA dihapus saat
// server menjawab sukses; gagal server maupun gagal jaringan mempertahankan
// session, supaya device tidak tampak bebas padahal masih terkunci di server.
func Logout(client *Client, sessions session.Repository, s *session.Session) error {
	if err := client.Logout(s.Username, s.DeviceID); err != nil {
		return err
	}
	return sessions.Clear()
}
