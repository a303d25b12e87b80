package mailer

import (
	"fmt"

	"web-absensi/config"

	"gopkg.in/gomail.v2"
)

// Mailer mengirim OTP lewat jalur out-of-band (email).
type Mailer interface {
	SendOTP(to, nama, otp string) error
}

type smtpMailer struct {
	host   string
	port   int
	user   string
	pass   string
	sender string
}

// NewSMTP membaca konfigurasi SMTP dari environment.
func NewSMTP() Mailer {
	return &smtpMailer{
		host:   config.GetEnv("SMTP_HOST", "localhost"),
		port:   config.GetEnvAsInt("SMTP_PORT", 587),
		user:   config.GetEnv("SMTP_USER", ""),
		pass:   config.GetEnv("SMTP_PASSWORD", ""),
		sender: config.GetEnv("SMTP_SENDER", "no-reply@web-absensi.local"),
	}
}

func (m *smtpMailer) SendOTP(to, nama, otp string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Kode OTP Login Web Absensi")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Halo %s,\n\nKode OTP login Anda: %s\n\nKode berlaku 5 menit. Jangan bagikan ke siapapun.",
		nama, otp,
	))

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return dialer.DialAndSend(msg)
}
