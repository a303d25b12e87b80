package usecase

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"web-absensi/internal/mailer"
	"web-absensi/internal/model"
	"web-absensi/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// OTP berlaku 5 menit sejak diterbitkan
const otpTTL = 5 * time.Minute

var (
	ErrOtpExpired = errors.New("OTP sudah kadaluwarsa, silakan minta OTP baru")
	ErrOtpWrong   = errors.New("OTP salah")
)

// DeliveryMode menentukan jalur pengiriman OTP: echo (OTP ikut di response,
// mode development/demo) atau email (out-of-band via SMTP).
type DeliveryMode string

const (
	DeliveryEcho  DeliveryMode = "echo"
	DeliveryEmail DeliveryMode = "email"
)

type OtpUsecase struct {
	otpRepo repository.OtpRepository
	mode    DeliveryMode
	mail    mailer.Mailer
}

func NewOtpUsecase(otpRepo repository.OtpRepository, mode DeliveryMode, mail mailer.Mailer) *OtpUsecase {
	return &OtpUsecase{otpRepo: otpRepo, mode: mode, mail: mail}
}

func (u *OtpUsecase) Mode() DeliveryMode { return u.mode }

// Issue menerbitkan OTP 6 digit untuk karyawan: generate, simpan hash-nya,
// kirim sesuai mode. Return value otp hanya terisi pada mode echo.
func (u *OtpUsecase) Issue(karyawan *model.Karyawan) (string, error) {
	otp, err := generateOTP()
	if err != nil {
		return "", err
	}

	// Kode disimpan sebagai hash bcrypt, bukan plaintext
	hash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	record := model.OtpCode{
		Username:  karyawan.Username,
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := u.otpRepo.Create(record); err != nil {
		return "", err
	}

	if u.mode == DeliveryEmail {
		if karyawan.Email == "" {
			return "", errors.New("karyawan tidak punya alamat email terdaftar")
		}
		if err := u.mail.SendOTP(karyawan.Email, karyawan.Nama, otp); err != nil {
			return "", fmt.Errorf("gagal mengirim email OTP: %w", err)
		}
		return "", nil
	}

	return otp, nil
}

// Verify mencocokkan OTP dengan hash terbaru milik username, menolak yang
// kadaluwarsa, dan menandai sekali pakai saat cocok.
func (u *OtpUsecase) Verify(username, otp string) error {
	record, err := u.otpRepo.GetLatest(username)
	if err != nil {
		return ErrOtpWrong
	}
	if time.Now().After(record.ExpiresAt) {
		return ErrOtpExpired
	}
	if bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(otp)) != nil {
		return ErrOtpWrong
	}
	return u.otpRepo.MarkUsed(record)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
