package authclient

import (
	"bytes"
	"encoding/json"
	"net/http"

	"web-absensi/internal/apperror"
	"web-absensi/internal/model"
)

// Client membungkus kontrak HTTP backend untuk protokol autentikasi.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, http: httpClient}
}

// DeviceStatus adalah hasil check-device: available, atau locked beserta user
// yang mengunci.
type DeviceStatus struct {
	Available bool
	LockedBy  *model.UserProfile
}

// OTPGrant adalah hasil request-otp. OTP hanya terisi jika server berjalan
// dalam mode echo (lihat konfigurasi OTP_DELIVERY di server).
type OTPGrant struct {
	User model.UserProfile
	OTP  string
}

// VerifyResult adalah hasil verify-otp yang sukses.
type VerifyResult struct {
	SessionToken string
	User         model.UserProfile
}

type apiResponse struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message"`
	User         *model.UserProfile `json:"user"`
	OTP          string             `json:"otp"`
	SessionToken string             `json:"session_token"`
	LockedBy     *model.UserProfile `json:"locked_by"`
}

func (c *Client) postJSON(path string, body any) (*apiResponse, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, apperror.Wrap(apperror.Transport, "gagal menyusun request", err)
	}

	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		return nil, apperror.Wrap(apperror.Transport, "Network error! Periksa koneksi internet Anda.", err)
	}
	defer resp.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperror.Wrap(apperror.Transport, "response server tidak valid", err)
	}
	return &out, nil
}

// CheckDevice menanyakan apakah device masih bebas dipakai login.
func (c *Client) CheckDevice(deviceID string) (*DeviceStatus, error) {
	resp, err := c.postJSON("/auth/check-device", map[string]string{"device_id": deviceID})
	if err != nil {
		return nil, err
	}
	if resp.Success {
		return &DeviceStatus{Available: true}, nil
	}
	return &DeviceStatus{Available: false, LockedBy: resp.LockedBy}, nil
}

// RequestOTP meminta OTP untuk username. Pesan penolakan server diteruskan
// apa adanya.
func (c *Client) RequestOTP(username string) (*OTPGrant, error) {
	resp, err := c.postJSON("/auth/request-otp", map[string]string{"username": username})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, protocolError(resp.Message, "Gagal meminta OTP")
	}
	grant := &OTPGrant{OTP: resp.OTP}
	if resp.User != nil {
		grant.User = *resp.User
	}
	return grant, nil
}

// VerifyOTP menukar username+otp+device menjadi session.
func (c *Client) VerifyOTP(username, otp, deviceID string) (*VerifyResult, error) {
	resp, err := c.postJSON("/auth/verify-otp", map[string]string{
		"username":  username,
		"otp":       otp,
		"device_id": deviceID,
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, protocolError(resp.Message, "Verifikasi OTP gagal")
	}
	result := &VerifyResult{SessionToken: resp.SessionToken}
	if resp.User != nil {
		result.User = *resp.User
	}
	return result, nil
}

// ValidateSession memvalidasi session tersimpan dan mengembalikan profile
// terbaru dari server.
func (c *Client) ValidateSession(username, deviceID string) (*model.UserProfile, error) {
	resp, err := c.postJSON("/auth/validate-session", map[string]string{
		"username":  username,
		"device_id": deviceID,
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, protocolError(resp.Message, "Session tidak valid")
	}
	return resp.User, nil
}

// Logout melepas device lock di server. Error berarti session TIDAK boleh
// dihapus di sisi client.
func (c *Client) Logout(username, deviceID string) error {
	resp, err := c.postJSON("/auth/logout", map[string]string{
		"username":  username,
		"device_id": deviceID,
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		return protocolError(resp.Message, "Logout gagal")
	}
	return nil
}

func protocolError(message, fallback string) error {
	if message == "" {
		message = fallback
	}
	return apperror.New(apperror.Protocol, message)
}
