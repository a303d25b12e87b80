package session

import (
	"encoding/json"
	"time"

	"web-absensi/internal/model"
)

// Key storage yang dipakai bersama oleh semua komponen client.
// Session dianggap valid HANYA jika kelima key ada; sebagian saja = tidak ada
// session dan user harus login ulang.
const (
	KeySessionToken = "session_token"
	KeyUserData     = "user_data"
	KeyDeviceID     = "device_id"
	KeyLoginTime    = "login_time"
	KeyUsername     = "username"
)

type Session struct {
	Token     string
	User      model.UserProfile
	DeviceID  string
	LoginTime time.Time
	// Username adalah ID login, key untuk semua panggilan protokol
	// (validate-session, logout). JANGAN diganti dengan id_kar: id_kar
	// hanya untuk display, backend mengindeks session berdasarkan username.
	Username string
}

// Repository adalah akses ke session tersimpan; diinject ke protocol client
// supaya tidak ada akses storage global.
type Repository interface {
	Load() (*Session, error)
	Save(Session) error
	Clear() error
}

// backing adalah bagian dari storage yang dibutuhkan repository: baca per key,
// tulis dan hapus batch dalam satu kali simpan.
type backing interface {
	Get(key string) (string, bool)
	SetAll(pairs map[string]string) error
	DeleteAll(keys ...string) error
}

type storeRepository struct {
	store backing
}

func NewRepository(store backing) Repository {
	return &storeRepository{store: store}
}

// Load mengembalikan (nil, nil) jika session tidak lengkap.
func (r *storeRepository) Load() (*Session, error) {
	token, ok1 := r.store.Get(KeySessionToken)
	userData, ok2 := r.store.Get(KeyUserData)
	deviceID, ok3 := r.store.Get(KeyDeviceID)
	loginTime, ok4 := r.store.Get(KeyLoginTime)
	username, ok5 := r.store.Get(KeyUsername)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nil, nil
	}

	var user model.UserProfile
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(time.RFC3339, loginTime)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		User:      user,
		DeviceID:  deviceID,
		LoginTime: parsed,
		Username:  username,
	}, nil
}

// Save menulis kelima key sekaligus supaya session tidak pernah tersimpan
// setengah.
func (r *storeRepository) Save(s Session) error {
	userData, err := json.Marshal(s.User)
	if err != nil {
		return err
	}
	return r.store.SetAll(map[string]string{
		KeySessionToken: s.Token,
		KeyUserData:     string(userData),
		KeyDeviceID:     s.DeviceID,
		KeyLoginTime:    s.LoginTime.Format(time.RFC3339),
		KeyUsername:     s.Username,
	})
}

func (r *storeRepository) Clear() error {
	return r.store.DeleteAll(
		KeySessionToken,
		KeyUserData,
		KeyDeviceID,
		KeyLoginTime,
		KeyUsername,
	)
}
