package device

import "web-absensi/internal/storage"

const storageKey = "device_id"

// EnsureDeviceID mengembalikan device ID tersimpan apa adanya, atau membentuk
// ID baru dari sinyal host lalu menyimpannya. ID yang sudah tersimpan tidak
// pernah diganti diam-diam.
func EnsureDeviceID(store storage.Store) (string, error) {
	if id, ok := store.Get(storageKey); ok && id != "" {
		return id, nil
	}
	id := Fingerprint(Collect())
	if err := store.Set(storageKey, id); err != nil {
		return "", err
	}
	return id, nil
}

// ClearDeviceID menghapus device ID tersimpan (dipakai saat logout; ID akan
// terbentuk kembali secara deterministik pada login berikutnya).
func ClearDeviceID(store storage.Store) error {
	return store.Delete(storageKey)
}
