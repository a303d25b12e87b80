package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store adalah key-value storage durable milik client, padanan localStorage
// di browser.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore menyimpan seluruh key dalam satu file JSON di data dir user.
type FileStore struct {
	path string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("gagal membuat data dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, "storage.json")}, nil
}

func (s *FileStore) load() map[string]string {
	data := map[string]string{}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return data
	}
	// File korup diperlakukan sebagai storage kosong
	_ = json.Unmarshal(raw, &data)
	return data
}

// save menulis ke file temporary lalu rename, agar isi storage tidak pernah
// setengah tertulis.
func (s *FileStore) save(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Get(key string) (string, bool) {
	value, ok := s.load()[key]
	return value, ok
}

func (s *FileStore) Set(key, value string) error {
	data := s.load()
	data[key] = value
	return s.save(data)
}

func (s *FileStore) Delete(key string) error {
	data := s.load()
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return s.save(data)
}

// SetAll menulis beberapa key sekaligus dalam satu kali simpan (atomik).
func (s *FileStore) SetAll(pairs map[string]string) error {
	data := s.load()
	for k, v := range pairs {
		data[k] = v
	}
	return s.save(data)
}

// DeleteAll menghapus beberapa key sekaligus dalam satu kali simpan.
func (s *FileStore) DeleteAll(keys ...string) error {
	data := s.load()
	for _, k := range keys {
		delete(data, k)
	}
	return s.save(data)
}
