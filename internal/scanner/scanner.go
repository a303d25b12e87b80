package scanner

import (
	"bufio"
	"io"
	"os"
	"strings"

	"web-absensi/internal/apperror"
)

// Config scanning mengikuti parameter pembacaan QR kontinyu: 10 frame per
// detik dengan jendela scan logis 250x250.
type Config struct {
	FPS       int
	BoxWidth  int
	BoxHeight int
}

func DefaultConfig() Config {
	return Config{FPS: 10, BoxWidth: 250, BoxHeight: 250}
}

// Camera adalah satu kamera hasil enumerasi device.
type Camera struct {
	ID    string
	Label string
}

// PickCamera memilih kamera belakang (label mengandung "back"/"rear",
// case-insensitive) dan fallback ke kamera pertama.
func PickCamera(cameras []Camera) (Camera, bool) {
	if len(cameras) == 0 {
		return Camera{}, false
	}
	for _, cam := range cameras {
		label := strings.ToLower(cam.Label)
		if strings.Contains(label, "back") || strings.Contains(label, "rear") {
			return cam, true
		}
	}
	return cameras[0], true
}

// Scanner adalah boundary ke hardware kamera + decoder QR. Decode error
// selama scanning diabaikan oleh implementasi (mayoritas frame memang tidak
// berisi QR); hanya decode sukses yang dikembalikan dari Scan.
type Scanner interface {
	// Start menyalakan kamera. Memanggil Start saat sudah berjalan harus
	// stop dulu dengan bersih (idempoten).
	Start() error
	// Scan memblokir sampai satu QR terbaca, lalu mengembalikan teksnya.
	Scan() (string, error)
	// Stop melepas kamera. Wajib dipanggil sebelum pindah halaman atau
	// restart, kalau tidak handle kamera menggantung.
	Stop() error
}

// ReaderScanner membaca payload QR sebagai satu baris teks dari io.Reader,
// implementasi Scanner untuk CLI (payload dari file atau stdin). Reader
// milik caller tidak pernah ditutup; file yang dibuka lewat NewFileScanner
// dimiliki scanner: ditutup saat Stop dan dibuka ulang dari awal saat Start.
type ReaderScanner struct {
	reader  io.Reader
	path    string
	scanner *bufio.Scanner
	running bool
}

func NewReaderScanner(r io.Reader) *ReaderScanner {
	return &ReaderScanner{reader: r}
}

// NewFileScanner membaca payload QR dari file. File dibuka saat Start,
// bukan di sini, supaya restart membaca ulang dari awal file.
func NewFileScanner(path string) (*ReaderScanner, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperror.Wrap(apperror.Resource, "gagal membuka file QR", err)
	}
	return &ReaderScanner{path: path}, nil
}

func (s *ReaderScanner) Start() error {
	if s.running {
		if err := s.Stop(); err != nil {
			return err
		}
	}
	if s.path != "" {
		f, err := os.Open(s.path)
		if err != nil {
			return apperror.Wrap(apperror.Resource, "gagal membuka file QR", err)
		}
		s.reader = f
	}
	s.scanner = bufio.NewScanner(s.reader)
	s.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.running = true
	return nil
}

func (s *ReaderScanner) Scan() (string, error) {
	if !s.running {
		return "", apperror.New(apperror.Resource, "scanner belum dinyalakan")
	}
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := s.scanner.Err(); err != nil {
		return "", apperror.Wrap(apperror.Resource, "gagal membaca payload QR", err)
	}
	return "", apperror.New(apperror.Resource, "tidak ada payload QR terbaca")
}

func (s *ReaderScanner) Stop() error {
	s.running = false
	if s.path == "" {
		return nil
	}
	if closer, ok := s.reader.(io.Closer); ok {
		s.reader = nil
		return closer.Close()
	}
	return nil
}
