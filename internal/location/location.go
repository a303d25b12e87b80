package location

import (
	"time"

	"web-absensi/internal/apperror"
	"web-absensi/internal/geofence"
)

// Options meniru opsi geolocation browser: akurasi tinggi, timeout 10 detik,
// posisi boleh diambil dari cache maksimal 60 detik.
type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaximumAge:   60 * time.Second,
	}
}

// Provider adalah sumber posisi device saat ini. Implementasi nyata ada di
// boundary (browser/GPS); client hanya bergantung pada interface ini.
type Provider interface {
	Current() (geofence.Position, error)
}

// StaticProvider mengembalikan koordinat tetap, dipakai CLI yang menerima
// posisi dari flag atau environment.
type StaticProvider struct {
	Position geofence.Position
	Set      bool
}

func (p *StaticProvider) Current() (geofence.Position, error) {
	if !p.Set {
		return geofence.Position{}, apperror.New(apperror.Resource, "Gagal mendapatkan lokasi: koordinat belum diset")
	}
	return p.Position, nil
}

// CachedProvider membungkus provider lain dan memakai ulang posisi terakhir
// selama belum melewati MaximumAge.
type CachedProvider struct {
	Inner Provider
	Opts  Options

	last    geofence.Position
	lastAt  time.Time
	hasLast bool
	now     func() time.Time
}

func NewCachedProvider(inner Provider, opts Options) *CachedProvider {
	return &CachedProvider{Inner: inner, Opts: opts, now: time.Now}
}

func (p *CachedProvider) Current() (geofence.Position, error) {
	if p.hasLast && p.now().Sub(p.lastAt) <= p.Opts.MaximumAge {
		return p.last, nil
	}
	pos, err := p.Inner.Current()
	if err != nil {
		return geofence.Position{}, err
	}
	p.last = pos
	p.lastAt = p.now()
	p.hasLast = true
	return pos, nil
}
