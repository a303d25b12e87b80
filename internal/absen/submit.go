package absen

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"web-absensi/internal/apperror"
)

// Submitter mengirim absensi ke endpoint /karyawan/absen (form-encoded,
// bukan JSON seperti endpoint auth).
type Submitter struct {
	baseURL string
	http    *http.Client
}

func NewSubmitter(baseURL string) *Submitter {
	return &Submitter{baseURL: baseURL, http: &http.Client{}}
}

func NewSubmitterWithHTTPClient(baseURL string, httpClient *http.Client) *Submitter {
	return &Submitter{baseURL: baseURL, http: httpClient}
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Jenis   string `json:"jenis"`
}

// Submit mencatat absen untuk karyawan di cabang tersebut. Server yang
// menentukan jenis event (checkin/checkout); hasilnya dikembalikan supaya
// UI bisa menampilkan event apa yang baru tercatat.
func (s *Submitter) Submit(idKar, idCabang string) (string, error) {
	form := url.Values{}
	form.Set("id_kar", idKar)
	form.Set("id_cabang", idCabang)

	resp, err := s.http.Post(
		s.baseURL+"/karyawan/absen",
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", apperror.Wrap(apperror.Transport, "Network error!", err)
	}
	defer resp.Body.Close()

	var out submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperror.Wrap(apperror.Transport, "response server tidak valid", err)
	}
	if !out.Success {
		message := out.Message
		if message == "" {
			message = "Absen gagal"
		}
		return "", apperror.New(apperror.Protocol, message)
	}
	return out.Jenis, nil
}
