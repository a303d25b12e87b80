package apperror

import (
	"errors"
	"fmt"
)

// Jenis error mengikuti taksonomi flow absensi: input lokal, penolakan server,
// kegagalan jaringan, kegagalan resource (kamera/lokasi), dan QR tidak valid.
type Kind int

const (
	Validation Kind = iota // input ditolak sebelum ada panggilan jaringan
	Protocol               // backend menjawab success:false
	Transport              // jaringan / parse response gagal
	Resource               // kamera atau lokasi tidak bisa diakses
	Decode                 // payload QR bukan JSON yang diharapkan
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsKind melaporkan apakah err adalah *Error dengan kind tertentu.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

func IsValidation(err error) bool { return IsKind(err, Validation) }
func IsProtocol(err error) bool   { return IsKind(err, Protocol) }
func IsTransport(err error) bool  { return IsKind(err, Transport) }
func IsResource(err error) bool   { return IsKind(err, Resource) }
func IsDecode(err error) bool     { return IsKind(err, Decode) }

// Message mengembalikan pesan user-facing dari error, apapun jenisnya.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
