package usecase

import (
	"testing"
	"time"

	"web-absensi/internal/model"
)

type fakeOtpRepo struct {
	codes []model.OtpCode
}

func (r *fakeOtpRepo) Create(otp model.OtpCode) error {
	otp.ID = uint(len(r.codes) + 1)
	otp.CreatedAt = time.Now()
	r.codes = append(r.codes, otp)
	return nil
}

func (r *fakeOtpRepo) GetLatest(username string) (*model.OtpCode, error) {
	for i := len(r.codes) - 1; i >= 0; i-- {
		if r.codes[i].Username == username && !r.codes[i].Used {
			return &r.codes[i], nil
		}
	}
	return nil, ErrOtpWrong
}

func (r *fakeOtpRepo) MarkUsed(otp *model.OtpCode) error {
	otp.Used = true
	return nil
}

func testKaryawan() *model.Karyawan {
	return &model.Karyawan{IDKar: "K001", Nama: "Budi Santoso", Username: "budi"}
}

func TestIssueAndVerify(t *testing.T) {
	repo := &fakeOtpRepo{}
	u := NewOtpUsecase(repo, DeliveryEcho, nil)

	otp, err := u.Issue(testKaryawan())
	if err != nil {
		t.Fatalf("Issue gagal: %v", err)
	}
	if len(otp) != 6 {
		t.Fatalf("OTP harus 6 digit, dapat %q", otp)
	}

	if err := u.Verify("budi", otp); err != nil {
		t.Fatalf("Verify gagal: %v", err)
	}
}

func TestVerifyWrongCode(t *testing.T) {
	repo := &fakeOtpRepo{}
	u := NewOtpUsecase(repo, DeliveryEcho, nil)

	if _, err := u.Issue(testKaryawan()); err != nil {
		t.Fatalf("Issue gagal: %v", err)
	}
	if err := u.Verify("budi", "000000"); err != ErrOtpWrong {
		t.Fatalf("kode salah harus ErrOtpWrong, dapat %v", err)
	}
}

func TestVerifyExpiredCode(t *testing.T) {
	repo := &fakeOtpRepo{}
	u := NewOtpUsecase(repo, DeliveryEcho, nil)

	otp, err := u.Issue(testKaryawan())
	if err != nil {
		t.Fatalf("Issue gagal: %v", err)
	}
	// Mundurkan expiry, seolah 5 menit sudah lewat
	repo.codes[0].ExpiresAt = time.Now().Add(-time.Minute)

	if err := u.Verify("budi", otp); err != ErrOtpExpired {
		t.Fatalf("kode kadaluwarsa harus ErrOtpExpired, dapat %v", err)
	}
}

func TestVerifyIsSingleUse(t *testing.T) {
	repo := &fakeOtpRepo{}
	u := NewOtpUsecase(repo, DeliveryEcho, nil)

	otp, err := u.Issue(testKaryawan())
	if err != nil {
		t.Fatalf("Issue gagal: %v", err)
	}
	if err := u.Verify("budi", otp); err != nil {
		t.Fatalf("Verify pertama gagal: %v", err)
	}
	if err := u.Verify("budi", otp); err == nil {
		t.Fatal("OTP sekali pakai: verifikasi kedua harus gagal")
	}
}

func TestIssueEmailModeRequiresAddress(t *testing.T) {
	repo := &fakeOtpRepo{}
	u := NewOtpUsecase(repo, DeliveryEmail, nil)

	karyawan := testKaryawan() // tanpa email
	if _, err := u.Issue(karyawan); err == nil {
		t.Fatal("mode email tanpa alamat email harus gagal")
	}
}
