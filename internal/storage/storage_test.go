package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetGetDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore gagal: %v", err)
	}

	if _, ok := store.Get("kunci"); ok {
		t.Fatal("key belum pernah disimpan")
	}
	if err := store.Set("kunci", "nilai"); err != nil {
		t.Fatalf("Set gagal: %v", err)
	}
	if v, ok := store.Get("kunci"); !ok || v != "nilai" {
		t.Fatalf("Get = (%q, %v), mau (nilai, true)", v, ok)
	}
	if err := store.Delete("kunci"); err != nil {
		t.Fatalf("Delete gagal: %v", err)
	}
	if _, ok := store.Get("kunci"); ok {
		t.Fatal("key seharusnya sudah terhapus")
	}
}

func TestPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore gagal: %v", err)
	}
	if err := store.Set("device_id", "device_xyz"); err != nil {
		t.Fatalf("Set gagal: %v", err)
	}

	// Instance baru di dir yang sama = reload aplikasi
	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore kedua gagal: %v", err)
	}
	if v, ok := reopened.Get("device_id"); !ok || v != "device_xyz" {
		t.Fatalf("nilai harus bertahan antar instance, dapat (%q, %v)", v, ok)
	}
}

func TestCorruptFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "storage.json"), []byte("{bukan json"), 0600); err != nil {
		t.Fatalf("gagal menulis file korup: %v", err)
	}

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore gagal: %v", err)
	}
	if _, ok := store.Get("apapun"); ok {
		t.Fatal("file korup harus dianggap storage kosong")
	}
	if err := store.Set("kunci", "nilai"); err != nil {
		t.Fatalf("Set setelah file korup gagal: %v", err)
	}
}

func TestSetAllDeleteAll(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore gagal: %v", err)
	}

	if err := store.SetAll(map[string]string{"a": "1", "b": "2", "c": "3"}); err != nil {
		t.Fatalf("SetAll gagal: %v", err)
	}
	if v, _ := store.Get("b"); v != "2" {
		t.Fatalf("b = %q, mau 2", v)
	}

	if err := store.DeleteAll("a", "c"); err != nil {
		t.Fatalf("DeleteAll gagal: %v", err)
	}
	if _, ok := store.Get("a"); ok {
		t.Fatal("a seharusnya terhapus")
	}
	if _, ok := store.Get("b"); !ok {
		t.Fatal("b seharusnya masih ada")
	}
}
