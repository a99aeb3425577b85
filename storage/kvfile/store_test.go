package kvfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmnolasco/pasedelista/core"
)

func TestStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if _, err = s.Get("users"); err != core.ErrKeyNotFound {
		t.Errorf("Get() on a missing key error = %v, want ErrKeyNotFound", err)
	}

	if err = s.Set("users", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, err := s.Get("users")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(data) != `[{"id":1}]` {
		t.Errorf("Get() = %s, want %s", data, `[{"id":1}]`)
	}

	// overwrite
	if err = s.Set("users", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if data, _ = s.Get("users"); string(data) != `[]` {
		t.Errorf("Get() after overwrite = %s, want []", data)
	}

	if err = s.Delete("users"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err = s.Get("users"); err != core.ErrKeyNotFound {
		t.Errorf("Get() after Delete() error = %v, want ErrKeyNotFound", err)
	}

	// deleting a missing key is not an error
	if err = s.Delete("users"); err != nil {
		t.Errorf("Delete() on a missing key error = %v", err)
	}
}

func TestStore_reopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err = s.Set("groups", []byte(`[{"id":10,"name":"3A"}]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// a second store over the same directory sees the data
	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	data, err := s2.Get("groups")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(data) != `[{"id":10,"name":"3A"}]` {
		t.Errorf("Get() = %s", data)
	}
}

func TestStore_Clear(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	for _, key := range []string{"users", "groups", "students"} {
		if err = s.Set(key, []byte(`[]`)); err != nil {
			t.Fatalf("Set(%q) error = %v", key, err)
		}
	}
	// unrelated files survive Clear
	other := filepath.Join(dir, "notes.txt")
	if err = os.WriteFile(other, []byte("keep"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err = s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	for _, key := range []string{"users", "groups", "students"} {
		if _, err = s.Get(key); err != core.ErrKeyNotFound {
			t.Errorf("Get(%q) after Clear() error = %v, want ErrKeyNotFound", key, err)
		}
	}
	if _, err = os.Stat(other); err != nil {
		t.Errorf("Clear() must leave non-store files alone: %v", err)
	}
}
